package services

import (
	"testing"
	"time"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/repositories"
	"chauffeur-admin/internal/seed"
)

func fixedNow() time.Time { return time.Date(2024, 1, 27, 12, 0, 0, 0, time.UTC) }

func newTestServices(t *testing.T, cfg repositories.Config) Services {
	t.Helper()
	data, err := seed.Load()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if cfg.Now == nil {
		cfg.Now = fixedNow
	}
	return New(NewRepos(cfg, data))
}

func TestCreateBookingFillsDefaultLeg(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	b, err := svc.Bookings.Create([]byte(`{"customer":"Emma Wilson","pickup":"JFK Airport","destination":"Plaza Hotel","date":"2024-01-28","time":"09:15"}`))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.ID != "BK004" {
		t.Fatalf("expected BK004, got %s", b.ID)
	}
	if b.Status != models.BookingConfirmed {
		t.Fatalf("expected default status confirmed, got %s", b.Status)
	}
	if len(b.Legs) != 1 || b.Legs[0].Pickup != "JFK Airport" || b.Legs[0].Destination != "Plaza Hotel" {
		t.Fatalf("unexpected legs: %+v", b.Legs)
	}
	if svc.Bookings.Len() != 4 {
		t.Fatalf("expected 4 bookings, got %d", svc.Bookings.Len())
	}
}

func TestCreateBookingNormalizesSubmittedLegs(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	b, err := svc.Bookings.Create([]byte(`{"customer":"Emma Wilson","pickup":"JFK Airport","destination":"Plaza Hotel","date":"2024-01-28","time":"09:15",
		"legs":[{"pickup":"JFK Airport","destination":"Midtown","status":"pending"},
		        {"id":"L004","pickup":"Midtown","destination":"Plaza Hotel","status":"pending","sequence":7},
		        {"pickup":"Plaza Hotel","destination":"JFK Airport","status":"pending","sequence":2}]}`))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	want := []struct {
		id  string
		seq int
	}{{"L005", 1}, {"L004", 2}, {"L006", 3}}
	if len(b.Legs) != len(want) {
		t.Fatalf("expected %d legs, got %+v", len(want), b.Legs)
	}
	for i, w := range want {
		if b.Legs[i].ID != w.id || b.Legs[i].Sequence != w.seq {
			t.Fatalf("leg %d: got id=%q sequence=%d, want %s/%d", i, b.Legs[i].ID, b.Legs[i].Sequence, w.id, w.seq)
		}
	}
	stored, _ := svc.Bookings.Get(b.ID)
	if stored.Legs[0].ID != "L005" || stored.Legs[2].Sequence != 3 {
		t.Fatalf("stored legs not normalized: %+v", stored.Legs)
	}
}

func TestReplaceBookingNormalizesLegs(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	b, err := svc.Bookings.Replace("BK001", []byte(`{"legs":[{"pickup":"A","destination":"B","status":"pending","sequence":9},{"id":"","pickup":"B","destination":"C","status":"active"}]}`))
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if len(b.Legs) != 2 {
		t.Fatalf("unexpected legs: %+v", b.Legs)
	}
	for i, leg := range b.Legs {
		if leg.Sequence != i+1 || leg.ID == "" {
			t.Fatalf("leg %d not normalized: %+v", i, leg)
		}
	}
	if b.Legs[0].ID == b.Legs[1].ID {
		t.Fatalf("duplicate leg ids: %+v", b.Legs)
	}
}

func TestCreateRejectsMissingRequiredField(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	_, err := svc.Customers.Create([]byte(`{"name":"Emma Wilson","phone":"+1 555-0101"}`))
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if svc.Customers.Len() != 3 {
		t.Fatalf("store changed on invalid create: %d", svc.Customers.Len())
	}
}

func TestCreateCustomerStampsCounters(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	c, err := svc.Customers.Create([]byte(`{"name":"Emma Wilson","email":"emma@example.com","phone":"+1 555-0101","totalBookings":12}`))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.TotalBookings != 0 || c.LastBooking != "2024-01-27" {
		t.Fatalf("unexpected counters: %d %s", c.TotalBookings, c.LastBooking)
	}
	if c.Type != models.CustomerIndividual || c.Status != models.CustomerActive {
		t.Fatalf("defaults not applied: %s %s", c.Type, c.Status)
	}
}

func TestReplaceKeepsUntouchedFields(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})
	before, err := svc.Drivers.Get("D002")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	after, err := svc.Drivers.Replace("D002", []byte(`{"phone":"+1 555-9999"}`))
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if after.Phone != "+1 555-9999" {
		t.Fatalf("phone not updated: %s", after.Phone)
	}
	if after.Name != before.Name || after.Rating != before.Rating || after.ID != "D002" {
		t.Fatalf("unrelated fields changed: %+v", after)
	}
}

func TestReplaceValidatesDraft(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	_, err := svc.Bookings.Replace("BK001", []byte(`{"customer":""}`))
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	b, _ := svc.Bookings.Get("BK001")
	if b.Customer == "" {
		t.Fatalf("invalid edit reached the store")
	}
}

func TestReplaceRejectsMismatchedID(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	_, err := svc.Vehicles.Replace("V001", []byte(`{"id":"V002","mileage":1}`))
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMissingIDReturnsNotFound(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	if _, err := svc.Bookings.Get("BK999"); !domain.IsNotFound(err) {
		t.Fatalf("Get: expected not found, got %v", err)
	}
	if _, err := svc.Bookings.Replace("BK999", []byte(`{"notes":"x"}`)); !domain.IsNotFound(err) {
		t.Fatalf("Replace: expected not found, got %v", err)
	}
	if _, err := svc.Bookings.Patch("BK999", []byte(`{"notes":"x"}`)); !domain.IsNotFound(err) {
		t.Fatalf("Patch: expected not found, got %v", err)
	}
	if _, err := svc.Bookings.Delete("BK999"); !domain.IsNotFound(err) {
		t.Fatalf("Delete: expected not found, got %v", err)
	}
	if svc.Bookings.Len() != 3 {
		t.Fatalf("collection changed: %d", svc.Bookings.Len())
	}
}

func TestPatchMergesWithoutValidation(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	inv, err := svc.Invoices.Patch("INV-001", []byte(`{"status":"paid","customer":""}`))
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if inv.Status != models.InvoicePaid || inv.Customer != "" || inv.Amount != 1250 {
		t.Fatalf("unexpected merge result: %+v", inv)
	}
}

func TestPatchRejectsMalformedBody(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	if _, err := svc.Invoices.Patch("INV-001", []byte(`{"amount":`)); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListUsesCriteria(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	if got := svc.Bookings.List(domain.Criteria{}); len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	got := svc.Bookings.List(domain.Criteria{Search: "  smith "})
	if len(got) != 1 || got[0].ID != "BK001" {
		t.Fatalf("unexpected search result: %+v", got)
	}
	txs := svc.Transactions.List(domain.Criteria{Type: "expense"})
	if len(txs) != 1 || txs[0].ID != "T002" {
		t.Fatalf("unexpected type filter: %+v", txs)
	}
}

func TestDraftsDoNotTouchStore(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})

	blank, err := svc.Routes.BlankDraft()
	if err != nil {
		t.Fatalf("BlankDraft returned error: %v", err)
	}
	if blank.ID != "" || blank.Category != models.RouteCustom {
		t.Fatalf("unexpected blank draft: %+v", blank)
	}
	edit, err := svc.Routes.EditDraft("R001")
	if err != nil {
		t.Fatalf("EditDraft returned error: %v", err)
	}
	edit.Stops[0].Name = "changed"
	stored, _ := svc.Routes.Get("R001")
	if stored.Stops[0].Name == "changed" {
		t.Fatalf("edit draft aliases the stored record")
	}
	if svc.Routes.Len() != 3 {
		t.Fatalf("drafts changed the store")
	}
}

type noteCounter struct{ n int }

func (c *noteCounter) Notify(string, string, domain.Severity) { c.n++ }

func TestReplaceMissHonoursNotifyPolicy(t *testing.T) {
	quiet := &noteCounter{}
	svc := newTestServices(t, repositories.Config{Sink: quiet})
	_, _ = svc.Drivers.Replace("D999", []byte(`{"phone":"1"}`))
	if quiet.n != 0 {
		t.Fatalf("on-match policy notified a miss")
	}

	loud := &noteCounter{}
	svc = newTestServices(t, repositories.Config{Sink: loud, Policy: repositories.NotifyAlways})
	_, _ = svc.Drivers.Replace("D999", []byte(`{"phone":"1"}`))
	if loud.n != 1 {
		t.Fatalf("always policy sent %d notifications", loud.n)
	}
}
