package repositories

import (
	"reflect"
	"testing"
	"time"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/notify"
)

type sentNote struct {
	Title, Description string
	Severity           domain.Severity
}

type captureSink struct{ notes []sentNote }

func (c *captureSink) Notify(title, description string, severity domain.Severity) {
	c.notes = append(c.notes, sentNote{title, description, severity})
}

func sampleBookings() []models.Booking {
	return []models.Booking{
		{
			ID: "BK001", Customer: "John Smith", Pickup: "JFK Airport", Destination: "Manhattan Hotel",
			Date: "2024-01-26", Time: "14:30", Status: models.BookingConfirmed, TotalAmount: 250,
			Legs: []models.BookingLeg{{ID: "L001", Sequence: 1, Pickup: "JFK Airport Terminal 1", Destination: "Manhattan Hotel", Status: models.LegPending}},
		},
		{
			ID: "BK002", Customer: "Sarah Davis", Pickup: "Corporate Office", Destination: "LaGuardia Airport",
			Date: "2024-01-26", Time: "16:00", Status: models.BookingInProgress, TotalAmount: 180,
			Legs: []models.BookingLeg{{ID: "L002", Sequence: 1, Status: models.LegActive}},
		},
		{
			ID: "BK003", Customer: "Tech Corp Inc.", Pickup: "Conference Center", Destination: "Multiple stops",
			Date: "2024-01-25", Time: "18:45", Status: models.BookingCompleted, TotalAmount: 450,
		},
	}
}

func newTestBookings(sink notify.Sink, policy NotifyPolicy) BookingRepo {
	return NewBookingRepo(Config{Sink: sink, Policy: policy}, sampleBookings())
}

func TestCreateThenGetReturnsSameRecord(t *testing.T) {
	repo := newTestBookings(nil, "")
	created := repo.Create(models.Booking{Customer: "Emma Wilson", Status: models.BookingConfirmed, Legs: []models.BookingLeg{{ID: "L001", Sequence: 1}}})

	if created.ID != "BK004" {
		t.Fatalf("expected BK004, got %s", created.ID)
	}
	got, ok := repo.Get(created.ID)
	if !ok {
		t.Fatalf("created record not found")
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("get returned %+v, want %+v", got, created)
	}
	if repo.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", repo.Len())
	}
	all := repo.List()
	if all[len(all)-1].ID != created.ID {
		t.Fatalf("created record should be appended last")
	}
}

func TestUpdateChangesOnlyNamedField(t *testing.T) {
	repo := newTestBookings(nil, "")
	before, _ := repo.Get("BK002")

	updated, found := repo.Update("BK002", func(b *models.Booking) { b.Driver = "Robert Brown" })
	if !found {
		t.Fatalf("expected BK002 to be found")
	}
	if updated.Driver != "Robert Brown" {
		t.Fatalf("driver not updated, got %q", updated.Driver)
	}
	want := before
	want.Driver = "Robert Brown"
	got, _ := repo.Get("BK002")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected record after update: %+v", got)
	}
	if repo.List()[1].ID != "BK002" {
		t.Fatalf("update must keep the record position")
	}
}

func TestUpdateCannotChangeIdentifier(t *testing.T) {
	repo := newTestBookings(nil, "")
	repo.Update("BK001", func(b *models.Booking) { b.ID = "BK999" })
	if _, ok := repo.Get("BK001"); !ok {
		t.Fatalf("record lost its identifier")
	}
}

func TestUpdateMissingIsNoop(t *testing.T) {
	repo := newTestBookings(nil, "")
	before := repo.List()

	if _, found := repo.Update("BK404", func(b *models.Booking) { b.Customer = "x" }); found {
		t.Fatalf("expected not found")
	}
	if !reflect.DeepEqual(repo.List(), before) {
		t.Fatalf("collection changed on missing update")
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := newTestBookings(nil, "")

	removed, found := repo.Delete("BK002")
	if !found || removed.ID != "BK002" {
		t.Fatalf("expected BK002 removed, got %v %+v", found, removed)
	}
	if _, ok := repo.Get("BK002"); ok {
		t.Fatalf("deleted record still present")
	}
	if repo.Len() != 2 {
		t.Fatalf("size should drop by one, got %d", repo.Len())
	}

	if _, found := repo.Delete("BK002"); found {
		t.Fatalf("second delete should not find the record")
	}
	if repo.Len() != 2 {
		t.Fatalf("size should be unchanged, got %d", repo.Len())
	}
}

func TestMergeIsShallow(t *testing.T) {
	repo := newTestBookings(nil, "")

	merged, found, err := repo.Merge("BK001", []byte(`{"status":"cancelled","notes":"client rescheduled","id":"BK777"}`))
	if err != nil || !found {
		t.Fatalf("merge failed: found=%v err=%v", found, err)
	}
	if merged.ID != "BK001" || merged.Status != models.BookingCancelled || merged.Notes != "client rescheduled" {
		t.Fatalf("unexpected merge result %+v", merged)
	}
	if merged.Customer != "John Smith" || len(merged.Legs) != 1 {
		t.Fatalf("untouched fields changed: %+v", merged)
	}

	if _, _, err := repo.Merge("BK001", []byte(`[1,2]`)); err == nil {
		t.Fatalf("expected error for non-object patch")
	}
	if _, found, err := repo.Merge("BK404", []byte(`{"notes":"x"}`)); found || err != nil {
		t.Fatalf("missing merge should be a silent no-op, got found=%v err=%v", found, err)
	}
}

func TestReturnedRecordsDoNotAliasStore(t *testing.T) {
	repo := newTestBookings(nil, "")
	got, _ := repo.Get("BK001")
	got.Legs[0].Pickup = "changed"

	again, _ := repo.Get("BK001")
	if again.Legs[0].Pickup != "JFK Airport Terminal 1" {
		t.Fatalf("store mutated through a returned copy")
	}
}

func TestNotifyPolicy(t *testing.T) {
	sink := &captureSink{}
	repo := newTestBookings(sink, NotifyOnMatch)
	repo.Create(models.Booking{Customer: "A"})
	repo.Update("BK404", func(*models.Booking) {})
	repo.Delete("BK404")
	repo.Delete("BK001")

	if len(sink.notes) != 2 {
		t.Fatalf("on-match should notify twice, got %d: %+v", len(sink.notes), sink.notes)
	}
	if sink.notes[0].Title != "Booking Created" || sink.notes[0].Description != "Booking BK004 has been successfully created." {
		t.Fatalf("unexpected create notification %+v", sink.notes[0])
	}
	if sink.notes[1].Severity != domain.SeverityDestructive {
		t.Fatalf("delete should be destructive, got %s", sink.notes[1].Severity)
	}

	always := &captureSink{}
	repo = newTestBookings(always, NotifyAlways)
	repo.Update("BK404", func(*models.Booking) {})
	repo.Delete("BK404")
	if len(always.notes) != 2 {
		t.Fatalf("always should notify on no-op, got %d", len(always.notes))
	}
	if always.notes[0].Title != "Booking Updated" {
		t.Fatalf("unexpected title %q", always.notes[0].Title)
	}
}

type countingObserver struct{ ops map[string]int }

func (o *countingObserver) ObserveMutation(entity, op string, found bool, size int) {
	key := entity + "/" + op
	if !found {
		key += "/miss"
	}
	o.ops[key]++
}

func TestObserverSeesEveryMutation(t *testing.T) {
	obs := &countingObserver{ops: map[string]int{}}
	repo := NewBookingRepo(Config{Observer: obs}, sampleBookings())
	repo.Create(models.Booking{})
	repo.Update("BK001", func(*models.Booking) {})
	repo.Delete("BK404")

	want := map[string]int{"booking/create": 1, "booking/update": 1, "booking/delete/miss": 1}
	if !reflect.DeepEqual(obs.ops, want) {
		t.Fatalf("observer got %v, want %v", obs.ops, want)
	}
}

func newCustomerRepo(scheme IDScheme) CustomerRepo {
	now := func() time.Time { return time.Date(2024, 1, 27, 10, 0, 0, 0, time.Local) }
	return NewCustomerRepo(Config{IDScheme: scheme, Now: now}, nil)
}

func TestCustomerCreateSetsCounters(t *testing.T) {
	repo := newCustomerRepo(SchemeSequence)
	c := repo.Create(models.Customer{Name: "Emma Wilson", TotalBookings: 99, LastBooking: "1999-01-01"})
	if c.ID != "CU001" || c.TotalBookings != 0 || c.LastBooking != "2024-01-27" {
		t.Fatalf("unexpected customer %+v", c)
	}
}

// Three customers, delete the second, create a fourth.
func TestIdentifierAfterDelete(t *testing.T) {
	create3 := func(repo CustomerRepo) {
		for _, n := range []string{"A", "B", "C"} {
			repo.Create(models.Customer{Name: n})
		}
		repo.Delete("CU002")
	}

	legacy := newCustomerRepo(SchemeLength)
	create3(legacy)
	fourth := legacy.Create(models.Customer{Name: "D"})
	if fourth.ID != "CU003" {
		t.Fatalf("length scheme should hand out CU003, got %s", fourth.ID)
	}
	dupes := 0
	for _, c := range legacy.List() {
		if c.ID == fourth.ID {
			dupes++
		}
	}
	if dupes != 2 || legacy.Len() != 3 {
		t.Fatalf("expected two distinct records sharing %s, got %d of %d", fourth.ID, dupes, legacy.Len())
	}

	seq := newCustomerRepo(SchemeSequence)
	create3(seq)
	fourth = seq.Create(models.Customer{Name: "D"})
	if fourth.ID != "CU004" {
		t.Fatalf("sequence scheme should hand out CU004, got %s", fourth.ID)
	}
	seen := map[string]bool{}
	for _, c := range seq.List() {
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}
