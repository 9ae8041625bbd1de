package seed

import (
	"testing"

	"chauffeur-admin/internal/domain/models"
)

func TestLoadSampleDataset(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	counts := map[string]int{
		"bookings":     len(ds.Bookings),
		"customers":    len(ds.Customers),
		"drivers":      len(ds.Drivers),
		"vehicles":     len(ds.Vehicles),
		"routes":       len(ds.Routes),
		"transactions": len(ds.Transactions),
		"invoices":     len(ds.Invoices),
	}
	want := map[string]int{"bookings": 3, "customers": 3, "drivers": 3, "vehicles": 3, "routes": 3, "transactions": 3, "invoices": 2}
	for k, n := range want {
		if counts[k] != n {
			t.Fatalf("%s: got %d want %d", k, counts[k], n)
		}
	}

	b := ds.Bookings[2]
	if b.Status != models.BookingCompleted || len(b.Legs) != 2 || b.Legs[1].Sequence != 2 {
		t.Fatalf("unexpected BK003 %+v", b)
	}
	if ds.Customers[0].Preferences == nil || len(ds.Customers[0].Preferences.SpecialRequests) != 2 {
		t.Fatalf("customer preferences not decoded: %+v", ds.Customers[0])
	}
	if ds.Transactions[1].Amount != -450 {
		t.Fatalf("expense amount should be negative, got %v", ds.Transactions[1].Amount)
	}
	if ds.Routes[2].Stops[3].Type != models.StopDestination {
		t.Fatalf("route stop type not decoded")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("bookings: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}
