package services

import (
	"testing"

	"chauffeur-admin/internal/repositories"
)

func TestDriverAndFleetStats(t *testing.T) {
	st := newTestServices(t, repositories.Config{}).Stats()

	d := st.DriverStats()
	if d.Total != 3 || d.Active != 2 || d.Available != 1 || d.AvgRating != 4.8 {
		t.Fatalf("unexpected driver stats: %+v", d)
	}
	f := st.FleetStats()
	if f.Total != 3 || f.Available != 1 || f.InUse != 1 || f.Maintenance != 1 {
		t.Fatalf("unexpected fleet stats: %+v", f)
	}
}

func TestRouteStats(t *testing.T) {
	st := newTestServices(t, repositories.Config{}).Stats()

	r := st.RouteStats()
	if r.Total != 3 || r.Active != 3 || r.TotalUsage != 268 {
		t.Fatalf("unexpected route stats: %+v", r)
	}
	if r.MostUsed == nil || r.MostUsed.ID != "R001" {
		t.Fatalf("unexpected most used route: %+v", r.MostUsed)
	}
}

func TestFinancialSummary(t *testing.T) {
	st := newTestServices(t, repositories.Config{}).Stats()

	sum := st.FinancialSummary()
	if sum.Revenue != 1500 || sum.Expenses != 450 || sum.Profit != 1050 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.ProfitMargin != 70 {
		t.Fatalf("expected margin 70, got %v", sum.ProfitMargin)
	}
	if sum.OutstandingInvoices != 2 || sum.TotalOutstanding != 2140 || sum.PendingRevenue != 1250 {
		t.Fatalf("unexpected outstanding figures: %+v", sum)
	}
}

func TestFinancialSummaryFollowsMutations(t *testing.T) {
	svc := newTestServices(t, repositories.Config{})
	if _, err := svc.Invoices.Patch("INV-002", []byte(`{"status":"paid"}`)); err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}

	sum := svc.Stats().FinancialSummary()
	if sum.OutstandingInvoices != 1 || sum.TotalOutstanding != 1250 {
		t.Fatalf("summary ignored paid invoice: %+v", sum)
	}
}

func TestDashboard(t *testing.T) {
	st := newTestServices(t, repositories.Config{}).Stats()

	d := st.Dashboard()
	if d.ActiveBookings != 2 || d.TotalBookings != 3 || d.TotalCustomers != 3 {
		t.Fatalf("unexpected counts: %+v", d)
	}
	if d.FleetUtilization != 33.3 {
		t.Fatalf("expected utilization 33.3, got %v", d.FleetUtilization)
	}
	want := []string{"BK002", "BK001", "BK003"}
	if len(d.RecentBookings) != len(want) {
		t.Fatalf("expected %d recent bookings, got %d", len(want), len(d.RecentBookings))
	}
	for i, id := range want {
		if d.RecentBookings[i].ID != id {
			t.Fatalf("recent[%d] = %s, want %s", i, d.RecentBookings[i].ID, id)
		}
	}
}
