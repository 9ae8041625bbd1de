package services

import (
	"math"
	"sort"

	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/utils"
)

type DriverStats struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Available int     `json:"available"`
	AvgRating float64 `json:"avgRating"`
}

type FleetStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	InUse       int `json:"inUse"`
	Maintenance int `json:"maintenance"`
}

type RouteStats struct {
	Total      int                `json:"total"`
	Active     int                `json:"active"`
	TotalUsage int                `json:"totalUsage"`
	MostUsed   *models.SavedRoute `json:"mostUsed,omitempty"`
}

type Dashboard struct {
	ActiveBookings   int              `json:"activeBookings"`
	TotalBookings    int              `json:"totalBookings"`
	TotalCustomers   int              `json:"totalCustomers"`
	FleetUtilization float64          `json:"fleetUtilization"`
	MonthlyRevenue   float64          `json:"monthlyRevenue"`
	AverageRating    float64          `json:"averageRating"`
	Drivers          DriverStats      `json:"drivers"`
	Fleet            FleetStats       `json:"fleet"`
	RecentBookings   []models.Booking `json:"recentBookings"`
}

const recentBookingsLimit = 5

// Stats computes the summary cards of each screen from the live stores.
type Stats struct {
	Bookings     BookingService
	Customers    CustomerService
	Drivers      DriverService
	Vehicles     VehicleService
	Routes       RouteService
	Transactions TransactionService
	Invoices     InvoiceService
}

func (s Stats) DriverStats() DriverStats {
	drivers := s.Drivers.Store.List()
	st := DriverStats{Total: len(drivers)}
	var rating float64
	for _, d := range drivers {
		if d.Status == models.DriverActive {
			st.Active++
		}
		if d.Availability == models.DriverAvailable {
			st.Available++
		}
		rating += d.Rating
	}
	if st.Total > 0 {
		st.AvgRating = math.Round(rating/float64(st.Total)*10) / 10
	}
	return st
}

func (s Stats) FleetStats() FleetStats {
	vehicles := s.Vehicles.Store.List()
	st := FleetStats{Total: len(vehicles)}
	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleAvailable:
			st.Available++
		case models.VehicleInUse:
			st.InUse++
		case models.VehicleMaintenance:
			st.Maintenance++
		}
	}
	return st
}

// RouteStats sums route frequencies; the first route with the highest
// frequency is the most used.
func (s Stats) RouteStats() RouteStats {
	routes := s.Routes.Store.List()
	st := RouteStats{Total: len(routes)}
	for i, r := range routes {
		if r.Status == models.RouteActive {
			st.Active++
		}
		st.TotalUsage += r.Frequency
		if st.MostUsed == nil || r.Frequency > st.MostUsed.Frequency {
			st.MostUsed = &routes[i]
		}
	}
	return st
}

// FinancialSummary totals positive amounts as revenue and the absolute value
// of negative amounts as expenses.
func (s Stats) FinancialSummary() models.FinancialSummary {
	var sum models.FinancialSummary
	for _, t := range s.Transactions.Store.List() {
		if t.Amount >= 0 {
			sum.Revenue += t.Amount
			if t.Status == models.TransactionPending {
				sum.PendingRevenue += t.Amount
			}
			continue
		}
		sum.Expenses += -t.Amount
	}
	for _, inv := range s.Invoices.Store.List() {
		if inv.Outstanding() {
			sum.OutstandingInvoices++
			sum.TotalOutstanding += inv.Amount
		}
	}
	sum.Profit = sum.Revenue - sum.Expenses
	sum.ProfitMargin = utils.Percent(sum.Profit, sum.Revenue)
	return sum
}

func (s Stats) Dashboard() Dashboard {
	bookings := s.Bookings.Store.List()
	fleet := s.FleetStats()
	drivers := s.DriverStats()
	d := Dashboard{
		TotalBookings:    len(bookings),
		TotalCustomers:   s.Customers.Len(),
		FleetUtilization: utils.Percent(float64(fleet.InUse), float64(fleet.Total)),
		MonthlyRevenue:   s.FinancialSummary().Revenue,
		AverageRating:    drivers.AvgRating,
		Drivers:          drivers,
		Fleet:            fleet,
		RecentBookings:   recentBookings(bookings, recentBookingsLimit),
	}
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed || b.Status == models.BookingInProgress {
			d.ActiveBookings++
		}
	}
	return d
}

// recentBookings orders by date then time, newest first, keeping collection
// order among equal timestamps.
func recentBookings(bookings []models.Booking, n int) []models.Booking {
	out := append([]models.Booking(nil), bookings...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
