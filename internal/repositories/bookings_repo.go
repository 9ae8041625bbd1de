package repositories

import (
	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
)

const BookingPrefix = "BK"

type BookingRepo struct {
	*EntityStore[models.Booking]
}

func NewBookingRepo(cfg Config, seed []models.Booking) BookingRepo {
	opts := storeOptions[models.Booking](cfg, "booking", "Booking", BookingPrefix)
	return BookingRepo{NewEntityStore(opts, seed)}
}

// BookingPredicate searches id, customer, pickup and destination, and
// constrains status and the date range.
func BookingPredicate(c domain.Criteria) Predicate[models.Booking] {
	return func(b models.Booking) bool {
		return MatchSearch(c.Search, b.ID, b.Customer, b.Pickup, b.Destination) &&
			MatchExact(c.Status, string(b.Status)) &&
			MatchDateRange(b.Date, c.DateFrom, c.DateTo)
	}
}
