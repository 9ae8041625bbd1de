package repositories

import (
	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/utils"
)

const CustomerPrefix = "CU"

type CustomerRepo struct {
	*EntityStore[models.Customer]
}

// NewCustomerRepo stamps new customers with zero bookings and today's date
// as lastBooking.
func NewCustomerRepo(cfg Config, seed []models.Customer) CustomerRepo {
	opts := storeOptions[models.Customer](cfg, "customer", "Customer", CustomerPrefix)
	opts.Finalize = func(c models.Customer) models.Customer {
		c.TotalBookings = 0
		c.LastBooking = utils.FormatDate(cfg.now())
		return c
	}
	opts.Subject = func(id string, c models.Customer, found bool) string {
		if found && c.Name != "" {
			return "Customer " + c.Name
		}
		return "Customer " + id
	}
	return CustomerRepo{NewEntityStore(opts, seed)}
}

func CustomerPredicate(c domain.Criteria) Predicate[models.Customer] {
	return func(cu models.Customer) bool {
		return MatchSearch(c.Search, cu.Name, cu.Email, cu.ID) &&
			MatchExact(c.Type, string(cu.Type)) &&
			MatchExact(c.Status, string(cu.Status))
	}
}
