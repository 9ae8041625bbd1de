package repositories

import (
	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
)

const DriverPrefix = "D"

type DriverRepo struct {
	*EntityStore[models.Driver]
}

func NewDriverRepo(cfg Config, seed []models.Driver) DriverRepo {
	opts := storeOptions[models.Driver](cfg, "driver", "Driver", DriverPrefix)
	opts.Subject = func(id string, d models.Driver, found bool) string {
		if found && d.Name != "" {
			return "Driver " + d.Name
		}
		return "Driver " + id
	}
	return DriverRepo{NewEntityStore(opts, seed)}
}

func DriverPredicate(c domain.Criteria) Predicate[models.Driver] {
	return func(d models.Driver) bool {
		return MatchSearch(c.Search, d.Name, d.Email, d.License, d.ID) &&
			MatchExact(c.Status, string(d.Status)) &&
			MatchExact(c.Availability, string(d.Availability))
	}
}
