package repositories

import (
	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
)

const VehiclePrefix = "V"

type VehicleRepo struct {
	*EntityStore[models.Vehicle]
}

func NewVehicleRepo(cfg Config, seed []models.Vehicle) VehicleRepo {
	opts := storeOptions[models.Vehicle](cfg, "vehicle", "Vehicle", VehiclePrefix)
	return VehicleRepo{NewEntityStore(opts, seed)}
}

func VehiclePredicate(c domain.Criteria) Predicate[models.Vehicle] {
	return func(v models.Vehicle) bool {
		return MatchSearch(c.Search, v.Make, v.Model, v.License, v.ID) &&
			MatchExact(c.Status, string(v.Status)) &&
			MatchExact(c.Type, string(v.Type))
	}
}
