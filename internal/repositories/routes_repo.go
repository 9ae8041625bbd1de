package repositories

import (
	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
)

const RoutePrefix = "R"

type RouteRepo struct {
	*EntityStore[models.SavedRoute]
}

func NewRouteRepo(cfg Config, seed []models.SavedRoute) RouteRepo {
	opts := storeOptions[models.SavedRoute](cfg, "route", "Route", RoutePrefix)
	opts.Subject = func(id string, r models.SavedRoute, found bool) string {
		if found && r.Name != "" {
			return "Route " + r.Name
		}
		return "Route " + id
	}
	return RouteRepo{NewEntityStore(opts, seed)}
}

func RoutePredicate(c domain.Criteria) Predicate[models.SavedRoute] {
	return func(r models.SavedRoute) bool {
		return MatchSearch(c.Search, r.Name, r.Description, r.ID) &&
			MatchExact(c.Category, string(r.Category)) &&
			MatchExact(c.Status, string(r.Status))
	}
}
