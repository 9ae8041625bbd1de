package models

type RouteCategory string

const (
	RouteAirport  RouteCategory = "airport"
	RouteHotel    RouteCategory = "hotel"
	RouteBusiness RouteCategory = "business"
	RouteCustom   RouteCategory = "custom"
)

type RouteStatus string

const (
	RouteActive   RouteStatus = "active"
	RouteArchived RouteStatus = "archived"
)

type StopType string

const (
	StopPickup      StopType = "pickup"
	StopDestination StopType = "destination"
	StopWaypoint    StopType = "waypoint"
)

type RouteStop struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Address       string   `json:"address" yaml:"address"`
	EstimatedTime string   `json:"estimatedTime" yaml:"estimatedTime"`
	Type          StopType `json:"type" yaml:"type"`
}

// SavedRoute is a reusable itinerary. Frequency counts how often it was used.
type SavedRoute struct {
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	Description       string        `json:"description" yaml:"description"`
	Category          RouteCategory `json:"category" yaml:"category"`
	Stops             []RouteStop   `json:"stops" yaml:"stops"`
	TotalDistance     string        `json:"totalDistance" yaml:"totalDistance"`
	EstimatedDuration string        `json:"estimatedDuration" yaml:"estimatedDuration"`
	Frequency         int           `json:"frequency" yaml:"frequency"`
	LastUsed          string        `json:"lastUsed" yaml:"lastUsed"`
	Status            RouteStatus   `json:"status" yaml:"status"`
}

func (r SavedRoute) GetID() string { return r.ID }

func (r SavedRoute) WithID(id string) SavedRoute {
	r.ID = id
	return r
}

func (r SavedRoute) Clone() SavedRoute {
	if r.Stops != nil {
		r.Stops = append([]RouteStop(nil), r.Stops...)
	}
	return r
}
