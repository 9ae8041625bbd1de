package models

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in-use"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

type VehicleType string

const (
	VehicleSedan     VehicleType = "sedan"
	VehicleSUV       VehicleType = "suv"
	VehicleLuxury    VehicleType = "luxury"
	VehicleVan       VehicleType = "van"
	VehicleLimousine VehicleType = "limousine"
)

type Vehicle struct {
	ID          string        `json:"id" yaml:"id"`
	Make        string        `json:"make" yaml:"make"`
	Model       string        `json:"model" yaml:"model"`
	Year        int           `json:"year" yaml:"year"`
	License     string        `json:"license" yaml:"license"`
	VIN         string        `json:"vin" yaml:"vin"`
	Status      VehicleStatus `json:"status" yaml:"status"`
	Type        VehicleType   `json:"type" yaml:"type"`
	Capacity    int           `json:"capacity" yaml:"capacity"`
	Mileage     int           `json:"mileage" yaml:"mileage"`
	LastService string        `json:"lastService" yaml:"lastService"`
	NextService string        `json:"nextService" yaml:"nextService"`
	Driver      string        `json:"driver,omitempty" yaml:"driver"`
	Location    string        `json:"location,omitempty" yaml:"location"`
}

func (v Vehicle) GetID() string { return v.ID }

func (v Vehicle) WithID(id string) Vehicle {
	v.ID = id
	return v
}

func (v Vehicle) Clone() Vehicle { return v }
