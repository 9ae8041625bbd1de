package models

type DriverStatus string

const (
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
	DriverOnBreak  DriverStatus = "on-break"
	DriverOffDuty  DriverStatus = "off-duty"
)

type DriverAvailability string

const (
	DriverAvailable   DriverAvailability = "available"
	DriverBusy        DriverAvailability = "busy"
	DriverUnavailable DriverAvailability = "unavailable"
)

type Driver struct {
	ID              string             `json:"id" yaml:"id"`
	Name            string             `json:"name" yaml:"name"`
	Email           string             `json:"email" yaml:"email"`
	Phone           string             `json:"phone" yaml:"phone"`
	License         string             `json:"license" yaml:"license"`
	LicenseExpiry   string             `json:"licenseExpiry" yaml:"licenseExpiry"`
	Status          DriverStatus       `json:"status" yaml:"status"`
	Rating          float64            `json:"rating" yaml:"rating"`
	TotalTrips      int                `json:"totalTrips" yaml:"totalTrips"`
	YearsExperience int                `json:"yearsExperience" yaml:"yearsExperience"`
	Languages       []string           `json:"languages" yaml:"languages"`
	CurrentLocation string             `json:"currentLocation,omitempty" yaml:"currentLocation"`
	AssignedVehicle string             `json:"assignedVehicle,omitempty" yaml:"assignedVehicle"`
	Availability    DriverAvailability `json:"availability" yaml:"availability"`
}

func (d Driver) GetID() string { return d.ID }

func (d Driver) WithID(id string) Driver {
	d.ID = id
	return d
}

func (d Driver) Clone() Driver {
	if d.Languages != nil {
		d.Languages = append([]string(nil), d.Languages...)
	}
	return d
}
