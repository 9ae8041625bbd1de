package models

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

type LegStatus string

const (
	LegPending   LegStatus = "pending"
	LegActive    LegStatus = "active"
	LegCompleted LegStatus = "completed"
)

// BookingLeg is one ordered segment of a multi-stop booking. Legs have no
// lifecycle outside their booking.
type BookingLeg struct {
	ID                string    `json:"id" yaml:"id"`
	Sequence          int       `json:"sequence" yaml:"sequence"`
	Pickup            string    `json:"pickup" yaml:"pickup"`
	Destination       string    `json:"destination" yaml:"destination"`
	EstimatedDuration string    `json:"estimatedDuration" yaml:"estimatedDuration"`
	Status            LegStatus `json:"status" yaml:"status"`
}

// Booking is a chauffeured trip. Driver and Vehicle are free text, not
// references to driver or vehicle records.
type Booking struct {
	ID            string        `json:"id" yaml:"id"`
	Customer      string        `json:"customer" yaml:"customer"`
	CustomerPhone string        `json:"customerPhone,omitempty" yaml:"customerPhone"`
	Pickup        string        `json:"pickup" yaml:"pickup"`
	Destination   string        `json:"destination" yaml:"destination"`
	Date          string        `json:"date" yaml:"date"`
	Time          string        `json:"time" yaml:"time"`
	Status        BookingStatus `json:"status" yaml:"status"`
	Driver        string        `json:"driver,omitempty" yaml:"driver"`
	Vehicle       string        `json:"vehicle,omitempty" yaml:"vehicle"`
	Legs          []BookingLeg  `json:"legs" yaml:"legs"`
	TotalAmount   float64       `json:"totalAmount" yaml:"totalAmount"`
	Notes         string        `json:"notes,omitempty" yaml:"notes"`
}

func (b Booking) GetID() string { return b.ID }

func (b Booking) WithID(id string) Booking {
	b.ID = id
	return b
}

func (b Booking) Clone() Booking {
	if b.Legs != nil {
		b.Legs = append([]BookingLeg(nil), b.Legs...)
	}
	return b
}
