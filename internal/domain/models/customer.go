package models

type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerCorporate  CustomerType = "corporate"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerVIP      CustomerStatus = "vip"
)

type CustomerPreferences struct {
	VehicleType     string   `json:"vehicleType,omitempty" yaml:"vehicleType"`
	SpecialRequests []string `json:"specialRequests,omitempty" yaml:"specialRequests"`
}

type CustomerContacts struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary"`
}

// Customer is a client account. TotalBookings and LastBooking are set when the
// record is created and never recomputed from booking activity.
type Customer struct {
	ID            string               `json:"id" yaml:"id"`
	Name          string               `json:"name" yaml:"name"`
	Email         string               `json:"email" yaml:"email"`
	Phone         string               `json:"phone" yaml:"phone"`
	Type          CustomerType         `json:"type" yaml:"type"`
	Status        CustomerStatus       `json:"status" yaml:"status"`
	TotalBookings int                  `json:"totalBookings" yaml:"totalBookings"`
	LastBooking   string               `json:"lastBooking" yaml:"lastBooking"`
	Address       string               `json:"address,omitempty" yaml:"address"`
	Preferences   *CustomerPreferences `json:"preferences,omitempty" yaml:"preferences"`
	Contacts      *CustomerContacts    `json:"contacts,omitempty" yaml:"contacts"`
	Notes         string               `json:"notes,omitempty" yaml:"notes"`
}

func (c Customer) GetID() string { return c.ID }

func (c Customer) WithID(id string) Customer {
	c.ID = id
	return c
}

func (c Customer) Clone() Customer {
	if c.Preferences != nil {
		p := *c.Preferences
		if p.SpecialRequests != nil {
			p.SpecialRequests = append([]string(nil), p.SpecialRequests...)
		}
		c.Preferences = &p
	}
	if c.Contacts != nil {
		ct := *c.Contacts
		c.Contacts = &ct
	}
	return c
}
