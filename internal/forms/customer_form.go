package forms

import (
	"fmt"
	"strings"

	"chauffeur-admin/internal/domain/models"
)

type CustomerForm struct {
	*Controller[models.Customer]
}

func NewCustomerForm() *CustomerForm {
	return &CustomerForm{NewController(BlankCustomer, ValidateCustomer)}
}

func BlankCustomer() models.Customer {
	return models.Customer{
		Type:        models.CustomerIndividual,
		Status:      models.CustomerActive,
		Preferences: &models.CustomerPreferences{SpecialRequests: []string{}},
		Contacts:    &models.CustomerContacts{},
	}
}

func ValidateCustomer(c models.Customer) error {
	return firstError(
		required("name", c.Name),
		required("email", c.Email),
		required("phone", c.Phone),
		oneOf("type", string(c.Type), string(models.CustomerIndividual), string(models.CustomerCorporate)),
		oneOf("status", string(c.Status),
			string(models.CustomerActive), string(models.CustomerInactive), string(models.CustomerVIP)),
	)
}

// SetPreference replaces one key of the preferences object.
func (f *CustomerForm) SetPreference(key, value string) error {
	return f.Set(func(c *models.Customer) error {
		prefs := ensurePreferences(c)
		switch key {
		case "vehicleType":
			prefs.VehicleType = value
		default:
			return fmt.Errorf("unknown preference %q", key)
		}
		return nil
	})
}

// AddSpecialRequest appends a trimmed request. Blank input is ignored and
// reported as false.
func (f *CustomerForm) AddSpecialRequest(request string) (bool, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return false, f.Set(func(*models.Customer) error { return nil })
	}
	err := f.Set(func(c *models.Customer) error {
		prefs := ensurePreferences(c)
		prefs.SpecialRequests = append(prefs.SpecialRequests, request)
		return nil
	})
	return err == nil, err
}

func (f *CustomerForm) RemoveSpecialRequest(i int) error {
	return f.Set(func(c *models.Customer) error {
		prefs := ensurePreferences(c)
		if i < 0 || i >= len(prefs.SpecialRequests) {
			return ErrIndex
		}
		prefs.SpecialRequests = append(prefs.SpecialRequests[:i:i], prefs.SpecialRequests[i+1:]...)
		return nil
	})
}

// SetContact replaces the primary or secondary contact.
func (f *CustomerForm) SetContact(key, value string) error {
	return f.Set(func(c *models.Customer) error {
		if c.Contacts == nil {
			c.Contacts = &models.CustomerContacts{}
		}
		switch key {
		case "primary":
			c.Contacts.Primary = value
		case "secondary":
			c.Contacts.Secondary = value
		default:
			return fmt.Errorf("unknown contact %q", key)
		}
		return nil
	})
}

func ensurePreferences(c *models.Customer) *models.CustomerPreferences {
	if c.Preferences == nil {
		c.Preferences = &models.CustomerPreferences{}
	}
	return c.Preferences
}
