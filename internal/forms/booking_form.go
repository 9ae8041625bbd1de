package forms

import (
	"fmt"
	"strings"

	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/repositories"
	"chauffeur-admin/internal/utils"
)

const legPrefix = "L"

type BookingForm struct {
	*Controller[models.Booking]
}

func NewBookingForm() *BookingForm {
	return &BookingForm{NewController(BlankBooking, ValidateBooking)}
}

// BlankBooking is the draft of a new booking: confirmed, one empty leg.
func BlankBooking() models.Booking {
	return models.Booking{
		Status: models.BookingConfirmed,
		Legs:   []models.BookingLeg{newLeg(1, legPrefix+"001")},
	}
}

func newLeg(seq int, id string) models.BookingLeg {
	return models.BookingLeg{ID: id, Sequence: seq, Status: models.LegPending}
}

func ValidateBooking(b models.Booking) error {
	if err := firstError(
		required("customer", b.Customer),
		required("pickup", b.Pickup),
		required("destination", b.Destination),
		required("date", b.Date),
		required("time", b.Time),
		oneOf("status", string(b.Status),
			string(models.BookingConfirmed), string(models.BookingInProgress),
			string(models.BookingCompleted), string(models.BookingCancelled)),
	); err != nil {
		return err
	}
	if len(b.Legs) == 0 {
		return required("legs", "")
	}
	for i, leg := range b.Legs {
		field := fmt.Sprintf("legs[%d]", i)
		if err := firstError(
			required(field+".pickup", leg.Pickup),
			required(field+".destination", leg.Destination),
			oneOf(field+".status", string(leg.Status),
				string(models.LegPending), string(models.LegActive), string(models.LegCompleted)),
		); err != nil {
			return err
		}
	}
	return nil
}

// AddLeg appends a pending leg with the next sequence number.
func (f *BookingForm) AddLeg() (models.BookingLeg, error) {
	var added models.BookingLeg
	err := f.Set(func(b *models.Booking) error {
		next := repositories.MaxSequence(legPrefix, legIDs(b.Legs)) + 1
		added = newLeg(len(b.Legs)+1, utils.PadSequence(legPrefix, next, 3))
		b.Legs = append(b.Legs, added)
		return nil
	})
	return added, err
}

// NormalizeLegs renumbers the legs 1..n in order and gives every leg without
// an identifier (or with one already taken) the next free leg identifier.
func (f *BookingForm) NormalizeLegs() error {
	return f.Set(func(b *models.Booking) error {
		next := repositories.MaxSequence(legPrefix, legIDs(b.Legs))
		seen := make(map[string]bool, len(b.Legs))
		for i := range b.Legs {
			leg := &b.Legs[i]
			leg.Sequence = i + 1
			leg.ID = strings.TrimSpace(leg.ID)
			if leg.ID == "" || seen[leg.ID] {
				next++
				leg.ID = utils.PadSequence(legPrefix, next, 3)
			}
			seen[leg.ID] = true
		}
		return nil
	})
}

func legIDs(legs []models.BookingLeg) []string {
	ids := make([]string, len(legs))
	for i, l := range legs {
		ids[i] = l.ID
	}
	return ids
}

// RemoveLeg drops the leg at index i and renumbers the rest from 1. The last
// remaining leg cannot be removed.
func (f *BookingForm) RemoveLeg(i int) error {
	return f.Set(func(b *models.Booking) error {
		if i < 0 || i >= len(b.Legs) {
			return ErrIndex
		}
		if len(b.Legs) == 1 {
			return ErrLastLeg
		}
		b.Legs = append(b.Legs[:i:i], b.Legs[i+1:]...)
		for n := range b.Legs {
			b.Legs[n].Sequence = n + 1
		}
		return nil
	})
}

// UpdateLeg replaces one field of the leg at index i.
func (f *BookingForm) UpdateLeg(i int, field, value string) error {
	return f.Set(func(b *models.Booking) error {
		if i < 0 || i >= len(b.Legs) {
			return ErrIndex
		}
		leg := &b.Legs[i]
		switch field {
		case "pickup":
			leg.Pickup = value
		case "destination":
			leg.Destination = value
		case "estimatedDuration":
			leg.EstimatedDuration = value
		case "status":
			leg.Status = models.LegStatus(value)
		default:
			return fmt.Errorf("unknown leg field %q", field)
		}
		return nil
	})
}

// FillDefaultLeg copies the booking's pickup and destination into a single
// leg that was left blank.
func (f *BookingForm) FillDefaultLeg() error {
	return f.Set(func(b *models.Booking) error {
		if len(b.Legs) != 1 {
			return nil
		}
		leg := &b.Legs[0]
		if strings.TrimSpace(leg.Pickup) == "" && strings.TrimSpace(leg.Destination) == "" {
			leg.Pickup = b.Pickup
			leg.Destination = b.Destination
		}
		return nil
	})
}
