// Package forms holds the transient draft of a record while it is being
// created or edited. Nothing here persists; Submit hands the draft to a caller
// supplied handler.
package forms

import (
	"errors"
	"strings"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/repositories"
)

var (
	ErrFormClosed = errors.New("form is not open")
	ErrLastLeg    = errors.New("a booking keeps at least one leg")
	ErrIndex      = errors.New("index out of range")
)

type Mode string

const (
	ModeClosed Mode = "closed"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type Cloner[T any] interface {
	Clone() T
}

// Controller is the Closed -> Open(create|edit) -> Closed state machine
// around one draft.
type Controller[T Cloner[T]] struct {
	mode     Mode
	draft    T
	editID   string
	blank    func() T
	validate func(T) error
}

func NewController[T Cloner[T]](blank func() T, validate func(T) error) *Controller[T] {
	return &Controller[T]{mode: ModeClosed, blank: blank, validate: validate}
}

// OpenCreate starts a new draft from the defaults.
func (c *Controller[T]) OpenCreate() {
	c.mode = ModeCreate
	c.editID = ""
	c.draft = c.blank()
}

// OpenEdit starts a draft copied from rec. id names the record being edited.
func (c *Controller[T]) OpenEdit(id string, rec T) {
	c.mode = ModeEdit
	c.editID = id
	c.draft = rec.Clone()
}

func (c *Controller[T]) Mode() Mode { return c.mode }

func (c *Controller[T]) IsOpen() bool { return c.mode != ModeClosed }

// EditingID returns the identifier of the record being edited, or "".
func (c *Controller[T]) EditingID() string { return c.editID }

// Draft returns a copy of the current draft.
func (c *Controller[T]) Draft() (T, error) {
	if !c.IsOpen() {
		var zero T
		return zero, ErrFormClosed
	}
	return c.draft.Clone(), nil
}

// Set applies a targeted change to the draft.
func (c *Controller[T]) Set(fn func(*T) error) error {
	if !c.IsOpen() {
		return ErrFormClosed
	}
	next := c.draft.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	c.draft = next
	return nil
}

// Apply overlays the top-level JSON keys of raw onto the draft.
func (c *Controller[T]) Apply(raw []byte) error {
	return c.Set(func(d *T) error {
		merged, err := repositories.MergeJSON(*d, raw)
		if err != nil {
			return domain.ValidationError{Field: "body", Msg: err.Error(), Err: err}
		}
		*d = merged
		return nil
	})
}

// Cancel discards the draft.
func (c *Controller[T]) Cancel() {
	c.close()
}

func (c *Controller[T]) Validate() error {
	if !c.IsOpen() {
		return ErrFormClosed
	}
	if c.validate == nil {
		return nil
	}
	return c.validate(c.draft)
}

// Submit validates the draft and passes it to handler. On success the form
// closes; on a validation error it stays open with the draft intact.
func (c *Controller[T]) Submit(handler func(T) (T, error)) (T, error) {
	var zero T
	if err := c.Validate(); err != nil {
		return zero, err
	}
	out, err := handler(c.draft.Clone())
	if err != nil {
		return zero, err
	}
	c.close()
	return out, nil
}

func (c *Controller[T]) close() {
	var zero T
	c.mode = ModeClosed
	c.editID = ""
	c.draft = zero
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Required(field)
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return domain.ValidationError{Field: field, Msg: "must be one of " + strings.Join(allowed, ", ")}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
