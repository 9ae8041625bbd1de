package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/forms"
	"chauffeur-admin/internal/repositories"
)

// EntityService runs the create / edit / delete flow of one entity type over
// its store: drafts come from a form controller, submissions land in the store.
type EntityService[T repositories.Record[T]] struct {
	Resource  string
	Store     *repositories.EntityStore[T]
	Predicate func(domain.Criteria) repositories.Predicate[T]
	NewForm   func() *forms.Controller[T]
	// Prepare adjusts a create or edit draft after the payload is applied and
	// before validation.
	Prepare func(*forms.Controller[T]) error
}

// List returns the records matching c in collection order.
func (s EntityService[T]) List(c domain.Criteria) []T {
	c = c.Normalize()
	if c.IsZero() || s.Predicate == nil {
		return s.Store.List()
	}
	return s.Store.Filter(s.Predicate(c))
}

func (s EntityService[T]) Get(id string) (T, error) {
	rec, ok := s.Store.Get(strings.TrimSpace(id))
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	return rec, nil
}

// BlankDraft returns the defaults a new record starts from.
func (s EntityService[T]) BlankDraft() (T, error) {
	form := s.NewForm()
	form.OpenCreate()
	return form.Draft()
}

// EditDraft returns the draft an edit of id starts from.
func (s EntityService[T]) EditDraft(id string) (T, error) {
	rec, err := s.Get(id)
	if err != nil {
		return rec, err
	}
	form := s.NewForm()
	form.OpenEdit(rec.GetID(), rec)
	return form.Draft()
}

// Create applies raw over the blank draft, validates it and stores it.
func (s EntityService[T]) Create(raw []byte) (T, error) {
	form := s.NewForm()
	form.OpenCreate()
	if err := applyBody(form, raw); err != nil {
		var zero T
		return zero, err
	}
	if s.Prepare != nil {
		if err := s.Prepare(form); err != nil {
			var zero T
			return zero, err
		}
	}
	return form.Submit(func(draft T) (T, error) {
		return s.Store.Create(draft), nil
	})
}

// Replace opens an edit draft of id, applies raw, validates and writes the
// whole draft back.
func (s EntityService[T]) Replace(id string, raw []byte) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if err := checkBodyID(s.Resource, id, raw); err != nil {
		return zero, err
	}
	existing, ok := s.Store.Get(id)
	if !ok {
		// the miss still goes through the store so the notify policy sees it
		s.Store.Update(id, func(*T) {})
		return zero, s.notFound(id)
	}
	form := s.NewForm()
	form.OpenEdit(id, existing)
	if err := applyBody(form, raw); err != nil {
		return zero, err
	}
	if s.Prepare != nil {
		if err := s.Prepare(form); err != nil {
			return zero, err
		}
	}
	return form.Submit(func(draft T) (T, error) {
		out, found := s.Store.Replace(id, draft)
		if !found {
			return zero, s.notFound(id)
		}
		return out, nil
	})
}

// Patch shallow-merges raw over the stored record without validation.
func (s EntityService[T]) Patch(id string, raw []byte) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if err := checkBodyID(s.Resource, id, raw); err != nil {
		return zero, err
	}
	out, found, err := s.Store.Merge(id, raw)
	if !found {
		return zero, s.notFound(id)
	}
	if err != nil {
		return zero, domain.ValidationError{Field: "body", Msg: err.Error(), Err: err}
	}
	return out, nil
}

func (s EntityService[T]) Delete(id string) (T, error) {
	id = strings.TrimSpace(id)
	removed, found := s.Store.Delete(id)
	if !found {
		var zero T
		return zero, s.notFound(id)
	}
	return removed, nil
}

func (s EntityService[T]) Len() int { return s.Store.Len() }

func (s EntityService[T]) notFound(id string) error {
	return domain.NotFoundError{Resource: s.Resource, ID: id}
}

func applyBody[T forms.Cloner[T]](form *forms.Controller[T], raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return form.Apply(raw)
}

// checkBodyID rejects a payload whose "id" names a different record than the
// path.
func checkBodyID(resource, id string, raw []byte) error {
	var body struct {
		ID *string `json:"id"`
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return domain.ValidationError{Field: "body", Msg: err.Error(), Err: err}
	}
	if body.ID != nil && *body.ID != "" && *body.ID != id {
		return domain.ConflictError{Resource: resource, Msg: "payload id " + *body.ID + " does not match " + id}
	}
	return nil
}
