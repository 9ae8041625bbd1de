package repositories

import (
	"fmt"
	"strings"
	"sync"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/notify"
)

// Record is an entity kept by EntityStore. Clone must deep-copy every slice
// and pointer so callers never share memory with the store.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	Clone() T
}

// Predicate decides whether a record is included in a filter result.
type Predicate[T any] func(T) bool

// MutationObserver is told about every create, update and delete.
type MutationObserver interface {
	ObserveMutation(entity, op string, found bool, size int)
}

type NotifyPolicy string

const (
	// NotifyOnMatch emits a notification only when the id matched a record.
	NotifyOnMatch NotifyPolicy = "on-match"
	// NotifyAlways emits a notification for every mutation, no-ops included.
	NotifyAlways NotifyPolicy = "always"
)

func ParseNotifyPolicy(s string) (NotifyPolicy, error) {
	switch NotifyPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", NotifyOnMatch:
		return NotifyOnMatch, nil
	case NotifyAlways:
		return NotifyAlways, nil
	default:
		return "", fmt.Errorf("unknown notify policy %q", s)
	}
}

type StoreOptions[T any] struct {
	Entity   string
	Title    string
	IDs      IDGenerator
	Sink     notify.Sink
	Policy   NotifyPolicy
	Observer MutationObserver
	// Finalize runs on Create after the identifier is assigned.
	Finalize func(T) T
	// Subject names a record in notifications. rec is the zero value when
	// found is false.
	Subject func(id string, rec T, found bool) string
}

// EntityStore holds the ordered collection of one entity type in memory.
// Every operation runs under one lock, so mutations observe the order in
// which they were dispatched.
type EntityStore[T Record[T]] struct {
	mu      sync.RWMutex
	records []T
	opts    StoreOptions[T]
}

func NewEntityStore[T Record[T]](opts StoreOptions[T], seed []T) *EntityStore[T] {
	if opts.IDs == nil {
		opts.IDs = NewSequenceIDs(strings.ToUpper(opts.Title))
	}
	if opts.Sink == nil {
		opts.Sink = notify.Discard
	}
	if opts.Policy == "" {
		opts.Policy = NotifyOnMatch
	}
	if opts.Subject == nil {
		title := opts.Title
		opts.Subject = func(id string, _ T, _ bool) string { return title + " " + id }
	}
	records := make([]T, 0, len(seed))
	for _, r := range seed {
		records = append(records, r.Clone())
	}
	return &EntityStore[T]{records: records, opts: opts}
}

// Entity returns the store's entity key.
func (s *EntityStore[T]) Entity() string { return s.opts.Entity }

// Create assigns a fresh identifier to draft, appends it and returns the
// stored record. The draft is not validated here.
func (s *EntityStore[T]) Create(draft T) T {
	s.mu.Lock()
	rec := draft.Clone().WithID(s.opts.IDs.NextID(s.idsLocked()))
	if s.opts.Finalize != nil {
		rec = s.opts.Finalize(rec)
	}
	s.records = append(s.records, rec)
	size := len(s.records)
	s.mu.Unlock()

	s.emit("create", rec.GetID(), rec, true, size)
	return rec.Clone()
}

// Update applies fn to the record with the given id in place. The record
// keeps its position and identifier. found is false when no record matched,
// in which case the collection is untouched.
func (s *EntityStore[T]) Update(id string, fn func(*T)) (T, bool) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		size := len(s.records)
		s.mu.Unlock()
		var zero T
		s.emit("update", id, zero, false, size)
		return zero, false
	}
	rec := s.records[idx].Clone()
	fn(&rec)
	rec = rec.WithID(id)
	s.records[idx] = rec
	size := len(s.records)
	s.mu.Unlock()

	s.emit("update", id, rec, true, size)
	return rec.Clone(), true
}

// Replace swaps the whole record with the given id for rec.
func (s *EntityStore[T]) Replace(id string, rec T) (T, bool) {
	return s.Update(id, func(p *T) { *p = rec.Clone() })
}

// Merge shallow-merges the top-level JSON keys in patch over the record with
// the given id. A malformed patch leaves the record untouched and emits nothing.
func (s *EntityStore[T]) Merge(id string, patch []byte) (T, bool, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		size := len(s.records)
		s.mu.Unlock()
		var zero T
		s.emit("update", id, zero, false, size)
		return zero, false, nil
	}
	merged, err := MergeJSON(s.records[idx], patch)
	if err != nil {
		s.mu.Unlock()
		var zero T
		return zero, true, err
	}
	merged = merged.WithID(id)
	s.records[idx] = merged
	size := len(s.records)
	s.mu.Unlock()

	s.emit("update", id, merged, true, size)
	return merged.Clone(), true, nil
}

// Delete removes the record with the given id and returns it.
func (s *EntityStore[T]) Delete(id string) (T, bool) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	var removed T
	found := idx >= 0
	if found {
		removed = s.records[idx]
		s.records = append(s.records[:idx:idx], s.records[idx+1:]...)
	}
	size := len(s.records)
	s.mu.Unlock()

	s.emit("delete", id, removed, found, size)
	return removed, found
}

func (s *EntityStore[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.records[idx].Clone(), true
	}
	var zero T
	return zero, false
}

// List returns a copy of the whole collection in order.
func (s *EntityStore[T]) List() []T {
	return s.Filter(nil)
}

// Filter returns the records accepted by pred, in collection order. A nil
// predicate accepts everything.
func (s *EntityStore[T]) Filter(pred Predicate[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		if pred == nil || pred(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *EntityStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *EntityStore[T]) indexLocked(id string) int {
	for i, r := range s.records {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

func (s *EntityStore[T]) idsLocked() []string {
	ids := make([]string, len(s.records))
	for i, r := range s.records {
		ids[i] = r.GetID()
	}
	return ids
}

var opVerbs = map[string]string{
	"create": "Created",
	"update": "Updated",
	"delete": "Deleted",
}

func (s *EntityStore[T]) emit(op, id string, rec T, found bool, size int) {
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveMutation(s.opts.Entity, op, found, size)
	}
	if !found && s.opts.Policy != NotifyAlways {
		return
	}
	verb := opVerbs[op]
	severity := domain.SeveritySuccess
	if op == "delete" {
		severity = domain.SeverityDestructive
	}
	subject := s.opts.Subject(id, rec, found)
	s.opts.Sink.Notify(
		s.opts.Title+" "+verb,
		fmt.Sprintf("%s has been successfully %s.", subject, strings.ToLower(verb)),
		severity,
	)
}
