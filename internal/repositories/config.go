package repositories

import (
	"time"

	"chauffeur-admin/internal/notify"
)

// Config carries the settings shared by every entity repository.
type Config struct {
	IDScheme IDScheme
	Sink     notify.Sink
	Policy   NotifyPolicy
	Observer MutationObserver
	Now      func() time.Time
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func storeOptions[T any](cfg Config, entity, title, prefix string) StoreOptions[T] {
	return StoreOptions[T]{
		Entity:   entity,
		Title:    title,
		IDs:      NewIDGenerator(cfg.IDScheme, prefix),
		Sink:     cfg.Sink,
		Policy:   cfg.Policy,
		Observer: cfg.Observer,
	}
}
