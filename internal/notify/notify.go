// Package notify carries the human-readable messages emitted after every
// store mutation. Delivery is fire-and-forget.
package notify

import (
	"time"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/utils"
)

type Notification struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    domain.Severity `json:"severity"`
	At          time.Time       `json:"at"`
}

// Sink receives notifications. Implementations must not block the caller.
type Sink interface {
	Notify(title, description string, severity domain.Severity)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(title, description string, severity domain.Severity)

func (f SinkFunc) Notify(title, description string, severity domain.Severity) {
	f(title, description, severity)
}

// Discard drops everything.
var Discard Sink = SinkFunc(func(string, string, domain.Severity) {})

// LogSink writes notifications to the standard log.
type LogSink struct{}

func (LogSink) Notify(title, description string, severity domain.Severity) {
	utils.LogEvent("", "notify", string(severity), title+": "+description)
}

// Multi fans a notification out to every sink in order.
type Multi []Sink

func (m Multi) Notify(title, description string, severity domain.Severity) {
	for _, s := range m {
		if s != nil {
			s.Notify(title, description, severity)
		}
	}
}
