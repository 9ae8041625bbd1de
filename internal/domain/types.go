package domain

import "strings"

// Criteria holds the optional filter constraints a list screen sends.
// Empty fields are unconstrained.
type Criteria struct {
	Search       string `form:"search" json:"search,omitempty"`
	Status       string `form:"status" json:"status,omitempty"`
	Type         string `form:"type" json:"type,omitempty"`
	Category     string `form:"category" json:"category,omitempty"`
	Availability string `form:"availability" json:"availability,omitempty"`
	DateFrom     string `form:"dateFrom" json:"dateFrom,omitempty"`
	DateTo       string `form:"dateTo" json:"dateTo,omitempty"`
}

// Normalize trims every field.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		Search:       strings.TrimSpace(c.Search),
		Status:       strings.TrimSpace(c.Status),
		Type:         strings.TrimSpace(c.Type),
		Category:     strings.TrimSpace(c.Category),
		Availability: strings.TrimSpace(c.Availability),
		DateFrom:     strings.TrimSpace(c.DateFrom),
		DateTo:       strings.TrimSpace(c.DateTo),
	}
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Normalize() == Criteria{}
}

// Severity is the visual variant of a notification.
type Severity string

const (
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)
