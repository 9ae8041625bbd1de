package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveMutation(t *testing.T) {
	m := New()
	m.ObserveMutation("booking", "create", true, 4)
	m.ObserveMutation("booking", "delete", false, 4)
	m.ObserveMutation("booking", "delete", true, 3)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("booking", "delete", "false")); got != 1 {
		t.Fatalf("expected one missed delete, got %v", got)
	}
	if got := testutil.ToFloat64(m.records.WithLabelValues("booking")); got != 3 {
		t.Fatalf("expected gauge 3, got %v", got)
	}
}
