package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"chauffeur-admin/internal/utils"

	"github.com/google/uuid"
)

const idWidth = 3

// IDGenerator produces the identifier of a record being created. existing
// holds the identifiers currently in the store.
type IDGenerator interface {
	NextID(existing []string) string
}

type IDScheme string

const (
	SchemeSequence IDScheme = "sequence"
	SchemeLength   IDScheme = "length"
	SchemeUUID     IDScheme = "uuid"
)

func ParseIDScheme(s string) (IDScheme, error) {
	switch IDScheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeSequence:
		return SchemeSequence, nil
	case SchemeLength:
		return SchemeLength, nil
	case SchemeUUID:
		return SchemeUUID, nil
	default:
		return "", fmt.Errorf("unknown id scheme %q", s)
	}
}

func NewIDGenerator(scheme IDScheme, prefix string) IDGenerator {
	switch scheme {
	case SchemeLength:
		return LengthIDs{Prefix: prefix}
	case SchemeUUID:
		return UUIDIDs{Prefix: prefix}
	default:
		return NewSequenceIDs(prefix)
	}
}

// SequenceIDs hands out <prefix><n> from a counter that only moves forward,
// so an identifier is never reused after a delete.
type SequenceIDs struct {
	Prefix string

	mu   sync.Mutex
	last int
}

func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{Prefix: prefix}
}

func (g *SequenceIDs) NextID(existing []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n := MaxSequence(g.Prefix, existing); n > g.last {
		g.last = n
	}
	g.last++
	return utils.PadSequence(g.Prefix, g.last, idWidth)
}

// LengthIDs derives <prefix><len+1> from the collection size. A delete
// followed by a create can hand out an identifier that is still in use.
type LengthIDs struct {
	Prefix string
}

func (g LengthIDs) NextID(existing []string) string {
	return utils.PadSequence(g.Prefix, len(existing)+1, idWidth)
}

// UUIDIDs hands out <prefix>-<uuid>.
type UUIDIDs struct {
	Prefix string
}

func (g UUIDIDs) NextID([]string) string {
	if g.Prefix == "" || strings.HasSuffix(g.Prefix, "-") {
		return g.Prefix + uuid.NewString()
	}
	return g.Prefix + "-" + uuid.NewString()
}

// MaxSequence returns the highest numeric suffix among ids carrying prefix.
func MaxSequence(prefix string, ids []string) int {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
