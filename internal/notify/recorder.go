package notify

import (
	"sync"
	"time"

	"chauffeur-admin/internal/domain"
)

const defaultRecorderSize = 50

// Recorder keeps the latest notifications in a fixed-size ring.
type Recorder struct {
	mu    sync.Mutex
	buf   []Notification
	next  int
	count int
	now   func() time.Time
}

func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = defaultRecorderSize
	}
	return &Recorder{buf: make([]Notification, size), now: time.Now}
}

func (r *Recorder) Notify(title, description string, severity domain.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
		At:          r.now().UTC(),
	}
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Recent returns the stored notifications, newest first.
func (r *Recorder) Recent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, 0, r.count)
	for i := 1; i <= r.count; i++ {
		idx := (r.next - i + len(r.buf)) % len(r.buf)
		out = append(out, r.buf[idx])
	}
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
