package lengthmetric

import (
	"sync/atomic"
)

// Metric tracks the length of a container. Its Record method may be passed
// wherever a length recorder function is accepted. All methods are safe for
// concurrent use, so the values may be read while the container is modified
// by another goroutine.
type Metric struct {
	changes   atomic.Uint64
	length    atomic.Uint64
	maxLength atomic.Uint64
}

// New creates a Metric.
func New() *Metric {
	return &Metric{}
}

// Changes returns the number of times a length was recorded.
func (m *Metric) Changes() uint64 {
	return m.changes.Load()
}

// Length returns the most recently recorded length.
func (m *Metric) Length() uint {
	return uint(m.length.Load())
}

// MaxLength returns the largest length recorded.
func (m *Metric) MaxLength() uint {
	return uint(m.maxLength.Load())
}

// Record records a new length.
func (m *Metric) Record(length uint) {
	m.record(uint64(length))
}

// Register publishes the metrics under the tricorder directory dirname.
// description names the container, for example "pending requests".
func (m *Metric) Register(dirname, description string) error {
	return m.register(dirname, description)
}
