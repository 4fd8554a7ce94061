package lengthmetric

import (
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

func (m *Metric) record(length uint64) {
	m.length.Store(length)
	m.changes.Add(1)
	for {
		maxLength := m.maxLength.Load()
		if length <= maxLength ||
			m.maxLength.CompareAndSwap(maxLength, length) {
			return
		}
	}
}

func (m *Metric) register(dirname, description string) error {
	dir, err := tricorder.RegisterDirectory(dirname)
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("length", m.Length, units.None,
		"number of "+description)
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("max-length", m.MaxLength, units.None,
		"maximum number of "+description)
	if err != nil {
		return err
	}
	return dir.RegisterMetric("changes", m.Changes, units.None,
		"number of changes to the number of "+description)
}
