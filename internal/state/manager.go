// Package state owns the calculator's field values and decides section navigation.
package state

import (
	"github.com/theirongolddev/roicalc/internal/model"

	"github.com/rs/zerolog"
)

// Manager holds one widget instance's CalculatorState. It is not safe for
// concurrent use; each widget owns its own Manager.
type Manager struct {
	state model.CalculatorState
	log   zerolog.Logger
}

// New returns a Manager with every field unset.
func New() *Manager {
	return &Manager{log: zerolog.Nop()}
}

// WithLogger sets the logger used for navigation and edit events.
func (m *Manager) WithLogger(log zerolog.Logger) *Manager {
	m.log = log
	return m
}

// Snapshot returns a copy of the current state for the calculator.
func (m *Manager) Snapshot() model.CalculatorState {
	return m.state
}

// SetField parses raw and stores it in the named field. Non-digit characters
// are stripped first; empty text leaves the field unset. It returns false when
// the section or field does not exist.
func (m *Manager) SetField(s model.Section, field, raw string) bool {
	if !s.Valid() {
		return false
	}
	idx := s.Def().FieldIndex(field)
	if idx < 0 {
		return false
	}
	v := model.ParseValue(raw)
	m.state.Sections[s].Fields[idx] = v
	m.log.Debug().
		Str("section", s.Key()).
		Str("field", field).
		Bool("set", v.IsSet()).
		Msg("field updated")
	return true
}

// SetValue stores an already parsed value.
func (m *Manager) SetValue(s model.Section, field string, v model.Value) bool {
	if !s.Valid() {
		return false
	}
	idx := s.Def().FieldIndex(field)
	if idx < 0 {
		return false
	}
	m.state.Sections[s].Fields[idx] = v
	return true
}

// Field returns the value of the named field.
func (m *Manager) Field(s model.Section, field string) model.Value {
	return m.state.Value(s, field)
}

// IsSectionComplete reports whether every input field of s is set.
func (m *Manager) IsSectionComplete(s model.Section) bool {
	return m.state.Complete(s)
}

// AllSectionsComplete reports whether all four sections are complete.
func (m *Manager) AllSectionsComplete() bool {
	for _, s := range model.AllSections() {
		if !m.state.Complete(s) {
			return false
		}
	}
	return true
}

// Completion returns the completion flag of every section.
func (m *Manager) Completion() [model.SectionCount]bool {
	var out [model.SectionCount]bool
	for _, s := range model.AllSections() {
		out[s] = m.state.Complete(s)
	}
	return out
}

// NextIncompleteSection scans the sections after current in declaration
// order, wrapping around once, and returns the first incomplete one. When
// every other section is complete it returns current.
func (m *Manager) NextIncompleteSection(current model.Section) model.Section {
	if !current.Valid() {
		if s, ok := m.FirstIncompleteSection(); ok {
			return s
		}
		return model.AdminWaste
	}
	for step := 1; step < model.SectionCount; step++ {
		s := model.Section((int(current) + step) % model.SectionCount)
		if !m.state.Complete(s) {
			m.log.Debug().Str("from", current.Key()).Str("to", s.Key()).Msg("next incomplete section")
			return s
		}
	}
	return current
}

// FirstIncompleteSection returns the earliest incomplete section in
// declaration order, or false when all are complete.
func (m *Manager) FirstIncompleteSection() (model.Section, bool) {
	for _, s := range model.AllSections() {
		if !m.state.Complete(s) {
			return s, true
		}
	}
	return 0, false
}

// ApplyImpacts writes all four impacts at once.
func (m *Manager) ApplyImpacts(im model.Impacts) {
	for i := range m.state.Sections {
		m.state.Sections[i].Impact = im[i]
	}
	m.log.Debug().Ints64("impacts", im[:]).Msg("impacts applied")
}

// Reset clears every field and impact.
func (m *Manager) Reset() {
	m.state = model.CalculatorState{}
}

// Prefill writes every value found in p. Unknown keys are skipped.
func (m *Manager) Prefill(p model.Preset) {
	for sk, fields := range p {
		s, ok := model.SectionByKey(sk)
		if !ok {
			m.log.Warn().Str("section", sk).Msg("prefill: unknown section")
			continue
		}
		for fk, v := range fields {
			if !m.SetValue(s, fk, model.Of(v)) {
				m.log.Warn().Str("section", sk).Str("field", fk).Msg("prefill: unknown field")
			}
		}
	}
}
