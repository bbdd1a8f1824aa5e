package model

// SectionState holds the entered values of one section and its last computed impact.
// Fields is indexed like the section's SectionDef.Fields; slots past the
// section's field count stay unset and are ignored.
type SectionState struct {
	Fields [MaxFields]Value
	Impact int64
}

// CalculatorState owns the four sections. It is a plain value: copying it
// copies every field, so callers never share entries by accident.
type CalculatorState struct {
	Sections [SectionCount]SectionState
}

// Value returns the entry for the named field, or an unset Value when the
// section or field does not exist.
func (cs CalculatorState) Value(s Section, field string) Value {
	if !s.Valid() {
		return Unset()
	}
	idx := s.Def().FieldIndex(field)
	if idx < 0 {
		return Unset()
	}
	return cs.Sections[s].Fields[idx]
}

// Complete reports whether every input field of s is set.
func (cs CalculatorState) Complete(s Section) bool {
	if !s.Valid() {
		return false
	}
	n := len(s.Def().Fields)
	for i := 0; i < n; i++ {
		if !cs.Sections[s].Fields[i].IsSet() {
			return false
		}
	}
	return true
}

// Impacts returns the stored impact of every section.
func (cs CalculatorState) Impacts() Impacts {
	var out Impacts
	for i := range cs.Sections {
		out[i] = cs.Sections[i].Impact
	}
	return out
}

// Preset maps section key -> field key -> value. Keys are matched with
// SectionByKey and FieldIndex, so snake_case and camelCase both work.
type Preset map[string]map[string]int64

// ExamplePreset returns the example values shipped with the widget.
func ExamplePreset() Preset {
	p := make(Preset, SectionCount)
	for _, d := range sectionDefs {
		fields := make(map[string]int64, len(d.Fields))
		for _, f := range d.Fields {
			fields[f.Key] = f.Example
		}
		p[d.Key] = fields
	}
	return p
}

// Merge returns a copy of p with every entry of over applied on top.
func (p Preset) Merge(over Preset) Preset {
	out := make(Preset, len(p))
	for sk, fields := range p {
		cp := make(map[string]int64, len(fields))
		for fk, v := range fields {
			cp[fk] = v
		}
		out[sk] = cp
	}
	for sk, fields := range over {
		s, ok := SectionByKey(sk)
		if !ok {
			continue
		}
		dst, ok := out[s.Key()]
		if !ok {
			dst = make(map[string]int64, len(fields))
			out[s.Key()] = dst
		}
		def := s.Def()
		for fk, v := range fields {
			idx := def.FieldIndex(fk)
			if idx < 0 {
				continue
			}
			dst[def.Fields[idx].Key] = v
		}
	}
	return out
}
