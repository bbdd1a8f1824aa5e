package model

// Impacts holds one rounded impact per section, indexed by Section.
type Impacts [SectionCount]int64

// Of returns the impact of s, or 0 for an invalid section.
func (im Impacts) Of(s Section) int64 {
	if !s.Valid() {
		return 0
	}
	return im[s]
}

// ChartEntry is one slice of the impact chart.
type ChartEntry struct {
	Section  Section `json:"-" yaml:"-"`
	Name     string  `json:"name" yaml:"name"`
	Value    int64   `json:"value" yaml:"value"`
	Color    string  `json:"color" yaml:"color"`
	Category string  `json:"category" yaml:"category"`
}

// CategoryTotal is the sum of impacts in one category.
type CategoryTotal struct {
	Category Category `json:"-" yaml:"-"`
	Name     string   `json:"name" yaml:"name"`
	Value    int64    `json:"value" yaml:"value"`
}
