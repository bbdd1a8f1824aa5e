package calc

import (
	"math"

	"github.com/theirongolddev/roicalc/internal/model"
)

// Result is the outcome of one calculation.
type Result struct {
	FormulaSet              string                `json:"formula_set" yaml:"formula_set"`
	Impacts                 model.Impacts         `json:"impacts" yaml:"impacts"`
	TotalImpact             int64                 `json:"total_impact" yaml:"total_impact"`
	WastedAnnualSalarySpend int64                 `json:"wasted_annual_salary_spend" yaml:"wasted_annual_salary_spend"`
	OpportunityCost         int64                 `json:"opportunity_cost" yaml:"opportunity_cost"`
	ChartData               []model.ChartEntry    `json:"chart_data" yaml:"chart_data"`
	Categories              []model.CategoryTotal `json:"categories" yaml:"categories"`
}

// ComputeImpacts runs every formula of fs against cs and rounds each result
// half-up to a whole number. It reads cs only. Missing fields count as 0; callers
// should only present the result once every section is complete.
func ComputeImpacts(cs model.CalculatorState, fs FormulaSet) model.Impacts {
	var out model.Impacts
	for _, s := range model.AllSections() {
		f := fs.Formulas[s]
		if f == nil {
			continue
		}
		out[s] = roundHalfUp(f(Inputs{def: s.Def(), vals: cs.Sections[s].Fields}))
	}
	return out
}

// Aggregate derives totals, category subtotals, and chart entries from impacts.
func Aggregate(im model.Impacts) Result {
	var r Result
	r.Impacts = im
	for _, s := range model.AllSections() {
		v := im[s]
		r.TotalImpact = addSat(r.TotalImpact, v)
		switch s.Def().Category {
		case model.CategoryWastedSalary:
			r.WastedAnnualSalarySpend = addSat(r.WastedAnnualSalarySpend, v)
		case model.CategoryOpportunityCost:
			r.OpportunityCost = addSat(r.OpportunityCost, v)
		}
	}
	r.ChartData = ChartData(im)
	r.Categories = GroupByCategory(r.ChartData)
	return r
}

// GroupByCategory sums chart entries into the two category totals, in
// category order. Categories with no entries are reported as 0.
func GroupByCategory(entries []model.ChartEntry) []model.CategoryTotal {
	out := []model.CategoryTotal{
		{Category: model.CategoryWastedSalary, Name: model.CategoryWastedSalary.String()},
		{Category: model.CategoryOpportunityCost, Name: model.CategoryOpportunityCost.String()},
	}
	for _, e := range entries {
		c := e.Section.Def().Category
		if int(c) < 0 || int(c) >= len(out) {
			continue
		}
		out[c].Value = addSat(out[c].Value, e.Value)
	}
	return out
}

// Calculate computes impacts with fs and aggregates them.
func Calculate(cs model.CalculatorState, fs FormulaSet) Result {
	r := Aggregate(ComputeImpacts(cs, fs))
	r.FormulaSet = fs.Name
	return r
}

// ChartData returns one entry per section with a positive impact, in section order.
func ChartData(im model.Impacts) []model.ChartEntry {
	entries := make([]model.ChartEntry, 0, model.SectionCount)
	for _, s := range model.AllSections() {
		if im[s] <= 0 {
			continue
		}
		def := s.Def()
		entries = append(entries, model.ChartEntry{
			Section:  s,
			Name:     def.Name,
			Value:    im[s],
			Color:    def.Color,
			Category: def.Category.String(),
		})
	}
	return entries
}

// Share returns value as a fraction of total in [0, 1].
func Share(value, total int64) float64 {
	if total <= 0 || value <= 0 {
		return 0
	}
	s := float64(value) / float64(total)
	if s > 1 {
		return 1
	}
	return s
}

func roundHalfUp(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	r := math.Floor(v + 0.5)
	if r >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(r)
}

func addSat(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
