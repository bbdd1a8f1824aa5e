// Package calc computes section impacts, totals, and chart data from a calculator state.
package calc

import (
	"sort"

	"github.com/theirongolddev/roicalc/internal/model"
)

const (
	workHoursPerYear = 2080
	weeksPerYear     = 52
	monthsPerYear    = 12
)

// DefaultFormulaSet is the canonical formula set name.
const DefaultFormulaSet = "standard"

// Inputs gives a formula named access to one section's values.
// Unset fields read as 0.
type Inputs struct {
	def  model.SectionDef
	vals [model.MaxFields]model.Value
}

// Get returns the named field as a float, or 0 when unset or unknown.
func (in Inputs) Get(field string) float64 {
	idx := in.def.FieldIndex(field)
	if idx < 0 {
		return 0
	}
	return float64(in.vals[idx].Or(0))
}

// Formula computes the unrounded impact of one section.
type Formula func(in Inputs) float64

// FormulaSet is one named table of section formulas.
type FormulaSet struct {
	Name        string
	Description string
	Formulas    [model.SectionCount]Formula
}

func adminWaste(in Inputs) float64 {
	return (in.Get("annualSalary") / workHoursPerYear) * in.Get("hoursPerWeek") * weeksPerYear * in.Get("numberOfMGOs")
}

func siloedCollaboration(in Inputs) float64 {
	return (in.Get("annualSalary") / workHoursPerYear) * in.Get("hoursWasted") * weeksPerYear * in.Get("numberOfUsers")
}

func missedUpgrades(in Inputs) float64 {
	return in.Get("upgradableDonors") * in.Get("averageGiftSize") *
		(in.Get("upgradePercentage") / 100) * (in.Get("realizationRate") / 100)
}

func missedUpgradesMonthly(in Inputs) float64 {
	return missedUpgrades(in) * monthsPerYear
}

func donorLapse(in Inputs) float64 {
	return (in.Get("lapsedDonors") * in.Get("averageGift")) * in.Get("numberOfPortfolios")
}

func donorLapsePercent(in Inputs) float64 {
	return (in.Get("lapsedDonors") * in.Get("averageGift")) * (in.Get("numberOfPortfolios") / 100)
}

var formulaSets = map[string]FormulaSet{
	"standard": {
		Name:        "standard",
		Description: "Canonical formulas",
		Formulas:    [model.SectionCount]Formula{adminWaste, siloedCollaboration, missedUpgrades, donorLapse},
	},
	"monthly-upgrades": {
		Name:        "monthly-upgrades",
		Description: "Missed upgrades counted monthly (x12)",
		Formulas:    [model.SectionCount]Formula{adminWaste, siloedCollaboration, missedUpgradesMonthly, donorLapse},
	},
	"lapse-percent": {
		Name:        "lapse-percent",
		Description: "Portfolios entered as a percentage for donor lapse",
		Formulas:    [model.SectionCount]Formula{adminWaste, siloedCollaboration, missedUpgrades, donorLapsePercent},
	},
}

// LookupFormulaSet returns the named formula set.
func LookupFormulaSet(name string) (FormulaSet, bool) {
	fs, ok := formulaSets[name]
	return fs, ok
}

// FormulaSetByName returns the named set, falling back to the standard set.
func FormulaSetByName(name string) FormulaSet {
	if fs, ok := formulaSets[name]; ok {
		return fs
	}
	return formulaSets[DefaultFormulaSet]
}

// FormulaSetNames lists the known formula sets, standard first.
func FormulaSetNames() []string {
	names := make([]string, 0, len(formulaSets))
	for name := range formulaSets {
		if name != DefaultFormulaSet {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultFormulaSet}, names...)
}
