package calc

import (
	"testing"

	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleState(t *testing.T) model.CalculatorState {
	t.Helper()
	m := state.New()
	m.Prefill(model.ExamplePreset())
	require.True(t, m.AllSectionsComplete())
	return m.Snapshot()
}

func set(t *testing.T, m *state.Manager, s model.Section, kv ...string) {
	t.Helper()
	for i := 0; i+1 < len(kv); i += 2 {
		require.True(t, m.SetField(s, kv[i], kv[i+1]), "%s.%s", s.Key(), kv[i])
	}
}

func TestAdminWasteImpact(t *testing.T) {
	m := state.New()
	set(t, m, model.AdminWaste, "annualSalary", "125000", "hoursPerWeek", "15", "numberOfMGOs", "4")

	im := ComputeImpacts(m.Snapshot(), FormulaSetByName("standard"))
	assert.Equal(t, int64(187500), im.Of(model.AdminWaste))
}

func TestDonorLapseImpact(t *testing.T) {
	m := state.New()
	set(t, m, model.DonorLapse, "lapsedDonors", "15", "averageGift", "10000", "numberOfPortfolios", "2")

	im := ComputeImpacts(m.Snapshot(), FormulaSetByName("standard"))
	assert.Equal(t, int64(300000), im.Of(model.DonorLapse))
}

func TestStandardFormulas(t *testing.T) {
	im := ComputeImpacts(exampleState(t), FormulaSetByName(DefaultFormulaSet))
	assert.Equal(t, model.Impacts{187500, 121875, 20000, 300000}, im)
}

func TestRoundsHalfUp(t *testing.T) {
	m := state.New()
	set(t, m, model.MissedUpgrades,
		"upgradableDonors", "1", "averageGiftSize", "5", "upgradePercentage", "50", "realizationRate", "100")
	assert.Equal(t, int64(3), ComputeImpacts(m.Snapshot(), FormulaSetByName("standard")).Of(model.MissedUpgrades))

	set(t, m, model.MissedUpgrades, "averageGiftSize", "1")
	assert.Equal(t, int64(1), ComputeImpacts(m.Snapshot(), FormulaSetByName("standard")).Of(model.MissedUpgrades))

	set(t, m, model.MissedUpgrades, "upgradePercentage", "40")
	assert.Equal(t, int64(0), ComputeImpacts(m.Snapshot(), FormulaSetByName("standard")).Of(model.MissedUpgrades))
}

func TestFormulaVariants(t *testing.T) {
	cs := exampleState(t)

	monthly := ComputeImpacts(cs, FormulaSetByName("monthly-upgrades"))
	assert.Equal(t, int64(240000), monthly.Of(model.MissedUpgrades))
	assert.Equal(t, int64(300000), monthly.Of(model.DonorLapse))

	pct := ComputeImpacts(cs, FormulaSetByName("lapse-percent"))
	assert.Equal(t, int64(3000), pct.Of(model.DonorLapse))
	assert.Equal(t, int64(20000), pct.Of(model.MissedUpgrades))
}

func TestFormulaSetByName_FallsBack(t *testing.T) {
	assert.Equal(t, DefaultFormulaSet, FormulaSetByName("nonsense").Name)
	_, ok := LookupFormulaSet("nonsense")
	assert.False(t, ok)
	assert.Equal(t, []string{"standard", "lapse-percent", "monthly-upgrades"}, FormulaSetNames())
}

func TestIncompleteStateCountsMissingAsZero(t *testing.T) {
	m := state.New()
	set(t, m, model.AdminWaste, "annualSalary", "125000", "hoursPerWeek", "15")

	im := ComputeImpacts(m.Snapshot(), FormulaSetByName("standard"))
	assert.Equal(t, model.Impacts{}, im)
}

func TestCalculate_Idempotent(t *testing.T) {
	cs := exampleState(t)
	fs := FormulaSetByName("standard")
	first := Calculate(cs, fs)
	second := Calculate(cs, fs)
	assert.Equal(t, first, second)
}

func TestAggregate_Totals(t *testing.T) {
	r := Calculate(exampleState(t), FormulaSetByName("standard"))
	assert.Equal(t, "standard", r.FormulaSet)
	assert.Equal(t, int64(629375), r.TotalImpact)
	assert.Equal(t, int64(309375), r.WastedAnnualSalarySpend)
	assert.Equal(t, int64(320000), r.OpportunityCost)
	require.Len(t, r.Categories, 2)
	assert.Equal(t, "Wasted Annual Salary Spend", r.Categories[0].Name)
	assert.Equal(t, r.OpportunityCost, r.Categories[1].Value)
}

func TestChartData_OmitsZeroImpact(t *testing.T) {
	im := model.Impacts{100, 0, 0, 50}
	r := Aggregate(im)

	require.Len(t, r.ChartData, 2)
	assert.Equal(t, model.ChartEntry{
		Section:  model.AdminWaste,
		Name:     "Admin Waste",
		Value:    100,
		Color:    "#4385BE",
		Category: "Wasted Annual Salary Spend",
	}, r.ChartData[0])
	assert.Equal(t, model.DonorLapse, r.ChartData[1].Section)
	assert.Equal(t, "Opportunity Cost", r.ChartData[1].Category)
	assert.Equal(t, int64(150), r.TotalImpact)
}

func TestChartData_AllZero(t *testing.T) {
	r := Aggregate(model.Impacts{})
	assert.Empty(t, r.ChartData)
	assert.Zero(t, r.TotalImpact)
}

func TestShare(t *testing.T) {
	assert.InDelta(t, 0.25, Share(25, 100), 1e-9)
	assert.Zero(t, Share(5, 0))
	assert.Zero(t, Share(0, 10))
	assert.Equal(t, 1.0, Share(20, 10))
}

func TestTotalSaturates(t *testing.T) {
	r := Aggregate(model.Impacts{1 << 62, 1 << 62, 1 << 62, 1})
	assert.Equal(t, int64(1<<63-1), r.TotalImpact)
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(ChartData(model.Impacts{0, 10, 5, 0}))
	require.Len(t, groups, 2)
	assert.Equal(t, model.CategoryWastedSalary, groups[0].Category)
	assert.Equal(t, int64(10), groups[0].Value)
	assert.Equal(t, int64(5), groups[1].Value)

	empty := GroupByCategory(nil)
	assert.Zero(t, empty[0].Value)
	assert.Equal(t, "Opportunity Cost", empty[1].Name)
}
