package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantSet bool
	}{
		{"1,250abc", 1250, true},
		{"125000", 125000, true},
		{"$125,000.00", 12500000, true},
		{"-15", 15, true},
		{"0", 0, true},
		{"000", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{" , . - ", 0, false},
	}
	for _, tt := range tests {
		got, set := ParseValue(tt.raw).Get()
		assert.Equal(t, tt.wantSet, set, "set for %q", tt.raw)
		assert.Equal(t, tt.want, got, "value for %q", tt.raw)
	}
}

func TestParseValue_Saturates(t *testing.T) {
	v := ParseValue("99999999999999999999999999")
	n, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), n)
}

func TestValue_ZeroIsSet(t *testing.T) {
	assert.False(t, Value{}.IsSet())
	assert.True(t, Of(0).IsSet())
	assert.Equal(t, "0", Of(0).String())
	assert.Equal(t, "", Unset().String())
	assert.Equal(t, int64(7), Unset().Or(7))
	assert.Equal(t, int64(0), Of(-4).Or(7))
}

func TestSectionByKey(t *testing.T) {
	for _, key := range []string{"admin_waste", "admin-waste", "AdminWaste", "ADMIN_WASTE"} {
		s, ok := SectionByKey(key)
		require.True(t, ok, key)
		assert.Equal(t, AdminWaste, s)
	}
	_, ok := SectionByKey("payroll")
	assert.False(t, ok)
}

func TestFieldIndex(t *testing.T) {
	def := AdminWaste.Def()
	assert.Equal(t, 0, def.FieldIndex("annualSalary"))
	assert.Equal(t, 2, def.FieldIndex("number_of_mgos"))
	assert.Equal(t, 1, def.FieldIndex("hours-per-week"))
	assert.Equal(t, -1, def.FieldIndex("hoursWasted"))
}

func TestSectionTable(t *testing.T) {
	wantFields := map[Section][]string{
		AdminWaste:          {"annualSalary", "hoursPerWeek", "numberOfMGOs"},
		SiloedCollaboration: {"annualSalary", "hoursWasted", "numberOfUsers"},
		MissedUpgrades:      {"upgradableDonors", "averageGiftSize", "upgradePercentage", "realizationRate"},
		DonorLapse:          {"lapsedDonors", "averageGift", "numberOfPortfolios"},
	}
	for _, s := range AllSections() {
		def := s.Def()
		require.LessOrEqual(t, len(def.Fields), MaxFields)
		var keys []string
		for _, f := range def.Fields {
			keys = append(keys, f.Key)
		}
		assert.Equal(t, wantFields[s], keys, s.String())
	}
	assert.Equal(t, CategoryWastedSalary, SiloedCollaboration.Def().Category)
	assert.Equal(t, CategoryOpportunityCost, DonorLapse.Def().Category)
	assert.Equal(t, "Unknown", Section(9).String())
}

func TestCaseConversion(t *testing.T) {
	assert.Equal(t, "number_of_mgos", SnakeCase("numberOfMGOs"))
	assert.Equal(t, "annual_salary", SnakeCase("annualSalary"))
	assert.Equal(t, "number-of-mgos", KebabCase("numberOfMGOs"))
	assert.Equal(t, "admin-waste", KebabCase("admin_waste"))
}

func TestCalculatorState_Complete(t *testing.T) {
	var cs CalculatorState
	assert.False(t, cs.Complete(AdminWaste))

	cs.Sections[AdminWaste].Fields[0] = Of(1)
	cs.Sections[AdminWaste].Fields[1] = Of(0)
	assert.False(t, cs.Complete(AdminWaste))

	cs.Sections[AdminWaste].Fields[2] = Of(3)
	assert.True(t, cs.Complete(AdminWaste))
	assert.Equal(t, int64(3), cs.Value(AdminWaste, "numberOfMGOs").Or(-1))
	assert.False(t, cs.Value(AdminWaste, "bogus").IsSet())
}

func TestPresetMerge(t *testing.T) {
	base := ExamplePreset()
	merged := base.Merge(Preset{
		"admin-waste": {"annual_salary": 90000},
		"nope":        {"annualSalary": 1},
		"donor_lapse": {"unknown": 5},
	})

	assert.Equal(t, int64(90000), merged["admin_waste"]["annualSalary"])
	assert.Equal(t, int64(125000), base["admin_waste"]["annualSalary"], "base must not change")
	assert.NotContains(t, merged, "nope")
	assert.NotContains(t, merged["donor_lapse"], "unknown")
}
