package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		187500:  "187,500",
		1234567: "1,234,567",
		-4200:   "-4,200",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%d)", in)
	}
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "950", FormatCompact(950))
	assert.Equal(t, "187.5K", FormatCompact(187500))
	assert.Equal(t, "1.2M", FormatCompact(1_234_567))
	assert.Equal(t, "3.0B", FormatCompact(3_000_000_000))
}

func TestCurrencyFormatter_USD(t *testing.T) {
	cf, err := NewCurrencyFormatter("usd", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "USD", cf.Code())
	assert.Equal(t, "$187,500", cf.Format(187500))
	assert.Equal(t, "$0", cf.Format(0))
	assert.Equal(t, "$629,375", cf.Format(629375))
	assert.Equal(t, "$187.5K", cf.FormatCompact(187500))
}

func TestCurrencyFormatter_EuroSuffix(t *testing.T) {
	cf, err := NewCurrencyFormatter("EUR", "de-DE")
	require.NoError(t, err)
	assert.Equal(t, "187.500 €", cf.Format(187500))
}

func TestCurrencyFormatter_UnknownSymbol(t *testing.T) {
	cf, err := NewCurrencyFormatter("SEK", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "SEK 1,000", cf.Format(1000))
}

func TestCurrencyFormatter_Invalid(t *testing.T) {
	_, err := NewCurrencyFormatter("DOLLARS", "en-US")
	assert.Error(t, err)

	_, err = NewCurrencyFormatter("USD", "not a locale!")
	assert.Error(t, err)
}

func TestShareWidths(t *testing.T) {
	entries := calc.ChartData(model.Impacts{187500, 121875, 20000, 300000})
	widths := ShareWidths(entries, 40)
	require.Len(t, widths, 4)

	sum := 0
	for _, w := range widths {
		sum += w
	}
	assert.Equal(t, 40, sum)
	assert.Greater(t, widths[3], widths[0], "donor lapse is the largest slice")

	assert.Nil(t, ShareWidths(nil, 40))
}

func TestShareWidths_SaturatedImpacts(t *testing.T) {
	r := calc.Aggregate(model.Impacts{math.MaxInt64, math.MaxInt64, 20000, 300000})
	for _, width := range []int{1, 7, 40, 80} {
		widths := ShareWidths(r.ChartData, width)
		require.Len(t, widths, 4)

		sum := 0
		for i, w := range widths {
			assert.GreaterOrEqual(t, w, 0, "entry %d at width %d", i, width)
			sum += w
		}
		assert.Equal(t, width, sum)
	}

	out := RenderResult(r, DefaultCurrencyFormatter(), 60)
	assert.Contains(t, out, "$9,223,372,036,854,775,807")
}

func TestRenderShareBar_Width(t *testing.T) {
	entries := calc.ChartData(model.Impacts{10, 0, 30, 0})
	bar := RenderShareBar(entries, 20)
	assert.Equal(t, 20, lipgloss.Width(bar))

	empty := RenderShareBar(nil, 12)
	assert.Equal(t, 12, lipgloss.Width(empty))
}

func TestRenderResult(t *testing.T) {
	r := calc.Aggregate(model.Impacts{187500, 121875, 20000, 300000})
	r.FormulaSet = "standard"
	out := RenderResult(r, DefaultCurrencyFormatter(), 40)

	for _, want := range []string{"Admin Waste", "Donor Lapse", "$629,375", "$309,375", "Opportunity Cost", "47.7%"} {
		assert.True(t, strings.Contains(out, want), "missing %q", want)
	}
}

func TestRenderIncomplete(t *testing.T) {
	out := RenderIncomplete(map[model.Section][]string{
		model.MissedUpgrades: {"realization-rate"},
	})
	assert.Contains(t, out, "Missed Upgrades")
	assert.Contains(t, out, "realization-rate")
	assert.NotContains(t, out, "Admin Waste")
}
