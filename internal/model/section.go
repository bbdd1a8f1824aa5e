package model

import "strings"

// Section identifies one of the four fixed calculator sections.
type Section int

// Sections in declaration order. Navigation scans in this order.
const (
	AdminWaste Section = iota
	SiloedCollaboration
	MissedUpgrades
	DonorLapse
)

// SectionCount is the number of sections.
const SectionCount = 4

// MaxFields is the largest number of input fields any section has.
const MaxFields = 4

// Category groups sections for the totals and the chart.
type Category int

const (
	CategoryWastedSalary Category = iota
	CategoryOpportunityCost
)

// CategoryCount is the number of categories.
const CategoryCount = 2

func (c Category) String() string {
	switch c {
	case CategoryWastedSalary:
		return "Wasted Annual Salary Spend"
	case CategoryOpportunityCost:
		return "Opportunity Cost"
	}
	return "Unknown"
}

// Unit describes how a field is entered and displayed.
type Unit int

const (
	UnitCurrency Unit = iota
	UnitHours
	UnitCount
	UnitPercent
)

// FieldDef describes one numeric input field.
type FieldDef struct {
	Key     string // canonical camelCase name, e.g. "annualSalary"
	Label   string
	Help    string
	Unit    Unit
	Example int64 // prefill value
}

// SectionDef is the static description of a section.
type SectionDef struct {
	Section     Section
	Key         string
	Name        string
	Description string
	Category    Category
	Color       string
	Fields      []FieldDef
}

var sectionDefs = [SectionCount]SectionDef{
	{
		Section:     AdminWaste,
		Key:         "admin_waste",
		Name:        "Admin Waste",
		Description: "Time major gift officers spend on manual admin work",
		Category:    CategoryWastedSalary,
		Color:       "#4385BE",
		Fields: []FieldDef{
			{Key: "annualSalary", Label: "Annual Salary", Help: "Average MGO salary", Unit: UnitCurrency, Example: 125000},
			{Key: "hoursPerWeek", Label: "Hours per Week", Help: "Hours each MGO loses to admin", Unit: UnitHours, Example: 15},
			{Key: "numberOfMGOs", Label: "Number of MGOs", Help: "Major gift officers on the team", Unit: UnitCount, Example: 4},
		},
	},
	{
		Section:     SiloedCollaboration,
		Key:         "siloed_collaboration",
		Name:        "Siloed Collaboration",
		Description: "Time lost hunting for information across disconnected tools",
		Category:    CategoryWastedSalary,
		Color:       "#24837B",
		Fields: []FieldDef{
			{Key: "annualSalary", Label: "Annual Salary", Help: "Average staff salary", Unit: UnitCurrency, Example: 65000},
			{Key: "hoursWasted", Label: "Hours Wasted per Week", Help: "Hours each user loses per week", Unit: UnitHours, Example: 3},
			{Key: "numberOfUsers", Label: "Number of Users", Help: "Staff who need donor data", Unit: UnitCount, Example: 25},
		},
	},
	{
		Section:     MissedUpgrades,
		Key:         "missed_upgrades",
		Name:        "Missed Upgrades",
		Description: "Donors who could have given more with timely outreach",
		Category:    CategoryOpportunityCost,
		Color:       "#DA702C",
		Fields: []FieldDef{
			{Key: "upgradableDonors", Label: "Upgradable Donors", Help: "Donors with upgrade capacity", Unit: UnitCount, Example: 200},
			{Key: "averageGiftSize", Label: "Average Gift Size", Help: "Typical upgrade amount", Unit: UnitCurrency, Example: 1000},
			{Key: "upgradePercentage", Label: "Upgrade Percentage", Help: "Share of donors who upgrade (0-100)", Unit: UnitPercent, Example: 20},
			{Key: "realizationRate", Label: "Realization Rate", Help: "Share of upgrades realized (0-100)", Unit: UnitPercent, Example: 50},
		},
	},
	{
		Section:     DonorLapse,
		Key:         "donor_lapse",
		Name:        "Donor Lapse",
		Description: "Major donors who lapse because nobody followed up",
		Category:    CategoryOpportunityCost,
		Color:       "#D0A215",
		Fields: []FieldDef{
			{Key: "lapsedDonors", Label: "Lapsed Donors", Help: "Donors lost per portfolio each year", Unit: UnitCount, Example: 15},
			{Key: "averageGift", Label: "Average Gift", Help: "Typical annual gift", Unit: UnitCurrency, Example: 10000},
			{Key: "numberOfPortfolios", Label: "Number of Portfolios", Help: "Portfolios managed", Unit: UnitCount, Example: 2},
		},
	},
}

// AllSections returns the sections in declaration order.
func AllSections() []Section {
	return []Section{AdminWaste, SiloedCollaboration, MissedUpgrades, DonorLapse}
}

// Valid reports whether s names one of the four sections.
func (s Section) Valid() bool {
	return s >= 0 && s < SectionCount
}

// Def returns the static definition of s. Invalid sections yield a zero SectionDef.
func (s Section) Def() SectionDef {
	if !s.Valid() {
		return SectionDef{Section: s}
	}
	return sectionDefs[s]
}

func (s Section) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return sectionDefs[s].Name
}

// Key returns the snake_case identifier used in config files.
func (s Section) Key() string {
	return s.Def().Key
}

// SectionByKey resolves a section from its key. Case, underscores and hyphens
// are ignored, so "admin_waste", "admin-waste" and "AdminWaste" all match.
func SectionByKey(key string) (Section, bool) {
	want := normalizeKey(key)
	for _, d := range sectionDefs {
		if normalizeKey(d.Key) == want {
			return d.Section, true
		}
	}
	return 0, false
}

// FieldIndex returns the position of the named field, or -1.
// Matching uses the same normalization as SectionByKey.
func (d SectionDef) FieldIndex(key string) int {
	want := normalizeKey(key)
	for i, f := range d.Fields {
		if normalizeKey(f.Key) == want {
			return i
		}
	}
	return -1
}

// SnakeCase converts a camelCase field key to snake_case ("numberOfMGOs" -> "number_of_mgos").
func SnakeCase(key string) string {
	return splitCamel(key, '_')
}

// KebabCase converts a camelCase or snake_case key to kebab-case.
func KebabCase(key string) string {
	return strings.ReplaceAll(splitCamel(key, '-'), "_", "-")
}

func splitCamel(key string, sep byte) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && key[i-1] >= 'a' && key[i-1] <= 'z' {
				b.WriteByte(sep)
			}
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "")
	return strings.ReplaceAll(key, "-", "")
}
