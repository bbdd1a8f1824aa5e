// Package report renders a calculation as JSON, YAML, or Markdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/model"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Formats lists the names accepted by Write.
var Formats = []string{"text", "json", "yaml", "markdown"}

// Document is the serializable form of one calculation.
type Document struct {
	FormulaSet              string                `json:"formula_set" yaml:"formula_set"`
	Currency                string                `json:"currency" yaml:"currency"`
	Sections                []SectionReport       `json:"sections" yaml:"sections"`
	TotalImpact             int64                 `json:"total_impact" yaml:"total_impact"`
	TotalDisplay            string                `json:"total_display" yaml:"total_display"`
	WastedAnnualSalarySpend int64                 `json:"wasted_annual_salary_spend" yaml:"wasted_annual_salary_spend"`
	OpportunityCost         int64                 `json:"opportunity_cost" yaml:"opportunity_cost"`
	Categories              []CategoryReport      `json:"categories" yaml:"categories"`
	ChartData               []model.ChartEntry    `json:"chart_data" yaml:"chart_data"`
}

// CategoryReport is one category subtotal.
type CategoryReport struct {
	Name    string  `json:"name" yaml:"name"`
	Value   int64   `json:"value" yaml:"value"`
	Display string  `json:"value_display" yaml:"value_display"`
	Share   float64 `json:"share" yaml:"share"`
}

// SectionReport is one section's inputs and impact.
type SectionReport struct {
	Key      string           `json:"key" yaml:"key"`
	Name     string           `json:"name" yaml:"name"`
	Category string           `json:"category" yaml:"category"`
	Inputs   map[string]int64 `json:"inputs" yaml:"inputs"`
	Impact   int64            `json:"impact" yaml:"impact"`
	Display  string           `json:"impact_display" yaml:"impact_display"`
	Share    float64          `json:"share" yaml:"share"`
}

// Build assembles a Document from the state that was calculated and its result.
func Build(cs model.CalculatorState, r calc.Result, cf *cli.CurrencyFormatter) Document {
	doc := Document{
		FormulaSet:              r.FormulaSet,
		Currency:                cf.Code(),
		TotalImpact:             r.TotalImpact,
		TotalDisplay:            cf.Format(r.TotalImpact),
		WastedAnnualSalarySpend: r.WastedAnnualSalarySpend,
		OpportunityCost:         r.OpportunityCost,
		ChartData:               r.ChartData,
	}
	for _, c := range r.Categories {
		doc.Categories = append(doc.Categories, CategoryReport{
			Name:    c.Name,
			Value:   c.Value,
			Display: cf.Format(c.Value),
			Share:   calc.Share(c.Value, r.TotalImpact),
		})
	}
	for _, s := range model.AllSections() {
		def := s.Def()
		inputs := make(map[string]int64, len(def.Fields))
		for i, f := range def.Fields {
			if n, ok := cs.Sections[s].Fields[i].Get(); ok {
				inputs[model.SnakeCase(f.Key)] = n
			}
		}
		v := r.Impacts.Of(s)
		doc.Sections = append(doc.Sections, SectionReport{
			Key:      def.Key,
			Name:     def.Name,
			Category: def.Category.String(),
			Inputs:   inputs,
			Impact:   v,
			Display:  cf.Format(v),
			Share:    calc.Share(v, r.TotalImpact),
		})
	}
	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteMarkdown writes doc as a Markdown summary.
func WriteMarkdown(w io.Writer, doc Document) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# ROI estimate\n\n")
	fmt.Fprintf(&b, "- Formula set: %s\n", doc.FormulaSet)
	fmt.Fprintf(&b, "- Currency: %s\n", doc.Currency)
	fmt.Fprintf(&b, "- Estimated annual impact: **%s**\n\n", doc.TotalDisplay)

	fmt.Fprintf(&b, "| Section | Category | Impact | Share |\n")
	fmt.Fprintf(&b, "| --- | --- | ---: | ---: |\n")
	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.Name, s.Category, s.Display, cli.FormatPercent(s.Share))
	}

	fmt.Fprintf(&b, "\n## Categories\n\n")
	for _, c := range doc.Categories {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", c.Name, c.Display, cli.FormatPercent(c.Share))
	}

	fmt.Fprintf(&b, "\n## Inputs\n")
	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "\n### %s\n", s.Name)
		sec, _ := model.SectionByKey(s.Key)
		for _, f := range sec.Def().Fields {
			key := model.SnakeCase(f.Key)
			if v, ok := s.Inputs[key]; ok {
				fmt.Fprintf(&b, "- %s: %d\n", f.Label, v)
			} else {
				fmt.Fprintf(&b, "- %s: (unset)\n", f.Label)
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// Write renders doc in the named format. "text" uses the terminal table
// renderer at the given width.
func Write(w io.Writer, format string, doc Document, r calc.Result, cf *cli.CurrencyFormatter, width int) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := io.WriteString(w, cli.RenderResult(r, cf, width))
		return err
	case "json":
		return WriteJSON(w, doc)
	case "yaml", "yml":
		return WriteYAML(w, doc)
	case "markdown", "md":
		return WriteMarkdown(w, doc)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
