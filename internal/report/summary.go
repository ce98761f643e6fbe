// Package report renders critique records as a LaTeX document and as
// styled terminal or JSON summaries.
package report

import (
	"fmt"

	"github.com/unbound-force/critex/internal/critique"
)

// Outcome counts pass/fail/removed verdicts for one critique category.
type Outcome struct {
	Pass    int `json:"pass"`
	Fail    int `json:"fail"`
	Removed int `json:"removed"`
}

// Total returns the number of records counted for the category.
func (o Outcome) Total() int {
	return o.Pass + o.Fail + o.Removed
}

// PassRate formats pass/(pass+fail+removed) as a percentage to one
// decimal place, or "N/A" when nothing was counted.
func (o Outcome) PassRate() string {
	total := o.Total()
	if total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(o.Pass)/float64(total)*100)
}

// Summary aggregates per-category outcomes across a set of records.
type Summary struct {
	SelfContainment  Outcome `json:"self_containment"`
	Difficulty       Outcome `json:"difficulty"`
	UsefulDerivation Outcome `json:"useful_derivation"`
	Refinement       Outcome `json:"refinement"`
}

// Summarize tallies critique outcomes across all records.
//
// Self-containment counts by flag alone; removal does not affect it.
// Difficulty and useful-derivation count a removed record under
// Removed regardless of its flag, otherwise by flag. Refinement is
// evaluated only for non-removed records and never uses Removed. A
// category missing from a record, or present but not an object, is
// not counted; an error-marked critique is still an object and tallies
// by its flag.
func Summarize(records []critique.Record) Summary {
	var s Summary

	for _, rec := range records {
		if res, ok := rec.Critiques[critique.SelfContainment]; ok && res != nil {
			if res.Flag(critique.SelfContainment) {
				s.SelfContainment.Pass++
			} else {
				s.SelfContainment.Fail++
			}
		}

		tallyRemovable(&s.Difficulty, rec, critique.Difficulty)
		tallyRemovable(&s.UsefulDerivation, rec, critique.UsefulDerivation)

		if !rec.Removed {
			if rec.RefinementSucceeded() {
				s.Refinement.Pass++
			} else {
				s.Refinement.Fail++
			}
		}
	}

	return s
}

// tallyRemovable counts a category where removal takes precedence
// over the verdict flag.
func tallyRemovable(o *Outcome, rec critique.Record, cat critique.Category) {
	res, ok := rec.Critiques[cat]
	if !ok || res == nil {
		return
	}
	switch {
	case rec.Removed:
		o.Removed++
	case res.Flag(cat):
		o.Pass++
	default:
		o.Fail++
	}
}

// Row is one render-ready line of the summary table.
type Row struct {
	Label    string
	Pass     int
	Fail     int
	Removed  int
	PassRate string
}

// Rows returns the summary as table rows in fixed category order.
func (s Summary) Rows() []Row {
	rows := make([]Row, 0, 4)
	for _, e := range []struct {
		label string
		o     Outcome
	}{
		{"Self Containment", s.SelfContainment},
		{"Difficulty", s.Difficulty},
		{"Useful Derivation", s.UsefulDerivation},
		{"Refinement Success", s.Refinement},
	} {
		rows = append(rows, Row{
			Label:    e.label,
			Pass:     e.o.Pass,
			Fail:     e.o.Fail,
			Removed:  e.o.Removed,
			PassRate: e.o.PassRate(),
		})
	}
	return rows
}
