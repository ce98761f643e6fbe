// Package critique defines the critique record data model and the
// loader that resolves raw JSON entries into typed records with
// documented defaults.
package critique

import "encoding/json"

// Category identifies one critique dimension.
type Category string

// Known critique categories. Input objects under any other key are
// ignored.
const (
	SelfContainment  Category = "self_containment"
	Difficulty       Category = "difficulty"
	UsefulDerivation Category = "useful_derivation"
)

// Categories lists the known categories in render order.
var Categories = []Category{SelfContainment, Difficulty, UsefulDerivation}

// Problem is an original problem/solution pair. Both fields may
// contain raw LaTeX.
type Problem struct {
	Statement string `json:"problem_statement"`
	Solution  string `json:"final_solution"`
}

// StatementText returns the problem statement, or a placeholder when
// the field was absent or empty.
func (p Problem) StatementText() string {
	if p.Statement == "" {
		return "No problem statement"
	}
	return p.Statement
}

// SolutionText returns the final solution, or a placeholder when the
// field was absent or empty.
func (p Problem) SolutionText() string {
	if p.Solution == "" {
		return "No solution"
	}
	return p.Solution
}

// Issue is a single finding raised by a critique. Finding and
// suggestion text may embed LaTeX math and must pass through to the
// report unescaped.
type Issue struct {
	Finding    string `json:"finding"`
	Suggestion string `json:"suggestion"`
}

// Result is the outcome of one critique category. Only the flag
// matching the category is meaningful; the others stay false.
type Result struct {
	SelfContained    bool    `json:"is_self_contained"`
	NonTrivial       bool    `json:"is_non_trivial"`
	UsefulDerivation bool    `json:"is_useful_derivation"`
	Critique         string  `json:"critique"`
	Issues           []Issue `json:"issues"`

	// Error marks a critique the upstream pipeline failed to
	// produce. Its value is unused; presence alone matters.
	Error json.RawMessage `json:"error,omitempty"`
}

// HasError reports whether the critique carries an upstream error
// marker. Presence of the key counts, whatever its value.
func (r *Result) HasError() bool {
	return r != nil && len(r.Error) > 0
}

// Flag returns the verdict flag for the given category.
func (r *Result) Flag(cat Category) bool {
	if r == nil {
		return false
	}
	switch cat {
	case SelfContainment:
		return r.SelfContained
	case Difficulty:
		return r.NonTrivial
	case UsefulDerivation:
		return r.UsefulDerivation
	default:
		return false
	}
}

// IssueList returns the critique's issues; safe on a nil result.
func (r *Result) IssueList() []Issue {
	if r == nil {
		return nil
	}
	return r.Issues
}

// CritiqueText returns the free-text critique, or a placeholder when
// absent.
func (r *Result) CritiqueText() string {
	if r == nil || r.Critique == "" {
		return "No critique provided"
	}
	return r.Critique
}

// Refined is the reworked problem produced by the refinement pass.
// Depending on which refinement path produced the record, the
// statement arrives under problem_statement or question and the
// solution under final_solution or answer.
type Refined struct {
	Statement string `json:"problem_statement"`
	Question  string `json:"question"`
	Solution  string `json:"final_solution"`
	Answer    string `json:"answer"`

	// Error marks a failed refinement; presence alone matters.
	Error json.RawMessage `json:"error,omitempty"`
}

// HasError reports whether refinement failed upstream. Presence of
// the key counts, whatever its value.
func (r *Refined) HasError() bool {
	return r != nil && len(r.Error) > 0
}

// StatementText returns the refined problem statement, preferring
// problem_statement over question, with a placeholder fallback.
func (r *Refined) StatementText() string {
	for _, s := range []string{r.Statement, r.Question} {
		if s != "" {
			return s
		}
	}
	return "No refined problem statement"
}

// SolutionText returns the refined solution, preferring
// final_solution over answer, with a placeholder fallback.
func (r *Refined) SolutionText() string {
	for _, s := range []string{r.Solution, r.Answer} {
		if s != "" {
			return s
		}
	}
	return "No solution"
}

// Record is one fully resolved critique entry.
type Record struct {
	// PaperID identifies the source paper; "N/A" when absent.
	PaperID string `json:"paper_id"`

	// ProblemIndex is the problem's position within its paper.
	ProblemIndex int `json:"problem_index"`

	// Original is the problem/solution pair under critique.
	Original Problem `json:"original_problem"`

	// Critiques holds the per-category results. A key mapped to nil
	// marks a category that was present in the input but not a JSON
	// object; the renderer shows an error notice for it while the
	// tabulator skips it.
	Critiques map[Category]*Result `json:"critiques"`

	// Removed flags a record dropped from the dataset outright.
	Removed bool `json:"removed"`

	// RemovalReason explains a removal; may be empty.
	RemovalReason string `json:"removal_reason,omitempty"`

	// Included is false for records kept for audit but left out of
	// the refined output set. Defaults to true.
	Included bool `json:"included_in_dataset"`

	// Refined is nil when the refined_problem field was absent or
	// not an object.
	Refined *Refined `json:"refined_problem,omitempty"`
}

// RemovalReasonText returns the removal reason, or the default notice
// text when none was given.
func (r Record) RemovalReasonText() string {
	if r.RemovalReason == "" {
		return "Marked for removal"
	}
	return r.RemovalReason
}

// RefinementSucceeded reports whether a usable refined problem is
// attached: present, an object, and free of an error marker.
func (r Record) RefinementSucceeded() bool {
	return r.Refined != nil && !r.Refined.HasError()
}
