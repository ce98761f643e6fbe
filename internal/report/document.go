package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/unbound-force/critex/internal/critique"
	"github.com/unbound-force/critex/internal/tex"
)

// documentHeader is the fixed LaTeX preamble. The pass/fail colors it
// defines are referenced by every status notice in the body.
const documentHeader = `
\documentclass[10pt]{article}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
\usepackage{amssymb}
\usepackage{geometry}
\usepackage{xcolor}
\usepackage{longtable}
\usepackage{array}
\usepackage{lmodern}

\geometry{a4paper, margin=1in}

\definecolor{pass}{HTML}{28a745}
\definecolor{fail}{HTML}{DC3545}

\title{Problem Refinement Critiques Report}
\author{Generated by critex}
\date{\today}

\begin{document}
\maketitle
`

const documentFooter = `
\end{document}
`

// statusLabels maps each category to its affirmative/negative status
// text pair.
var statusLabels = map[critique.Category][2]string{
	critique.SelfContainment:  {"Self-contained", "Not self-contained"},
	critique.Difficulty:       {"Non-trivial", "Trivial"},
	critique.UsefulDerivation: {"Useful", "Useless"},
}

// sectionTitles maps each category to its paragraph heading.
var sectionTitles = map[critique.Category]string{
	critique.SelfContainment:  "Self-Containment Critique:",
	critique.Difficulty:       "Difficulty Critique:",
	critique.UsefulDerivation: "Useful Derivation Critique:",
}

// WriteDocument renders the full LaTeX report: fixed preamble, the
// summary statistics table, one subsection per record in input order,
// and the fixed footer. Rendering never fails; only the final write
// can return an error.
func WriteDocument(w io.Writer, records []critique.Record) error {
	var b strings.Builder

	b.WriteString(documentHeader)
	writeSummaryTable(&b, Summarize(records))
	writeRecords(&b, records)
	b.WriteString(documentFooter)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummaryTable(b *strings.Builder, s Summary) {
	b.WriteString(`
\section*{Summary Statistics}
\begin{center}
\begin{longtable}{|l|c|c|c|c|}
\hline
\textbf{Critique Type} & \textbf{Pass} & \textbf{Fail} & \textbf{Removed} & \textbf{Pass Rate} \\
\hline
\endfirsthead
\hline
\endfoot
`)

	for _, row := range s.Rows() {
		fmt.Fprintf(b, "%s & %d & %d & %d & %s \\\\\n",
			tex.Escape(row.Label), row.Pass, row.Fail, row.Removed,
			tex.Escape(row.PassRate))
	}

	b.WriteString(`\hline
\end{longtable}
\end{center}
`)
}

func writeRecords(b *strings.Builder, records []critique.Record) {
	b.WriteString("\\section*{Problem Details}\n\n")

	for i, rec := range records {
		writeRecord(b, i+1, rec)
	}
}

// writeRecord emits one record's subsection: original problem and
// solution, per-category critiques, and the outcome chosen by the
// removed > excluded > refined precedence.
func writeRecord(b *strings.Builder, position int, rec critique.Record) {
	fmt.Fprintf(b, "\\subsection*{Problem %d (Paper: %s, Index: %d)}\n\n",
		position, tex.Escape(rec.PaperID), rec.ProblemIndex)

	// Statement and solution are raw LaTeX; only the solution is
	// normalized into a display-math block.
	b.WriteString("\\subsubsection*{Original Problem Statement}\n")
	fmt.Fprintf(b, "%s\n\n", rec.Original.StatementText())

	b.WriteString("\\subsubsection*{Original Solution}\n")
	solution := tex.RepairBoxedBraces(rec.Original.SolutionText())
	fmt.Fprintf(b, "%s\n\n", tex.DisplayMath(solution))

	b.WriteString("\\subsubsection*{Critiques}\n")
	for _, cat := range critique.Categories {
		res, ok := rec.Critiques[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "\\paragraph*{%s}\n", sectionTitles[cat])
		writeCritique(b, cat, res)
		b.WriteString("\n")
	}

	switch {
	case rec.Removed:
		b.WriteString("\\subsubsection*{Problem Status}\n")
		fmt.Fprintf(b, "\\textcolor{fail}{\\textbf{REMOVED: %s}}\n\n",
			tex.Escape(rec.RemovalReasonText()))
	case !rec.Included:
		b.WriteString("\\subsubsection*{Problem Status}\n")
		b.WriteString("\\textcolor{fail}{\\textbf{EXCLUDED: Trivial problem - refinement failed}}\n\n")
	default:
		writeRefined(b, rec.Refined)
	}

	b.WriteString("\\newpage\n")
}

// writeCritique emits one category's status label, critique text, and
// issue list. Critique and issue text may contain LaTeX math and is
// passed through unescaped.
func writeCritique(b *strings.Builder, cat critique.Category, res *critique.Result) {
	if res == nil || res.HasError() {
		b.WriteString("\\textcolor{fail}{\\textbf{Error parsing critique}}\n\n")
		return
	}

	labels := statusLabels[cat]
	color, status := "pass", labels[0]
	if !res.Flag(cat) {
		color, status = "fail", labels[1]
	}
	fmt.Fprintf(b, "\\textcolor{%s}{\\textbf{Status: %s}}\n\n", color, status)

	fmt.Fprintf(b, "%s\n\n", res.CritiqueText())

	if len(res.Issues) == 0 {
		return
	}
	b.WriteString("\\textbf{Issues found:}\n")
	b.WriteString("\\begin{itemize}\n")
	for _, issue := range res.Issues {
		fmt.Fprintf(b, "\\item \\textbf{Finding:} %s\\\\\n", issue.Finding)
		fmt.Fprintf(b, "\\textbf{Suggestion:} %s\n", issue.Suggestion)
	}
	b.WriteString("\\end{itemize}\n")
}

func writeRefined(b *strings.Builder, refined *critique.Refined) {
	b.WriteString("\\subsubsection*{Refined Problem}\n")

	if refined == nil || refined.HasError() {
		b.WriteString("\\textcolor{fail}{\\textbf{Error refining problem}}\n\n")
		return
	}

	b.WriteString("\\paragraph*{Refined Problem Statement:}\n")
	fmt.Fprintf(b, "%s\n\n", refined.StatementText())

	b.WriteString("\\paragraph*{Refined Solution:}\n")
	solution := tex.RepairBoxedBraces(refined.SolutionText())
	fmt.Fprintf(b, "%s\n\n", tex.DisplayMath(solution))
}
