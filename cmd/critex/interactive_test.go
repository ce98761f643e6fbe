package main

import (
	"strings"
	"testing"

	"github.com/unbound-force/critex/internal/critique"
)

// TestRenderSummaryContent_Empty verifies that an empty record set
// still renders a title and the summary table.
func TestRenderSummaryContent_Empty(t *testing.T) {
	output := renderSummaryContent(nil)

	if !strings.Contains(output, "0 record(s)") {
		t.Errorf("expected output to contain '0 record(s)', got:\n%s", output)
	}
	if !strings.Contains(output, "CATEGORY") {
		t.Errorf("expected summary table header, got:\n%s", output)
	}
}

func TestRenderSummaryContent_WithRecords(t *testing.T) {
	records := []critique.Record{
		{
			PaperID:      "p1",
			ProblemIndex: 4,
			Included:     true,
			Critiques: map[critique.Category]*critique.Result{
				critique.Difficulty: {NonTrivial: true},
			},
			Refined: &critique.Refined{Statement: "Q", Solution: "S"},
		},
		{
			PaperID:       "p2",
			ProblemIndex:  7,
			Included:      true,
			Removed:       true,
			RemovalReason: "duplicate",
		},
	}

	output := renderSummaryContent(records)

	if !strings.Contains(output, "2 record(s), 1 removed") {
		t.Errorf("expected record totals in title, got:\n%s", output)
	}
	if !strings.Contains(output, "Problem 1 (Paper: p1, Index: 4)") {
		t.Errorf("expected first record heading, got:\n%s", output)
	}
	if !strings.Contains(output, "Problem 2 (Paper: p2, Index: 7)") {
		t.Errorf("expected second record heading, got:\n%s", output)
	}
	if !strings.Contains(output, "REMOVED: duplicate") {
		t.Errorf("expected removal status line, got:\n%s", output)
	}
	if !strings.Contains(output, "difficulty") {
		t.Errorf("expected critique category row, got:\n%s", output)
	}
	if !strings.Contains(output, "No critiques recorded.") {
		t.Errorf("expected empty-critiques note for second record, got:\n%s", output)
	}
}

func TestRenderRecordStatus(t *testing.T) {
	tests := []struct {
		name string
		rec  critique.Record
		want string
	}{
		{
			"removed",
			critique.Record{Removed: true, RemovalReason: "dup"},
			"REMOVED: dup",
		},
		{
			"removed default reason",
			critique.Record{Removed: true},
			"REMOVED: Marked for removal",
		},
		{
			"excluded",
			critique.Record{Included: false},
			"EXCLUDED from dataset",
		},
		{
			"refined",
			critique.Record{Included: true, Refined: &critique.Refined{Statement: "Q"}},
			"Refined",
		},
		{
			"refinement failed",
			critique.Record{Included: true},
			"Refinement failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderRecordStatus(tt.rec)
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderRecordStatus = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

// TestRenderCritiqueTable_ErrorStatus verifies that a nil (unparsed)
// category result renders as an error row rather than panicking.
func TestRenderCritiqueTable_ErrorStatus(t *testing.T) {
	rec := critique.Record{
		Included: true,
		Critiques: map[critique.Category]*critique.Result{
			critique.Difficulty: nil,
		},
	}

	output := renderCritiqueTable(rec)

	if !strings.Contains(output, "error") {
		t.Errorf("expected error status row, got:\n%s", output)
	}
}
