package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/unbound-force/critex/internal/critique"
)

func sampleRecords() []critique.Record {
	return []critique.Record{
		{
			PaperID:      "p1",
			ProblemIndex: 0,
			Included:     true,
			Critiques: map[critique.Category]*critique.Result{
				critique.SelfContainment: {SelfContained: true},
				critique.Difficulty:      {NonTrivial: true},
			},
			Refined: &critique.Refined{Statement: "Q", Solution: "$y=2$"},
		},
		{
			PaperID:       "p2",
			ProblemIndex:  1,
			Included:      true,
			Removed:       true,
			RemovalReason: "duplicate",
			Critiques: map[critique.Category]*critique.Result{
				critique.SelfContainment: {},
				critique.Difficulty:      {NonTrivial: true},
			},
		},
		{
			PaperID:      "p3",
			ProblemIndex: 2,
			Included:     false,
			Critiques: map[critique.Category]*critique.Result{
				critique.UsefulDerivation: {UsefulDerivation: false},
			},
		},
	}
}

func TestWriteText_HasTableAndTotals(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Critique Summary",
		"CATEGORY", "PASS", "FAIL", "REMOVED", "PASS RATE",
		"Self Containment",
		"Refinement Success",
		"Records:", "Removed:", "Excluded:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q, got:\n%s", want, out)
		}
	}
}

func TestWriteText_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.Contains(buf.String(), "N/A") {
		t.Error("empty summary should show N/A pass rates")
	}
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriteText_PropagatesWriteError(t *testing.T) {
	if err := WriteText(failingWriter{}, sampleRecords()); err == nil {
		t.Error("expected write error to propagate")
	}
}

func TestWriteJSON_ValidJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, buf.String())
	}
}

func TestWriteJSON_SummaryCounts(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	var report JSONReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}

	if report.Version == "" {
		t.Error("expected non-empty version")
	}
	if report.Records != 3 {
		t.Errorf("records = %d, want 3", report.Records)
	}
	if report.Summary.SelfContainment.Pass != 1 || report.Summary.SelfContainment.Fail != 1 {
		t.Errorf("self containment = %+v, want 1 pass / 1 fail",
			report.Summary.SelfContainment)
	}
	if report.Summary.Difficulty.Removed != 1 {
		t.Errorf("difficulty removed = %d, want 1", report.Summary.Difficulty.Removed)
	}
	// p1 succeeds, p3 fails (no refined problem); p2 is removed.
	if report.Summary.Refinement.Pass != 1 || report.Summary.Refinement.Fail != 1 {
		t.Errorf("refinement = %+v, want 1 pass / 1 fail", report.Summary.Refinement)
	}
}

func TestWriteJSON_ContainsAllFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	requiredFields := []string{
		`"version"`, `"records"`, `"summary"`,
		`"self_containment"`, `"difficulty"`, `"useful_derivation"`,
		`"refinement"`, `"pass"`, `"fail"`, `"removed"`,
	}
	for _, field := range requiredFields {
		if !strings.Contains(output, field) {
			t.Errorf("JSON output missing field %s", field)
		}
	}
}

// stripANSI removes ANSI escape sequences from text for width measurement.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func TestWriteText_FitsIn80Columns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	const maxWidth = 80
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		plain := stripANSI(line)
		if len(plain) > maxWidth {
			t.Errorf("line %d exceeds %d columns (%d): %q",
				i+1, maxWidth, len(plain), plain)
		}
	}
}
