package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/critex/internal/critique"
)

// reportVersion is the JSON summary schema version (semver).
const reportVersion = "0.1.0"

// JSONReport is the top-level JSON summary structure.
type JSONReport struct {
	Version string  `json:"version"`
	Records int     `json:"records"`
	Summary Summary `json:"summary"`
}

// WriteJSON writes the critique summary as formatted JSON.
func WriteJSON(w io.Writer, records []critique.Record) error {
	report := JSONReport{
		Version: reportVersion,
		Records: len(records),
		Summary: Summarize(records),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
