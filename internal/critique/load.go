package critique

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// rawRecord is the wire shape of one critique entry. Fields that need
// presence checks or tolerant decoding stay raw here and are resolved
// in resolve.
type rawRecord struct {
	PaperID       string                     `json:"paper_id"`
	ProblemIndex  int                        `json:"problem_index"`
	Original      Problem                    `json:"original_problem"`
	Critiques     map[string]json.RawMessage `json:"critiques"`
	Removed       bool                       `json:"removed"`
	RemovalReason string                     `json:"removal_reason"`
	Included      *bool                      `json:"included_in_dataset"`
	Refined       json.RawMessage            `json:"refined_problem"`
}

// LoadFile reads a critiques JSON file and parses it into records.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading critiques file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a critiques document. The top level must be a JSON
// array; that is the only shape error Parse reports. Within each
// entry, missing or mistyped fields degrade to their documented
// defaults so a partially malformed record still renders.
func Parse(data []byte) ([]Record, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing critiques JSON: %w", err)
	}

	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, resolve(raw))
	}
	return records, nil
}

// resolve turns one raw entry into a Record, applying all defaults
// once at load time.
func resolve(raw json.RawMessage) Record {
	var rr rawRecord
	// Mistyped fields keep their zero values; the rest of the entry
	// still decodes.
	_ = json.Unmarshal(raw, &rr)

	rec := Record{
		PaperID:       rr.PaperID,
		ProblemIndex:  rr.ProblemIndex,
		Original:      rr.Original,
		Removed:       rr.Removed,
		RemovalReason: rr.RemovalReason,
		Included:      rr.Included == nil || *rr.Included,
	}
	if rec.PaperID == "" {
		rec.PaperID = "N/A"
	}

	if len(rr.Critiques) > 0 {
		rec.Critiques = make(map[Category]*Result, len(Categories))
		for _, cat := range Categories {
			cv, ok := rr.Critiques[string(cat)]
			if !ok {
				continue
			}
			rec.Critiques[cat] = decodeResult(cv)
		}
	}

	if isObject(rr.Refined) {
		var ref Refined
		// Mistyped fields inside the object keep their zero values.
		_ = json.Unmarshal(rr.Refined, &ref)
		rec.Refined = &ref
	}

	return rec
}

// decodeResult parses one category value. Anything that is not a JSON
// object resolves to nil, which the renderer reports as a parse
// error. Within an object, mistyped fields degrade to their defaults
// like every other field in the entry.
func decodeResult(raw json.RawMessage) *Result {
	if !isObject(raw) {
		return nil
	}
	var res Result
	_ = json.Unmarshal(raw, &res)
	return &res
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// ValidateSchema checks a raw critiques document against the embedded
// input schema. The result is advisory: callers log a mismatch and
// keep going, since rendering degrades field by field rather than
// failing whole records.
func ValidateSchema(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		return fmt.Errorf("parsing embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("critiques.schema.json", doc); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("critiques.schema.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing critiques JSON: %w", err)
	}
	return compiled.Validate(inst)
}
