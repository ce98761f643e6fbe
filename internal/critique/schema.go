package critique

// Schema is the JSON Schema (Draft 2020-12) for the critiques input
// document. Validation against it is advisory; see ValidateSchema.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/critex/critiques.schema.json",
  "title": "Problem Critiques",
  "description": "Input schema for critex export",
  "type": "array",
  "items": { "$ref": "#/$defs/Record" },
  "$defs": {
    "Record": {
      "type": "object",
      "required": ["paper_id", "problem_index", "original_problem"],
      "properties": {
        "paper_id": {
          "type": "string",
          "description": "Source paper identifier"
        },
        "problem_index": {
          "type": "integer",
          "description": "Problem position within the paper"
        },
        "original_problem": { "$ref": "#/$defs/Problem" },
        "critiques": {
          "type": "object",
          "properties": {
            "self_containment": { "$ref": "#/$defs/Result" },
            "difficulty": { "$ref": "#/$defs/Result" },
            "useful_derivation": { "$ref": "#/$defs/Result" }
          }
        },
        "removed": {
          "type": "boolean",
          "description": "Record dropped from the dataset (default false)"
        },
        "removal_reason": {
          "type": "string",
          "description": "Why the record was removed"
        },
        "included_in_dataset": {
          "type": "boolean",
          "description": "Record part of the refined output set (default true)"
        },
        "refined_problem": { "$ref": "#/$defs/Refined" }
      }
    },
    "Problem": {
      "type": "object",
      "properties": {
        "problem_statement": { "type": "string" },
        "final_solution": { "type": "string" }
      }
    },
    "Result": {
      "type": "object",
      "properties": {
        "is_self_contained": { "type": "boolean" },
        "is_non_trivial": { "type": "boolean" },
        "is_useful_derivation": { "type": "boolean" },
        "critique": { "type": "string" },
        "issues": {
          "type": "array",
          "items": { "$ref": "#/$defs/Issue" }
        },
        "error": {
          "description": "Upstream critique failure marker"
        }
      }
    },
    "Issue": {
      "type": "object",
      "properties": {
        "finding": { "type": "string" },
        "suggestion": { "type": "string" }
      }
    },
    "Refined": {
      "type": "object",
      "properties": {
        "problem_statement": { "type": "string" },
        "question": { "type": "string" },
        "final_solution": { "type": "string" },
        "answer": { "type": "string" },
        "error": {
          "description": "Refinement failure marker"
        }
      }
    }
  }
}`
