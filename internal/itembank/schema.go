package itembank

// bankSchemaDef is the JSON schema for an item bank file. It gates the
// file's overall shape; per-record semantic checks (subject match, variant
// fields, answer membership) happen in ValidItem so that a single bad
// record is dropped instead of failing the whole file.
var bankSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subject": map[string]any{
			"type": "string",
			"enum": []any{"math", "reading", "science", "social-studies"},
		},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string"},
					"subject": map[string]any{"type": "string"},
					"skill":   map[string]any{"type": "string"},
					"difficulty": map[string]any{
						"type": "number",
					},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"mcq", "count", "phoneme", "map"},
					},
					"prompt": map[string]any{"type": "string"},
					"choices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer": map[string]any{"type": "string"},
				},
				"required": []any{"id", "subject", "skill", "difficulty", "type", "prompt", "answer"},
			},
		},
	},
	"required":             []any{"subject", "items"},
	"additionalProperties": false,
}
