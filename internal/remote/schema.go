package remote

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// batchSchemaDef is the JSON Schema a study-list payload must satisfy
// before it is decoded. The service is a separate deployment, so its
// payloads are validated like any other untrusted input.
var batchSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"getStudyList": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"vocabId":          map[string]any{"type": "integer"},
					"vocabStudyId":     map[string]any{"type": "integer"},
					"prompt":           map[string]any{"type": "string"},
					"firstLang":        map[string]any{"type": "string"},
					"pos":              map[string]any{"type": "string"},
					"infinitive":       map[string]any{"type": "string"},
					"hint":             map[string]any{"type": "string"},
					"userNotes":        map[string]any{"type": "string"},
					"numLearningWords": map[string]any{"type": "integer"},
				},
				"required": []any{"vocabId", "vocabStudyId", "prompt"},
			},
		},
	},
	"required": []any{"getStudyList"},
}

var (
	batchSchemaOnce sync.Once
	batchSchema     *jsonschema.Schema
	batchSchemaErr  error
)

// compiledBatchSchema compiles the batch schema once and caches it.
func compiledBatchSchema() (*jsonschema.Schema, error) {
	batchSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		defBytes, err := json.Marshal(batchSchemaDef)
		if err != nil {
			batchSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			batchSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://study-list.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			batchSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		batchSchema, batchSchemaErr = c.Compile(schemaURL)
	})
	return batchSchema, batchSchemaErr
}

// validateBatch checks raw against the batch schema. Violations come
// back as ErrMalformedResponse so the session surfaces them the same
// way as undecodable JSON.
func validateBatch(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrMalformedResponse{Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledBatchSchema()
	if err != nil {
		return &ErrMalformedResponse{Body: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrMalformedResponse{Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
