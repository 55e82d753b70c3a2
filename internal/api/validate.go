package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
)

const maxBodyBytes = 1 << 20

// SchemaError reports every violation of a request schema.
type SchemaError struct {
	Details []string
	Err     error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("request does not match schema: %s", strings.Join(e.Details, "; "))
}

func (e *SchemaError) Unwrap() error { return e.Err }

func answersProperty() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": questionnaire.Len(),
		"maxItems": questionnaire.Len(),
		"items": map[string]any{
			"type":    "integer",
			"minimum": questionnaire.MinAnswer,
			"maximum": questionnaire.MaxAnswer,
		},
	}
}

func scoreProperty() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

var scoreFields = []string{"totalScore", "inattentionScore", "hyperactivityScore", "impulsivityScore"}

// submissionDefinition describes POST /api/assessments and POST /api/score.
// Client scores are optional, but if one is sent all four must be.
func submissionDefinition() map[string]any {
	props := map[string]any{
		"answers":        answersProperty(),
		"elapsedSeconds": map[string]any{"type": "number", "minimum": 0},
	}
	dependent := map[string]any{}
	for _, f := range scoreFields {
		props[f] = scoreProperty()
		dependent[f] = scoreFields
	}
	return map[string]any{
		"$schema":           "https://json-schema.org/draft/2020-12/schema",
		"type":              "object",
		"required":          []string{"answers"},
		"properties":        props,
		"dependentRequired": dependent,
	}
}

// importDefinition describes POST /api/import, the body GET /api/export
// produces. Only the envelope is checked here; entries are decoded one by one
// so a bad entry is rejected on its own.
func importDefinition() map[string]any {
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"assessments"},
		"properties": map[string]any{
			"version":     map[string]any{"type": "string"},
			"assessments": map[string]any{"type": "array"},
		},
	}
}

var (
	submissionSchema = mustCompile("submission", submissionDefinition())
	importSchema     = mustCompile("import", importDefinition())
)

func mustCompile(name string, def map[string]any) *jsonschema.Schema {
	// The compiler wants plain JSON values, so round-trip the Go literal.
	raw, err := json.Marshal(def)
	if err != nil {
		panic(fmt.Sprintf("marshal schema %s: %v", name, err))
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse schema %s: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return compiled
}

// validateJSON checks raw against schema.
func validateJSON(schema *jsonschema.Schema, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return &SchemaError{Details: schemaDetails(err), Err: err}
	}
	return nil
}

func schemaDetails(err error) []string {
	var details []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		if line != "" {
			details = append(details, line)
		}
	}
	return details
}

// decodeJSON reads the body into v. Returns false after writing a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	raw, ok := readBody(w, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json", err.Error())
		return false
	}
	return true
}

// decodeAndValidate checks the body against schema before decoding it into v.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, v any) bool {
	raw, ok := readBody(w, r)
	if !ok {
		return false
	}
	if err := validateJSON(schema, raw); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			respondError(w, http.StatusBadRequest, "Invalid assessment data", schemaErr.Details...)
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid json", err.Error())
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json", err.Error())
		return false
	}
	return true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		respondError(w, http.StatusBadRequest, "failed to read body")
		return nil, false
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		respondError(w, http.StatusBadRequest, "invalid json", "empty body")
		return nil, false
	}
	return raw, true
}
