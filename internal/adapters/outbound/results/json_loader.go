package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/perfgate/perfgate/internal/domain"
)

// JSONLoader implements domain.ResultsLoader for k6-style summary JSON.
type JSONLoader struct{}

// New creates a JSONLoader.
func New() *JSONLoader { return &JSONLoader{} }

// Load reads and parses the results document at path.
func (l *JSONLoader) Load(path string) (*domain.ResultsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &domain.FormatError{Path: path, Err: err}
	}
	return doc, nil
}

// Parse decodes a results document. A missing "metrics" key yields an
// empty mapping; unrecognized metrics and non-numeric extra fields are
// dropped.
func Parse(data []byte) (*domain.ResultsDocument, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, describe(err)
	}
	if top == nil {
		return nil, fmt.Errorf("top level must be a JSON object, got null")
	}

	doc := &domain.ResultsDocument{
		Metrics:   map[string]domain.MetricRecord{},
		Populated: map[string]bool{},
	}

	raw, ok := top["metrics"]
	if !ok {
		return doc, nil
	}

	var metrics map[string]json.RawMessage
	if err := json.Unmarshal(raw, &metrics); err != nil || isNull(raw) {
		return nil, fmt.Errorf("metrics must be a JSON object")
	}

	for name, rawRecord := range metrics {
		fields, recognized := domain.RecognizedFields[name]
		if !recognized {
			continue
		}

		record, keys, err := parseRecord(rawRecord, fields)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", name, err)
		}
		doc.Metrics[name] = record
		if keys > 0 {
			doc.Populated[name] = true
		}
	}

	return doc, nil
}

// parseRecord returns the numeric fields of a record and the number of
// keys in the source record.
func parseRecord(raw json.RawMessage, required []string) (domain.MetricRecord, int, error) {
	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil || isNull(raw) {
		return nil, 0, fmt.Errorf("must be a JSON object")
	}

	record := make(domain.MetricRecord, len(values))
	for key, v := range values {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil || isNull(v) {
			if isRequired(required, key) {
				return nil, 0, fmt.Errorf("field %q must be a number", key)
			}
			continue
		}
		record[key] = f
	}
	return record, len(values), nil
}

func isRequired(fields []string, key string) bool {
	for _, f := range fields {
		if f == key {
			return true
		}
	}
	return false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// describe turns decoder errors into a short message without Go type names.
func describe(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("top level must be a JSON object, got %s", typeErr.Value)
	}
	return fmt.Errorf("invalid JSON: %w", err)
}
