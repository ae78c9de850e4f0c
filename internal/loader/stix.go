package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"stixgraph/internal/domain"
)

var (
	errEmptyDocument = errors.New("empty document")
	errTrailingData  = errors.New("unexpected data after JSON value")
)

// BundleJSON is the envelope of a STIX bundle document
type BundleJSON struct {
	Type    string          `json:"type,omitempty"`
	ID      string          `json:"id,omitempty"`
	Objects []domain.Object `json:"objects"`
}

// LoadFile loads objects from a JSON array or bundle file
func LoadFile(path string) ([]domain.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseObjects(data)
}

// LoadDocument loads a directory store entry: a single object, an array, or a bundle
func LoadDocument(path string) ([]domain.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseDocument(data)
}

// Fetch downloads and parses objects from url. Any status outside 2xx is an error.
func Fetch(ctx context.Context, client *http.Client, url string) ([]domain.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return ParseObjects(data)
}

// ParseObjects parses a bare JSON array of objects or a bundle with an objects array
func ParseObjects(data []byte) ([]domain.Object, error) {
	return parse(data, false)
}

// ParseDocument is ParseObjects that also accepts a single STIX object
func ParseDocument(data []byte) ([]domain.Object, error) {
	return parse(data, true)
}

func parse(data []byte, allowSingle bool) ([]domain.Object, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errEmptyDocument
	}

	switch data[0] {
	case '[':
		var objects []domain.Object
		if err := decode(data, &objects); err != nil {
			return nil, fmt.Errorf("failed to parse object array: %w", err)
		}
		return checkObjects(objects)

	case '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}

		if _, ok := doc["objects"]; ok {
			var bundle BundleJSON
			if err := decode(data, &bundle); err != nil {
				return nil, fmt.Errorf("failed to parse bundle: %w", err)
			}
			return checkObjects(bundle.Objects)
		}

		if !allowSingle {
			return nil, errors.New("expected a JSON array or an object with an objects array")
		}

		var obj domain.Object
		if err := decode(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse object: %w", err)
		}
		return []domain.Object{obj}, nil
	}

	return nil, errors.New("expected a JSON array or object")
}

// decode unmarshals a single JSON value, keeping numbers as json.Number
func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

func checkObjects(objects []domain.Object) ([]domain.Object, error) {
	for i, obj := range objects {
		if obj == nil {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
	}
	if objects == nil {
		objects = make([]domain.Object, 0)
	}
	return objects, nil
}
