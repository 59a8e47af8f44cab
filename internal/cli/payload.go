package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// readPayload reads a request document from path, or from in when path is
// empty or "-".
func readPayload(in io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return data, nil
}

// decodePayload fills req from a JSON or YAML document. Members the request
// type does not declare are rejected.
func decodePayload(data []byte, req any) error {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	if generic == nil {
		return nil
	}

	jsonData, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert payload: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
