package placeholder

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a flat YAML mapping of key to string value and returns
// a snapshot resolver of text replacements:
//
//	greeting: "Hello"
//	farewell: "Good bye"
//
// Nested values are rejected. An empty document yields the empty resolver.
func LoadCatalog(r io.Reader) (Resolver, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("unable to decode placeholder catalog: %w", err)
	}
	if len(raw) == 0 {
		return Empty(), nil
	}

	entries := make(map[string]Replacement, len(raw))
	for key, value := range raw {
		entries[key] = TextReplacement(value)
	}
	return Map(entries), nil
}
