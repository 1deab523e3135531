package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// parseYAMLConfig is an ff.ConfigFileParser for flat YAML files such as
//
//	color: never
//	comma: true
func parseYAMLConfig(r io.Reader, set func(name, value string) error) error {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}

	for name, value := range m {
		switch value.(type) {
		case map[string]any, []any:
			return fmt.Errorf("parse config: %s: nested values are not supported", name)
		}

		if err := set(name, fmt.Sprint(value)); err != nil {
			return fmt.Errorf("parse config: %s: %w", name, err)
		}
	}

	return nil
}
