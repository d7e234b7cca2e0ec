// Package scenario loads re-render scenarios from YAML files.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a component and a sequence of proposed snapshot
// transitions to replay through the predicate.
type Scenario struct {
	Component ComponentSpec `yaml:"component"`
	Steps     []Step        `yaml:"steps"`
}

// ComponentSpec is the component's identity and starting snapshot.
type ComponentSpec struct {
	Name  string         `yaml:"name,omitempty"`
	Key   string         `yaml:"key,omitempty"`
	Props map[string]any `yaml:"props,omitempty"`
	State map[string]any `yaml:"state,omitempty"`
}

// Step is one proposed transition. An absent props or state mapping means the
// snapshot on that axis is unchanged: the replay passes the same instance to
// the predicate.
type Step struct {
	Label string         `yaml:"label,omitempty"`
	Props map[string]any `yaml:"props,omitempty"`
	State map[string]any `yaml:"state,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &sc, nil
}
