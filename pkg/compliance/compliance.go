// Package compliance models audit-framework definitions and loads them
// from YAML. A framework is an ordered list of requirements; each
// requirement names the automated checks able to satisfy it and the
// reporting attributes it is broken into. Requirement and attribute
// order in the file is the order reports are emitted in.
package compliance

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrFrameworkNotFound is returned when a framework file does not exist.
var ErrFrameworkNotFound = errors.New("framework file not found")

// ErrInvalidFramework is returned when a framework definition is malformed.
var ErrInvalidFramework = errors.New("invalid framework definition")

// Framework is the static definition of a named audit framework.
type Framework struct {
	Framework    string        `yaml:"framework"`
	Provider     string        `yaml:"provider"`
	Version      string        `yaml:"version,omitempty"`
	Description  string        `yaml:"description"`
	Requirements []Requirement `yaml:"requirements"`
}

// Requirement is one clause of a framework. An empty Checks list means
// the requirement can only be verified manually.
type Requirement struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Checks      []string    `yaml:"checks"`
	Attributes  []Attribute `yaml:"attributes"`
}

// Attribute is a sub-classification of a requirement used for
// reporting granularity.
type Attribute struct {
	Name             string `yaml:"name"`
	QuestionID       string `yaml:"question_id,omitempty"`
	PracticeID       string `yaml:"practice_id,omitempty"`
	Section          string `yaml:"section,omitempty"`
	SubSection       string `yaml:"sub_section,omitempty"`
	LevelOfRisk      string `yaml:"level_of_risk,omitempty"`
	AssessmentMethod string `yaml:"assessment_method,omitempty"`
	Description      string `yaml:"description,omitempty"`
	GuidanceURL      string `yaml:"guidance_url,omitempty"`
}

// IsManual reports whether no automated check can satisfy r.
func (r *Requirement) IsManual() bool {
	return len(r.Checks) == 0
}

// Load loads and parses a framework definition from the given path.
// Returns ErrFrameworkNotFound if the file doesn't exist.
// Returns ErrInvalidFramework if the file is malformed.
func Load(path string) (*Framework, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFrameworkNotFound, path)
		}
		return nil, fmt.Errorf("reading framework file: %w", err)
	}

	return Parse(data)
}

// Parse parses framework YAML data.
// Returns ErrInvalidFramework if the data is malformed.
func Parse(data []byte) (*Framework, error) {
	var fw Framework
	if err := yaml.Unmarshal(data, &fw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFramework, err)
	}

	if fw.Framework == "" {
		return nil, fmt.Errorf("%w: missing framework name", ErrInvalidFramework)
	}

	seen := make(map[string]bool, len(fw.Requirements))
	for i := range fw.Requirements {
		req := &fw.Requirements[i]
		if req.ID == "" {
			return nil, fmt.Errorf("%w: requirement %d has no id", ErrInvalidFramework, i)
		}
		if seen[req.ID] {
			return nil, fmt.Errorf("%w: duplicate requirement id %q", ErrInvalidFramework, req.ID)
		}
		seen[req.ID] = true
	}

	return &fw, nil
}
