// Package fixture loads puzzle inputs and their expected answers from YAML,
// so simulations receive their input as data instead of baked-in constants.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoInput is returned when a fixture carries no input text.
	ErrNoInput = errors.New("fixture: input is empty")
	// ErrInvalidCase is returned for cases with a negative step count.
	ErrInvalidCase = errors.New("fixture: invalid case")
	// ErrCaseNotFound is returned by Case for an unknown case name.
	ErrCaseNotFound = errors.New("fixture: case not found")
)

// Fixture is one puzzle input with the answers expected from it.
type Fixture struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Cases []Case `yaml:"cases"`
}

// Case pairs a step (or press) count with the expected answer.
type Case struct {
	Name  string `yaml:"name"`
	Steps int    `yaml:"steps"`
	Want  int    `yaml:"want"`
}

// Load reads and validates the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a YAML fixture document.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that the fixture has input and well-formed cases.
func (f *Fixture) Validate() error {
	if f.Input == "" {
		return fmt.Errorf("%w: %q", ErrNoInput, f.Name)
	}
	for i, c := range f.Cases {
		if c.Steps < 0 {
			return fmt.Errorf("%w: case %d (%q) has steps %d", ErrInvalidCase, i, c.Name, c.Steps)
		}
	}
	return nil
}

// Case returns the case called name.
func (f *Fixture) Case(name string) (Case, error) {
	for _, c := range f.Cases {
		if c.Name == name {
			return c, nil
		}
	}
	return Case{}, fmt.Errorf("%w: %q in %q", ErrCaseNotFound, name, f.Name)
}
