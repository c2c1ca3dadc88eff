package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MegaBluejay/cpplabs/errors"
)

// Scenario describes the container walkthrough.
type Scenario struct {
	// Initial contents
	Initial []int `json:"initial" yaml:"initial"`

	// FrontInsert is inserted at the beginning in one call
	FrontInsert []int `json:"front_insert" yaml:"front_insert"`

	// PushBack values are appended one at a time
	PushBack []int `json:"push_back" yaml:"push_back"`

	// Find is searched for; the element after it is reported
	Find int `json:"find" yaml:"find"`

	// Search is looked up with a binary search
	Search int `json:"search" yaml:"search"`

	// SlotLimit caps the container's slots when positive
	SlotLimit int `json:"slot_limit,omitempty" yaml:"slot_limit,omitempty"`
}

// defaultScenario returns the built-in walkthrough.
func defaultScenario() *Scenario {
	return &Scenario{
		Initial:     []int{4, 6, 8, 8},
		FrontInsert: []int{2, 4},
		PushBack:    []int{10},
		Find:        6,
		Search:      6,
	}
}

// Validate checks the scenario for errors
func (s *Scenario) Validate() error {
	if len(s.Initial)+len(s.FrontInsert)+len(s.PushBack) == 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Scenario", "Validate", "scenario has no elements")
	}
	if s.SlotLimit < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Scenario", "Validate",
			fmt.Sprintf("slot_limit %d is negative", s.SlotLimit))
	}
	return nil
}

// loadScenario reads a scenario from path, choosing the decoder by extension.
// An empty path yields the built-in scenario.
func loadScenario(path string) (*Scenario, error) {
	if path == "" {
		return defaultScenario(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "Scenario", "load", "read file")
	}

	s := &Scenario{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	default:
		err = json.Unmarshal(data, s)
	}
	if err != nil {
		return nil, errors.WrapInvalid(err, "Scenario", "load", "decode "+filepath.Base(path))
	}

	return s, nil
}
