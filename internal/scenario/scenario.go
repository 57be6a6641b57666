// Package scenario loads declarative scripts of array operations and runs them.
package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown scenario format")
	ErrUnknownOp     = errors.New("unknown operation")
	ErrValidation    = errors.New("validation error")
)

const (
	OpPush   = "push"
	OpShift  = "shift"
	OpSlice  = "slice"
	OpGet    = "get"
	OpTake   = "take"
	OpCount  = "count"
	OpMember = "member"
	OpZip    = "zip"
	OpReset  = "reset"
)

// Step is one operation. Which fields are read depends on Op.
type Step struct {
	Op     string   `toml:"op" yaml:"op"`
	Value  string   `toml:"value,omitempty" yaml:"value,omitempty"`
	Values []string `toml:"values,omitempty" yaml:"values,omitempty"`
	Offset int      `toml:"offset,omitempty" yaml:"offset,omitempty"`
	Length int      `toml:"length,omitempty" yaml:"length,omitempty"`
	Index  int      `toml:"index,omitempty" yaml:"index,omitempty"`
	Count  int      `toml:"count,omitempty" yaml:"count,omitempty"`
}

type Scenario struct {
	Name     string   `toml:"name" yaml:"name"`
	Capacity int      `toml:"capacity,omitempty" yaml:"capacity,omitempty"`
	Initial  []string `toml:"initial,omitempty" yaml:"initial,omitempty"`
	Steps    []Step   `toml:"steps" yaml:"steps"`
}

// Validate checks the scenario before anything is run.
func (s Scenario) Validate() error {
	if s.Capacity < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", ErrValidation)
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpPush:
			if step.Value == "" && len(step.Values) == 0 {
				return fmt.Errorf("%w: step %d: push needs value or values", ErrValidation, i)
			}
		case OpGet:
			if step.Index < 0 {
				return fmt.Errorf("%w: step %d: negative index", ErrValidation, i)
			}
		case OpShift, OpSlice, OpTake, OpCount, OpMember, OpZip, OpReset:
		default:
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, step.Op)
		}
	}
	return nil
}

// DetectFormat maps a file extension onto "toml" or "yaml".
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format string) (Scenario, error) {
	var s Scenario
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("toml unmarshal: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return s, nil
}

// Load reads, decodes and validates the scenario at path. An empty format
// is detected from the file extension.
func Load(fs afero.Fs, path string, format string) (Scenario, error) {
	if format == "" {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return Scenario{}, err
		}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read %s: %w", path, err)
	}

	s, err := Decode(data, format)
	if err != nil {
		return Scenario{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}
