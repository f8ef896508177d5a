package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned when WriteConfig or WriteOverrideSeeds would
// overwrite a file without force.
var ErrConfigExists = errors.New("file already exists")

const configHeader = `# promptwing configuration
# Environment variables override these values, e.g. PROMPTWING_OUTPUT_LANGUAGE=en.
`

// MarshalConfig renders cfg as the YAML written to config files.
func MarshalConfig(cfg types.AppConfig) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig writes cfg to path, creating parent directories. An existing
// file is only replaced when force is set.
func WriteConfig(fs afero.Fs, path string, cfg types.AppConfig, force bool) error {
	if !force {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := MarshalConfig(cfg)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// WriteOverrideSeeds writes the guardrail, question and gate entries of o as
// guardrails.json, questions.json and gates.json under dir, and returns the
// paths written. Without force nothing is written when any override file
// (of any supported extension) already exists.
func WriteOverrideSeeds(fs afero.Fs, dir string, o *locale.Overrides, force bool) ([]string, error) {
	seeds := []struct {
		base string
		v    any
	}{
		{locale.GuardrailsFile, o.Guardrails},
		{locale.QuestionsFile, o.Questions},
		{locale.GatesFile, o.Gates},
	}

	if !force {
		for _, seed := range seeds {
			for _, ext := range []string{".json", ".yaml", ".yml"} {
				path := filepath.Join(dir, seed.base+ext)
				exists, err := afero.Exists(fs, path)
				if err != nil {
					return nil, fmt.Errorf("check %s: %w", path, err)
				}
				if exists {
					return nil, fmt.Errorf("%w: %s", ErrConfigExists, path)
				}
			}
		}
	}

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	paths := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(seed.v); err != nil {
			return nil, fmt.Errorf("encode %s: %w", seed.base, err)
		}
		path := filepath.Join(dir, seed.base+".json")
		if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
