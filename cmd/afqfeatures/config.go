// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fagan2888/afqinsight/table"
	"gopkg.in/yaml.v3"
)

// Config holds the pipeline settings a YAML file may provide.
// Command-line flags override file values.
type Config struct {
	Format        string `yaml:"format"`
	Extrapolate   bool   `yaml:"extrapolate"`
	AddBias       bool   `yaml:"add_bias"`
	TractSymmetry bool   `yaml:"tract_symmetry"`
}

// DefaultConfig reads long-form input, appends a bias column and
// expands tract symmetry.
func DefaultConfig() Config {
	return Config{
		Format:        table.Long.String(),
		AddBias:       true,
		TractSymmetry: true,
	}
}

// ReadConfig decodes YAML from r over DefaultConfig. Unknown keys are errors.
// An empty document yields the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := table.ParseFormat(c.Format); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return c, nil
}

// LoadConfig reads the YAML file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return ReadConfig(f)
}
