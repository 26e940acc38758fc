package topic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadSpace reads a topic space from a YAML or TOML file, chosen by
// extension. Lists the file leaves out keep their built-in values.
func LoadSpace(path string) (*Space, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topic: read %s: %w", path, err)
	}
	return ParseSpace(data, filepath.Ext(path))
}

// ParseSpace decodes a topic space from data. ext selects the format:
// ".toml" for TOML, anything else is treated as YAML.
func ParseSpace(data []byte, ext string) (*Space, error) {
	var s Space
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, fmt.Errorf("topic: parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("topic: parse yaml: %w", err)
		}
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyDefaults fills any list the file did not set.
func (s *Space) applyDefaults() {
	d := DefaultSpace()
	fill := func(dst *[]string, def []string) {
		if *dst == nil {
			*dst = def
		}
	}
	fill(&s.Actions, d.Actions)
	fill(&s.Domains, d.Domains)
	fill(&s.Concepts, d.Concepts)
	fill(&s.Libraries, d.Libraries)
	fill(&s.Advanced, d.Advanced)
	fill(&s.Templates, d.Templates)
	fill(&s.Modules, d.Modules)
	fill(&s.ModuleTemplates, d.ModuleTemplates)
}
