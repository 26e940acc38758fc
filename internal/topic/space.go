// Package topic maps integer indices onto a large, implicit space of topic
// strings built from fixed word lists.
package topic

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed stdlib_modules.txt
var stdlibModulesText string

// Space is the configuration of the topic space. The combo sub-space is the
// mixed-radix product Actions × Domains × Concepts × Libraries × Advanced ×
// Templates. The module sub-space pairs every entry of Modules with every
// entry of ModuleTemplates.
type Space struct {
	Actions         []string `yaml:"actions" toml:"actions"`
	Domains         []string `yaml:"domains" toml:"domains"`
	Concepts        []string `yaml:"concepts" toml:"concepts"`
	Libraries       []string `yaml:"libraries" toml:"libraries"`
	Advanced        []string `yaml:"advanced" toml:"advanced"`
	Templates       []string `yaml:"templates" toml:"templates"`
	Modules         []string `yaml:"modules" toml:"modules"`
	ModuleTemplates []string `yaml:"module_templates" toml:"module_templates"`
}

// DefaultSpace returns the built-in topic space.
func DefaultSpace() *Space {
	return &Space{
		Actions:         clone(defaultActions),
		Domains:         clone(defaultDomains),
		Concepts:        clone(defaultConcepts),
		Libraries:       clone(defaultLibraries),
		Advanced:        clone(defaultAdvanced),
		Templates:       clone(defaultTemplates),
		Modules:         StdlibModules(),
		ModuleTemplates: clone(defaultModuleTemplates),
	}
}

// StdlibModules returns the sorted Python standard-library module names
// shipped with the binary.
func StdlibModules() []string {
	var mods []string
	for _, line := range strings.Split(stdlibModulesText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			mods = append(mods, line)
		}
	}
	sort.Strings(mods)
	return mods
}

// radices returns the combo-space radices in digit order.
func (s *Space) radices() []uint64 {
	return []uint64{
		uint64(len(s.Actions)),
		uint64(len(s.Domains)),
		uint64(len(s.Concepts)),
		uint64(len(s.Libraries)),
		uint64(len(s.Advanced)),
		uint64(len(s.Templates)),
	}
}

// Size returns the number of distinct positions in the combo sub-space and
// in the module sub-space.
func (s *Space) Size() (combo, modules uint64) {
	combo = 1
	for _, r := range s.radices() {
		combo *= r
	}
	return combo, uint64(len(s.Modules)) * uint64(len(s.ModuleTemplates))
}

// Validate reports an error when the combo sub-space is empty. An empty
// module sub-space is allowed; every index then resolves combinatorially.
func (s *Space) Validate() error {
	names := []string{"actions", "domains", "concepts", "libraries", "advanced", "templates"}
	var empty []string
	for i, r := range s.radices() {
		if r == 0 {
			empty = append(empty, names[i])
		}
	}
	if len(empty) > 0 {
		return fmt.Errorf("topic: empty word lists: %s", strings.Join(empty, ", "))
	}
	return nil
}

// Topic maps idx to its topic string. Odd indices draw from the module
// sub-space when it is non-empty; everything else is decoded as a mixed-radix
// number over the combo lists. Both sub-spaces wrap around.
func (s *Space) Topic(idx uint64) string {
	combo, modules := s.Size()

	if idx%2 == 1 && modules > 0 {
		sidx := (idx / 2) % modules
		n := uint64(len(s.Modules))
		module := s.Modules[sidx%n]
		tmpl := s.ModuleTemplates[(sidx/n)%uint64(len(s.ModuleTemplates))]
		return strings.NewReplacer("{module}", module).Replace(tmpl)
	}

	if combo == 0 {
		return ""
	}

	cidx := idx % combo
	if modules > 0 {
		cidx = (idx / 2) % combo
	}

	digits := make([]uint64, 0, 6)
	for _, r := range s.radices() {
		digits = append(digits, cidx%r)
		cidx /= r
	}

	r := strings.NewReplacer(
		"{action}", s.Actions[digits[0]],
		"{domain}", s.Domains[digits[1]],
		"{concept}", s.Concepts[digits[2]],
		"{lib}", s.Libraries[digits[3]],
		"{adv}", s.Advanced[digits[4]],
	)
	return r.Replace(s.Templates[digits[5]])
}

// IsModuleTopic reports whether idx resolves through the module sub-space.
func (s *Space) IsModuleTopic(idx uint64) bool {
	_, modules := s.Size()
	return idx%2 == 1 && modules > 0
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
