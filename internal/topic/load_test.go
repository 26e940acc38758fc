package topic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const spaceYAML = `
actions: ["build"]
domains: ["games"]
concepts: ["closures"]
libraries: ["pygame"]
advanced: ["sprites"]
templates: ["{action} {domain} with {lib}"]
modules: []
`

const spaceTOML = `
actions = ["build", "ship"]
templates = ["{action} {domain}"]
modules = ["os"]
module_templates = ["about {module}"]
`

func TestParseSpace_YAML(t *testing.T) {
	s, err := ParseSpace([]byte(spaceYAML), ".yaml")
	if err != nil {
		t.Fatalf("ParseSpace: %v", err)
	}
	combo, modules := s.Size()
	if combo != 1 {
		t.Errorf("combo = %d, want 1", combo)
	}
	if modules != 0 {
		t.Errorf("modules = %d, want 0 (explicitly empty)", modules)
	}
	for _, idx := range []uint64{0, 1, 2, 99} {
		if got := s.Topic(idx); got != "build games with pygame" {
			t.Errorf("Topic(%d) = %q", idx, got)
		}
	}
}

func TestParseSpace_TOMLKeepsDefaults(t *testing.T) {
	s, err := ParseSpace([]byte(spaceTOML), ".toml")
	if err != nil {
		t.Fatalf("ParseSpace: %v", err)
	}
	if len(s.Domains) != len(defaultDomains) {
		t.Errorf("len(Domains) = %d, want default %d", len(s.Domains), len(defaultDomains))
	}
	if got := s.Topic(0); got != "build CLI tools" {
		t.Errorf("Topic(0) = %q, want %q", got, "build CLI tools")
	}
	if got := s.Topic(1); got != "about os" {
		t.Errorf("Topic(1) = %q, want %q", got, "about os")
	}
	if got := s.Topic(2); got != "ship CLI tools" {
		t.Errorf("Topic(2) = %q, want %q", got, "ship CLI tools")
	}
}

func TestParseSpace_InvalidYAML(t *testing.T) {
	_, err := ParseSpace([]byte("actions: [unclosed"), ".yml")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse yaml") {
		t.Errorf("error = %q", err)
	}
}

func TestParseSpace_EmptyComboListRejected(t *testing.T) {
	_, err := ParseSpace([]byte("actions: []\n"), ".yaml")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "actions") {
		t.Errorf("error = %q", err)
	}
}

func TestLoadSpace_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "space.yaml")
	if err := os.WriteFile(path, []byte(spaceYAML), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSpace(path)
	if err != nil {
		t.Fatalf("LoadSpace: %v", err)
	}
	if s.Topic(0) != "build games with pygame" {
		t.Errorf("Topic(0) = %q", s.Topic(0))
	}
}

func TestLoadSpace_Missing(t *testing.T) {
	_, err := LoadSpace(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
