package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeToml(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "keel.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write keel.toml: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeToml(t, t.TempDir(), `
[check]
jobs = 4
max_diagnostics = 25

[output]
color = "off"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Check.Jobs != 4 || cfg.Check.MaxDiagnostics != 25 {
		t.Errorf("check section = %+v", cfg.Check)
	}
	if cfg.Output.Color != "off" {
		t.Errorf("color = %q", cfg.Output.Color)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeToml(t, t.TempDir(), `
[check]
jobs = 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Check.MaxDiagnostics != want.Check.MaxDiagnostics {
		t.Errorf("max_diagnostics = %d, want default %d",
			cfg.Check.MaxDiagnostics, want.Check.MaxDiagnostics)
	}
	if cfg.Output.Color != want.Output.Color {
		t.Errorf("color = %q, want default %q", cfg.Output.Color, want.Output.Color)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		"[check]\njobs = -1\n",
		"[check]\nmax_diagnostics = 0\n",
		"[output]\ncolor = \"sometimes\"\n",
		"not toml at all [",
	}
	for _, body := range cases {
		path := writeToml(t, t.TempDir(), body)
		if _, err := Load(path); err == nil {
			t.Errorf("Load accepted %q", body)
		}
	}
}

func TestFindKeelTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	writeToml(t, root, "[check]\njobs = 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindKeelToml(nested)
	if err != nil || !ok {
		t.Fatalf("FindKeelToml: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file under %q", path, root)
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}
