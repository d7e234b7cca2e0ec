package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "counter.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if sc.Component.Name != "Counter" {
		t.Errorf("component name = %q, want %q", sc.Component.Name, "Counter")
	}
	if sc.Component.Key != "main" {
		t.Errorf("component key = %q, want %q", sc.Component.Key, "main")
	}
	if sc.Component.Props["label"] != "clicks" {
		t.Errorf("starting props = %v, want label=clicks", sc.Component.Props)
	}
	if sc.Component.State["count"] != 0 {
		t.Errorf("starting state = %v, want count=0", sc.Component.State)
	}

	if len(sc.Steps) != 3 {
		t.Fatalf("loaded %d steps, want 3", len(sc.Steps))
	}
	if sc.Steps[0].Label != "increment" || sc.Steps[0].State["count"] != 1 {
		t.Errorf("step 0 = %+v, want increment with count=1", sc.Steps[0])
	}
	if sc.Steps[1].Props["label"] != "taps" {
		t.Errorf("step 1 = %+v, want relabel with label=taps", sc.Steps[1])
	}
	if sc.Steps[2].Props != nil || sc.Steps[2].State != nil {
		t.Errorf("step 2 = %+v, want no snapshot changes", sc.Steps[2])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "invalid.yaml")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoad_NoSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("component:\n  name: X\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a scenario without steps")
	}
}
