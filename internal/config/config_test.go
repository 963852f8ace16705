package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sant0-9/lpg/internal/form"
	"github.com/sant0-9/lpg/internal/prompt"
)

func setDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	return dir
}

func TestLoadMissingIsFirstRun(t *testing.T) {
	setDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != nil {
		t.Fatalf("Load = %+v, want nil on first run", cfg)
	}
	if Exists() {
		t.Error("Exists reports a config that was never saved")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := setDir(t)

	cfg := DefaultConfig()
	cfg.Variant = prompt.VariantLearningModel
	cfg.InputMode = form.InputManual
	cfg.Defaults.Length = prompt.Length2500
	cfg.Defaults.Format = prompt.FormatPresentation
	cfg.Defaults.References = true

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	info, err := os.Stat(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config mode = %v, want 0600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := setDir(t)
	data := "input_mode: paste\ndefaults:\n  unit: 5\n  level: D3\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := DefaultConfig()
	want.InputMode = form.InputPaste
	want.Defaults.Unit = 5
	want.Defaults.Level = prompt.LevelD3
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("partial config (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{"unknown format", "defaults:\n  format: Poster\n", prompt.ErrInvalidValue},
		{"unknown input mode", "input_mode: scan\n", form.ErrInvalidInputMode},
		{"bad delay", "highlight_delay: soon\n", nil},
		{"non-positive unit", "defaults:\n  unit: 0\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setDir(t)
			if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	dir := setDir(t)

	state, err := StatePath()
	if err != nil || state != filepath.Join(dir, "state.yaml") {
		t.Errorf("StatePath = %q, %v", state, err)
	}

	cfg := DefaultConfig()
	logPath, err := cfg.LogPath()
	if err != nil || logPath != filepath.Join(dir, "lpg.log") {
		t.Errorf("LogPath = %q, %v", logPath, err)
	}

	cfg.Log.File = "/var/log/lpg.log"
	if logPath, _ := cfg.LogPath(); logPath != "/var/log/lpg.log" {
		t.Errorf("LogPath override = %q", logPath)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.HighlightDelayDuration().Milliseconds(); got != 100 {
		t.Errorf("HighlightDelayDuration = %dms", got)
	}
	if got := cfg.CopiedFlashDuration().Seconds(); got != 2 {
		t.Errorf("CopiedFlashDuration = %vs", got)
	}
}

func TestDefaultsParams(t *testing.T) {
	d := DefaultDefaults()
	d.Unit = 3
	d.Analogy = prompt.AnalogyMany

	p := d.Params(prompt.VariantLearningModel)
	if p.Variant != prompt.VariantLearningModel || p.Unit != 3 || p.Analogy != prompt.AnalogyMany {
		t.Errorf("Params = %+v", p)
	}
	if p.Source != "" {
		t.Error("defaults must not seed a source")
	}
}

func TestCatalogs(t *testing.T) {
	for _, v := range prompt.Variants() {
		if GetVariant(v) == nil {
			t.Errorf("no catalog entry for variant %q", v)
		}
	}
	for _, m := range form.InputModes() {
		if GetInputMode(m) == nil {
			t.Errorf("no catalog entry for input mode %q", m)
		}
	}
	if GetVariant("bogus") != nil {
		t.Error("GetVariant found an unknown id")
	}
}
