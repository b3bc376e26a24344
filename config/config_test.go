package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	if cfg.Physics.SpringBack != 0.06 {
		t.Errorf("SpringBack = %v, want 0.06", cfg.Physics.SpringBack)
	}
	if cfg.Physics.Damping != 0.92 {
		t.Errorf("Damping = %v, want 0.92", cfg.Physics.Damping)
	}
	if cfg.Shockwave.MaxCount != 10 {
		t.Errorf("Shockwave.MaxCount = %v, want 10", cfg.Shockwave.MaxCount)
	}
	if cfg.Gravity.RepelStrength >= 0 {
		t.Errorf("RepelStrength = %v, want negative", cfg.Gravity.RepelStrength)
	}
	if cfg.Limits.MinPointCount != 3 || cfg.Limits.MaxPointCount != 10000 {
		t.Errorf("point count limits = [%d, %d], want [3, 10000]",
			cfg.Limits.MinPointCount, cfg.Limits.MaxPointCount)
	}
	if cfg.Mesh.GhostThreshold != 0.15 {
		t.Errorf("GhostThreshold = %v, want 0.15", cfg.Mesh.GhostThreshold)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// Override a single field; everything else should keep its default
	data := []byte("physics:\n  damping: 0.8\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}

	if cfg.Physics.Damping != 0.8 {
		t.Errorf("Damping = %v, want 0.8 (overridden)", cfg.Physics.Damping)
	}
	if cfg.Physics.SpringBack != 0.06 {
		t.Errorf("SpringBack = %v, want 0.06 (default preserved)", cfg.Physics.SpringBack)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should return error")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load round trip: %v", err)
	}
	if loaded.Shockwave.Decay != cfg.Shockwave.Decay {
		t.Errorf("round trip Decay = %v, want %v", loaded.Shockwave.Decay, cfg.Shockwave.Decay)
	}
}
