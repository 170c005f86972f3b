package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prateekn/ecosim/internal/eco"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Params.Validate(); err != nil {
		t.Errorf("default parameters should validate: %v", err)
	}
	if cfg.Chat.MaxLength != DefaultChatMaxLength {
		t.Errorf("expected max length %d, got %d", DefaultChatMaxLength, cfg.Chat.MaxLength)
	}
	if cfg.Chat.Model == "" {
		t.Error("default chat model should be set")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecosim.yaml")

	cfg := DefaultConfig()
	cfg.Params.HumanImpact = 0.9
	cfg.Params.TimeSteps = 120
	cfg.Chat.Model = "test-model"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Params.HumanImpact != 0.9 {
		t.Errorf("human impact = %g, want 0.9", loaded.Params.HumanImpact)
	}
	if loaded.Params.TimeSteps != 120 {
		t.Errorf("time steps = %d, want 120", loaded.Params.TimeSteps)
	}
	if loaded.Chat.Model != "test-model" {
		t.Errorf("chat model = %s, want test-model", loaded.Chat.Model)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	content := "params:\n  water_availability: 0.8\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Params.Water != 0.8 {
		t.Errorf("water = %g, want 0.8", cfg.Params.Water)
	}
	if cfg.Params.SoilQuality != eco.DefaultSoilQuality {
		t.Errorf("soil quality should keep default, got %g", cfg.Params.SoilQuality)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "params:\n  water_availability: 7.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, eco.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("drought")
	if !ok {
		t.Fatal("expected drought preset")
	}
	if p.Water != 0.05 {
		t.Errorf("drought water = %g, want 0.05", p.Water)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("drought preset should validate: %v", err)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		p, ok := GetPreset(name)
		if !ok {
			t.Fatalf("preset %s vanished", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s should validate: %v", name, err)
		}
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %s before %s", names[i-1], names[i])
		}
	}
}
