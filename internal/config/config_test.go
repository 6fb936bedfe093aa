package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg StarfallConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultStarfallConfig()) {
		t.Errorf("embedded defaults drifted from DefaultStarfallConfig:\n%+v\n%+v", cfg, DefaultStarfallConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("stars:\n  count: 3\ngame_over:\n  restart_delay_ms: 1000\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStarfall(path)
	if err != nil {
		t.Fatalf("LoadStarfall failed: %v", err)
	}
	if cfg.Stars.Count != 3 || cfg.GameOver.RestartDelayMS != 1000 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Stars, cfg.GameOver)
	}
	if cfg.Stars.StepX != 160 || cfg.Bombs.SpeedMax != 600 {
		t.Error("keys missing from the file should keep their defaults")
	}
	if len(cfg.Platforms) != 5 {
		t.Errorf("platforms = %d, expected defaults", len(cfg.Platforms))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(broken, []byte("world: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("stars:\n  count: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"unparsable", broken},
		{"invalid", invalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadStarfall(tc.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// nothing on disk: embedded defaults
	cfg, err := LoadStarfall("")
	if err != nil {
		t.Fatalf("LoadStarfall failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultStarfallConfig()) {
		t.Error("expected embedded defaults")
	}

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, "starfall.yaml"), []byte("stars:\n  points: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadStarfall("")
	if cfg.Stars.Points != 20 {
		t.Errorf("local config not used, points = %d", cfg.Stars.Points)
	}

	user := filepath.Join(home, ".starfall", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, "starfall.yaml"), []byte("stars:\n  points: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadStarfall("")
	if cfg.Stars.Points != 30 {
		t.Errorf("user config should win over local, points = %d", cfg.Stars.Points)
	}
}

func TestApplyStarfallPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		speedMin int
		speedMax int
		points   int
		delay    int
	}{
		{DifficultyEasy, 150, 400, 10, 5000},
		{DifficultyNormal, 200, 600, 10, 7000},
		{DifficultyHard, 300, 700, 15, 7000},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultStarfallConfig()
			ApplyStarfallPreset(&cfg, tc.preset)
			if cfg.Bombs.SpeedMin != tc.speedMin || cfg.Bombs.SpeedMax != tc.speedMax {
				t.Errorf("bomb speed = %d..%d", cfg.Bombs.SpeedMin, cfg.Bombs.SpeedMax)
			}
			if cfg.Stars.Points != tc.points {
				t.Errorf("points = %d", cfg.Stars.Points)
			}
			if cfg.GameOver.RestartDelayMS != tc.delay {
				t.Errorf("restart delay = %d", cfg.GameOver.RestartDelayMS)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StarfallConfig)
	}{
		{"zero world", func(c *StarfallConfig) { c.World.Width = 0 }},
		{"no stars", func(c *StarfallConfig) { c.Stars.Count = 0 }},
		{"bounce reversed", func(c *StarfallConfig) { c.Stars.BounceMax = 0.1 }},
		{"split past max", func(c *StarfallConfig) { c.Bombs.SplitX = 900 }},
		{"speed reversed", func(c *StarfallConfig) { c.Bombs.SpeedMax = 10 }},
		{"negative delay", func(c *StarfallConfig) { c.GameOver.RestartDelayMS = -1 }},
		{"flat platform", func(c *StarfallConfig) { c.Platforms[0].Scale = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStarfallConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultStarfallConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back StarfallConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("cannot parse marshalled config: %v", err)
	}
	if !reflect.DeepEqual(back, DefaultStarfallConfig()) {
		t.Error("marshalled config does not round-trip")
	}
}
