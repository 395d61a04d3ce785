package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true by default")
	}

	if cfg.Scene.Quality != QualityMedium {
		t.Errorf("expected quality medium, got %s", cfg.Scene.Quality)
	}
	if !cfg.Scene.Stitch {
		t.Error("expected stitch to be enabled by default")
	}
	if cfg.Scene.Stagger {
		t.Error("expected stagger to be disabled by default")
	}
	if cfg.Scene.SphereRadius != 100 {
		t.Errorf("expected sphere radius 100, got %v", cfg.Scene.SphereRadius)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: false
  vsync: false
  fps_limit: 60

scene:
  quality: High
  stagger: true
  stitch: false
  sphere_radius: 250
  globe_radius: 12
  show_grid: false
  rotation_speed: 5.5
  constellations_file: "sky.yaml"

logging:
  level: "debug"
  log_file: "skysaver.log"
  max_backups: 7
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false")
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Scene.Quality != QualityHigh {
		t.Errorf("expected quality high, got %s", cfg.Scene.Quality)
	}
	if !cfg.Scene.Stagger || cfg.Scene.Stitch {
		t.Errorf("expected stagger on and stitch off, got %v/%v", cfg.Scene.Stagger, cfg.Scene.Stitch)
	}
	if cfg.Scene.SphereRadius != 250 || cfg.Scene.GlobeRadius != 12 {
		t.Errorf("unexpected radii %v/%v", cfg.Scene.SphereRadius, cfg.Scene.GlobeRadius)
	}
	if cfg.Scene.ShowGrid {
		t.Error("expected show_grid to be false")
	}
	if !cfg.Scene.ShowStars {
		t.Error("expected show_stars to keep its default")
	}
	if cfg.Scene.RotationSpeed != 5.5 {
		t.Errorf("expected rotation speed 5.5, got %v", cfg.Scene.RotationSpeed)
	}
	if cfg.Scene.ConstellationsFile != "sky.yaml" {
		t.Errorf("expected constellations file sky.yaml, got %s", cfg.Scene.ConstellationsFile)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBackups != 7 {
		t.Errorf("expected max backups 7, got %d", cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("expected max size to keep default 10, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"quality", "scene:\n  quality: ultra\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in      string
		want    Quality
		wantErr bool
	}{
		{"low", QualityLow, false},
		{" Medium ", QualityMedium, false},
		{"HIGH", QualityHigh, false},
		{"", "", true},
		{"ultra", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuality(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuality(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseQuality(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"window size", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"fps", func(c *Config) { c.Graphics.FPSLimit = -1 }, "fps_limit"},
		{"quality", func(c *Config) { c.Scene.Quality = "ultra" }, "quality"},
		{"sphere radius", func(c *Config) { c.Scene.SphereRadius = 0 }, "sphere_radius"},
		{"globe larger than sky", func(c *Config) { c.Scene.GlobeRadius = 500 }, "globe_radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("skysaver.yaml", []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find skysaver.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "quality flag",
			setup: func() { *flagQuality = "low" },
			verify: func(cfg *Config) {
				if cfg.Scene.Quality != QualityLow {
					t.Errorf("expected quality low, got %s", cfg.Scene.Quality)
				}
			},
			teardown: func() { *flagQuality = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "constellations flag",
			setup: func() { *flagConstellations = "/tmp/sky.yaml" },
			verify: func(cfg *Config) {
				if cfg.Scene.ConstellationsFile != "/tmp/sky.yaml" {
					t.Errorf("expected constellations file override, got %s", cfg.Scene.ConstellationsFile)
				}
			},
			teardown: func() { *flagConstellations = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsInvalidQuality(t *testing.T) {
	*flagQuality = "ultra"
	defer func() { *flagQuality = "" }()

	if err := applyFlags(Default()); err == nil {
		t.Error("expected error for unknown quality flag")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
scene:
  quality: low
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	*flagQuality = "high"
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagQuality = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Scene.Quality != QualityHigh {
		t.Errorf("expected quality high from flag, got %s", cfg.Scene.Quality)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Quality = QualityHigh
	cfg.Scene.Stagger = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if loaded.Scene.Quality != QualityHigh || !loaded.Scene.Stagger {
		t.Errorf("saved settings not restored: %+v", loaded.Scene)
	}
}

func TestSaveWritesToConfigDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config directory is not overridable via XDG_CONFIG_HOME on this OS")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg := Default()
	cfg.Scene.Quality = QualityLow
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path := findConfigFile()
	if path != filepath.Join(ConfigDir(), "config.yaml") {
		t.Fatalf("findConfigFile() = %q, want the saved file", path)
	}
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if loaded.Scene.Quality != QualityLow {
		t.Errorf("expected saved quality low, got %s", loaded.Scene.Quality)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
