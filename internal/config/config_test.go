package config

import (
	"errors"
	"os"
	"path/filepath"
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
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Graphics.FOV)
	}
	if cfg.Graphics.Ambient != [3]float32{0.3, 0.3, 0.3} {
		t.Errorf("expected ambient 0.3, got %v", cfg.Graphics.Ambient)
	}
	if cfg.Graphics.MSAA != 4 {
		t.Errorf("expected msaa 4, got %d", cfg.Graphics.MSAA)
	}

	if cfg.Scene.InitialLightAngle != 180 {
		t.Errorf("expected initial light angle 180, got %f", cfg.Scene.InitialLightAngle)
	}
	if cfg.Scene.PointLight.Position != [3]float32{0, 7, 0} {
		t.Errorf("expected point light at (0,7,0), got %v", cfg.Scene.PointLight.Position)
	}
	if cfg.Scene.PointLight.Intensity != 5 {
		t.Errorf("expected point light intensity 5, got %f", cfg.Scene.PointLight.Intensity)
	}
	if cfg.Scene.PointLight.Attenuation != [3]float32{0, 0, 1} {
		t.Errorf("expected attenuation (0,0,1), got %v", cfg.Scene.PointLight.Attenuation)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sunlit.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  msaa: 0
  fps_limit: 144
  fov: 75
  ambient: [0.1, 0.2, 0.3]

scene:
  model: "models/cube.gltf"
  texture: ""
  scale: 2.5
  initial_light_angle: 45
  point_light:
    position: [1, 2, 3]
    intensity: 2

data:
  asset_paths: ["/srv/assets", "./local"]

logging:
  level: "debug"
  log_file: "sunlit.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.MSAA != 0 {
		t.Errorf("expected msaa 0, got %d", cfg.Graphics.MSAA)
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Graphics.Ambient != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("expected ambient (0.1,0.2,0.3), got %v", cfg.Graphics.Ambient)
	}
	// Untouched keys keep their defaults
	if cfg.Graphics.Far != 1000 {
		t.Errorf("expected default far plane, got %f", cfg.Graphics.Far)
	}

	if cfg.Scene.Model != "models/cube.gltf" {
		t.Errorf("expected model models/cube.gltf, got %s", cfg.Scene.Model)
	}
	if cfg.Scene.Texture != "" {
		t.Errorf("expected empty texture, got %s", cfg.Scene.Texture)
	}
	if cfg.Scene.InitialLightAngle != 45 {
		t.Errorf("expected initial light angle 45, got %f", cfg.Scene.InitialLightAngle)
	}
	if cfg.Scene.PointLight.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected point light at (1,2,3), got %v", cfg.Scene.PointLight.Position)
	}
	if cfg.Scene.PointLight.Color != [3]float32{1, 1, 1} {
		t.Errorf("expected default point light color, got %v", cfg.Scene.PointLight.Color)
	}

	if len(cfg.Data.AssetPaths) != 2 || cfg.Data.AssetPaths[0] != "/srv/assets" {
		t.Errorf("unexpected asset paths: %v", cfg.Data.AssetPaths)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sunlit.log" {
		t.Errorf("expected log file 'sunlit.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/sunlit.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }, ErrInvalidSize},
		{"near zero", func(c *Config) { c.Graphics.Near = 0 }, ErrInvalidClip},
		{"far before near", func(c *Config) { c.Graphics.Far = 0.001 }, ErrInvalidClip},
		{"negative msaa", func(c *Config) { c.Graphics.MSAA = -2 }, ErrInvalidMSAA},
		{"no model", func(c *Config) { c.Scene.Model = "" }, ErrMissingModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
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
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "sunlit.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find sunlit.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
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
			name: "asset and model flags",
			setup: func() {
				*flagAssets = "/tmp/extra"
				*flagModel = "models/fox.glb"
				*flagTexture = "textures/fox.png"
			},
			verify: func(t *testing.T, cfg *Config) {
				paths := cfg.Data.AssetPaths
				if paths[len(paths)-1] != "/tmp/extra" {
					t.Errorf("expected extra asset path appended, got %v", paths)
				}
				if cfg.Scene.Model != "models/fox.glb" {
					t.Errorf("expected model override, got %s", cfg.Scene.Model)
				}
				if cfg.Scene.Texture != "textures/fox.png" {
					t.Errorf("expected texture override, got %s", cfg.Scene.Texture)
				}
			},
			teardown: func() {
				*flagAssets = ""
				*flagModel = ""
				*flagTexture = ""
			},
		},
		{
			name:  "no-texture flag",
			setup: func() { *flagNoTexture = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Texture != "" {
					t.Errorf("expected texture cleared, got %s", cfg.Scene.Texture)
				}
			},
			teardown: func() { *flagNoTexture = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sunlit.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sunlit.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sunlit.yaml")

	cfg := Default()
	cfg.Scene.InitialLightAngle = -30
	cfg.Graphics.Width = 800

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.InitialLightAngle != -30 {
		t.Errorf("expected saved angle -30, got %f", loaded.Scene.InitialLightAngle)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected saved width 800, got %d", loaded.Graphics.Width)
	}
}
