package config

import "flag"

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagQuality        = flag.String("quality", "", "Tessellation quality: low, medium or high")
	flagWindowed       = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen     = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth          = flag.Int("width", 0, "Window width")
	flagHeight         = flag.Int("height", 0, "Window height")
	flagConstellations = flag.String("constellations", "", "Path to a constellation catalogue (YAML)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagQuality != "" {
		q, err := ParseQuality(*flagQuality)
		if err != nil {
			return err
		}
		cfg.Scene.Quality = q
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagConstellations != "" {
		cfg.Scene.ConstellationsFile = *flagConstellations
	}
	return nil
}
