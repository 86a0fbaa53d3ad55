package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBrush      = flag.Float64("brush-radius", 0, "Brush radius in hull units")
	flagWeight     = flag.Float64("weight-per-face", 0, "Weight applied per painted face")
	flagStations   = flag.Float64("lod-stations", 0, "Station densification multiplier")
	flagWaterlines = flag.Float64("lod-waterlines", 0, "Waterline densification multiplier")
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
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagBrush > 0 {
		cfg.Brush.Radius = *flagBrush
	}
	if *flagWeight > 0 {
		cfg.Brush.WeightPerFace = *flagWeight
	}
	if *flagStations > 0 {
		cfg.LOD.StationMultiplier = *flagStations
	}
	if *flagWaterlines > 0 {
		cfg.LOD.WaterlineMultiplier = *flagWaterlines
	}
}
