package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagFrames   = flag.Int("frames", 0, "Number of frames to simulate")
	flagMode     = flag.String("readback", "", "Readback mode (sync or async)")
	flagThrottle = flag.Int("throttle", -1, "Skip retrieval on N of every N+1 frames")
	flagSeed     = flag.Int64("seed", 0, "Procedural texture seed")
	flagSnapshot = flag.String("snapshot", "", "Write final heightfield PNG to path")
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
	if *flagFrames > 0 {
		cfg.Sim.Frames = *flagFrames
	}
	if *flagMode != "" {
		cfg.Readback.Mode = *flagMode
	}
	if *flagThrottle >= 0 {
		cfg.Readback.Throttle = *flagThrottle
	}
	if *flagSeed != 0 {
		cfg.Textures.Seed = *flagSeed
	}
	if *flagSnapshot != "" {
		cfg.Sim.SnapshotPath = *flagSnapshot
	}
}
