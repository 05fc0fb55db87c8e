// Package config handles simulation configuration loading and management.
package config

// Config holds all simulation settings.
type Config struct {
	Sim      SimConfig      `yaml:"sim"`
	Deform   DeformConfig   `yaml:"deform"`
	Textures TexturesConfig `yaml:"textures"`
	Readback ReadbackConfig `yaml:"readback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SimConfig holds the demo frame loop and grid mesh settings.
type SimConfig struct {
	Frames      int     `yaml:"frames"`
	DeltaTime   float32 `yaml:"delta_time"`
	Workers     int     `yaml:"workers"`
	GridWidth   float32 `yaml:"grid_width"`
	GridLength  float32 `yaml:"grid_length"`
	ResolutionX int     `yaml:"resolution_x"`
	ResolutionZ int     `yaml:"resolution_z"`
	// SnapshotPath, when set, receives a PNG heightfield dump of the
	// final frame.
	SnapshotPath string `yaml:"snapshot_path"`
}

// DeformConfig holds the author-time wave deformation parameters.
type DeformConfig struct {
	Variant       string     `yaml:"variant"` // basic or extended
	Displacement  float32    `yaml:"displacement"`
	NormalScale   float32    `yaml:"normal_scale"`
	SubDivisions  int        `yaml:"sub_divisions"`
	AnimRateStart float32    `yaml:"anim_rate_start"`
	AnimRateEnd   float32    `yaml:"anim_rate_end"`
	AnimPeriod    float32    `yaml:"anim_period"`
	RegionWidth   float32    `yaml:"region_width"`
	RegionSpeed   float32    `yaml:"region_speed"`
	FeatherX      float32    `yaml:"feather_x"`
	FeatherZ      float32    `yaml:"feather_z"`
	ZScaleStart   float32    `yaml:"zscale_start"`
	ZScaleEnd     float32    `yaml:"zscale_end"`
	ZScaleSpeed   float32    `yaml:"zscale_speed"`
	ZScalePivot   float32    `yaml:"zscale_pivot"`
	OffsetScale   float32    `yaml:"offset_scale"`
	OffsetBias    float32    `yaml:"offset_bias"`
	FoamColor     [4]float32 `yaml:"foam_color"`
	LogicalFromUV bool       `yaml:"logical_from_uv"`
	// GridSizeX and GridSizeZ override heuristic grid detection.
	GridSizeX int `yaml:"grid_size_x"`
	GridSizeZ int `yaml:"grid_size_z"`
}

// TexturesConfig holds deformation texture sources. Empty paths fall back
// to a procedurally generated set.
type TexturesConfig struct {
	Displacement   string `yaml:"displacement"`
	DerivU         string `yaml:"deriv_u"`
	DerivV         string `yaml:"deriv_v"`
	Offset         string `yaml:"offset"`
	ProceduralSize int    `yaml:"procedural_size"`
	Seed           int64  `yaml:"seed"`
}

// ReadbackConfig holds the result retrieval policy.
type ReadbackConfig struct {
	Mode     string `yaml:"mode"` // sync or async
	Throttle int    `yaml:"throttle"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Frames:      600,
			DeltaTime:   1.0 / 60.0,
			Workers:     0,
			GridWidth:   100,
			GridLength:  100,
			ResolutionX: 128,
			ResolutionZ: 128,
		},
		Deform: DeformConfig{
			Variant:       "extended",
			Displacement:  1.0,
			NormalScale:   1.0,
			SubDivisions:  1,
			AnimRateStart: 0.05,
			AnimRateEnd:   0.08,
			AnimPeriod:    4.0,
			RegionWidth:   0.25,
			RegionSpeed:   0.02,
			FeatherX:      0.05,
			FeatherZ:      0.05,
			ZScaleStart:   1.0,
			ZScaleEnd:     1.0,
			ZScaleSpeed:   0.1,
			ZScalePivot:   0,
			OffsetScale:   0.1,
			OffsetBias:    188,
			FoamColor:     [4]float32{1, 1, 1, 1},
		},
		Textures: TexturesConfig{
			ProceduralSize: 256,
			Seed:           1,
		},
		Readback: ReadbackConfig{
			Mode:     "sync",
			Throttle: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
