// Package main is the entry point for the seaswell demo simulator: it
// builds a grid mesh, runs the wave deformation frame loop, and reports
// per-frame statistics.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/seaswell/internal/config"
	"github.com/Faultbox/seaswell/internal/engine/deform"
	"github.com/Faultbox/seaswell/internal/engine/mesh"
	"github.com/Faultbox/seaswell/internal/engine/texture"
	"github.com/Faultbox/seaswell/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Seaswell Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulation finished")
}

func run(cfg *config.Config) error {
	snap, err := mesh.Plane(cfg.Sim.GridWidth, cfg.Sim.GridLength, cfg.Sim.ResolutionX, cfg.Sim.ResolutionZ)
	if err != nil {
		return fmt.Errorf("building grid mesh: %w", err)
	}

	set, err := loadTextures(&cfg.Textures)
	if err != nil {
		return fmt.Errorf("loading textures: %w", err)
	}

	driver, err := deform.New(snap, set, deformConfig(cfg))
	if err != nil {
		return fmt.Errorf("initializing deformation: %w", err)
	}
	defer driver.Release()

	extended := cfg.Deform.Variant != "basic"
	buffers := mesh.NewBuffers(snap.Count(), extended)

	logger.Info("frame loop starting",
		zap.Int("frames", cfg.Sim.Frames),
		zap.Float32("dt", cfg.Sim.DeltaTime),
		zap.Int("vertices", snap.Count()))

	start := time.Now()
	lastReport := start
	for frame := 1; frame <= cfg.Sim.Frames; frame++ {
		if err := driver.Advance(cfg.Sim.DeltaTime); err != nil {
			// A failed frame keeps the previous mesh data; the next
			// frame retries naturally.
			logger.Warn("frame dropped", zap.Int("frame", frame), zap.Error(err))
			continue
		}
		driver.WriteMesh(buffers)

		if time.Since(lastReport) >= time.Second {
			lastReport = time.Now()
			logger.Info("progress",
				zap.Int("frame", frame),
				zap.Float32("elapsed", driver.Elapsed()),
				zap.Float64("fps", float64(frame)/time.Since(start).Seconds()))
		}
	}

	logger.Info("frame loop done",
		zap.Duration("wall", time.Since(start)),
		zap.Float64("fps", float64(cfg.Sim.Frames)/time.Since(start).Seconds()))

	if cfg.Sim.SnapshotPath != "" {
		if err := writeHeightfield(cfg.Sim.SnapshotPath, driver, cfg.Sim.ResolutionX, cfg.Sim.ResolutionZ); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		logger.Info("heightfield snapshot written", zap.String("path", cfg.Sim.SnapshotPath))
	}

	return nil
}

// loadTextures loads the configured texture set, generating a procedural
// one when no displacement path is set.
func loadTextures(tc *config.TexturesConfig) (*texture.Set, error) {
	if tc.Displacement == "" {
		logger.Info("no texture paths configured, generating procedural set",
			zap.Int("size", tc.ProceduralSize),
			zap.Int64("seed", tc.Seed))
		return texture.GenerateSet(tc.ProceduralSize, tc.Seed), nil
	}
	return texture.LoadSet(tc.Displacement, tc.DerivU, tc.DerivV, tc.Offset)
}

// deformConfig maps the YAML configuration onto the deformation config.
func deformConfig(cfg *config.Config) deform.Config {
	d := cfg.Deform

	dc := deform.DefaultConfig()
	dc.Variant = deform.VariantExtended
	if d.Variant == "basic" {
		dc.Variant = deform.VariantBasic
	}
	dc.Displacement = d.Displacement
	dc.NormalScale = d.NormalScale
	dc.SubDivisions = d.SubDivisions
	dc.AnimRateStart = d.AnimRateStart
	dc.AnimRateEnd = d.AnimRateEnd
	dc.AnimPeriod = d.AnimPeriod
	dc.RegionWidth = d.RegionWidth
	dc.RegionSpeed = d.RegionSpeed
	dc.FeatherX = d.FeatherX
	dc.FeatherZ = d.FeatherZ
	dc.ZScale = deform.ZScale{
		Start: d.ZScaleStart,
		End:   d.ZScaleEnd,
		Speed: d.ZScaleSpeed,
		Pivot: d.ZScalePivot,
	}
	dc.OffsetScale = d.OffsetScale
	dc.OffsetBias = d.OffsetBias
	dc.FoamColor = mgl32.Vec4{d.FoamColor[0], d.FoamColor[1], d.FoamColor[2], d.FoamColor[3]}
	dc.LogicalFromUV = d.LogicalFromUV
	dc.GridSizeX = d.GridSizeX
	dc.GridSizeZ = d.GridSizeZ

	if cfg.Readback.Mode == "async" {
		dc.Readback = deform.ReadbackAsync
	}
	dc.ThrottleN = cfg.Readback.Throttle
	dc.Workers = cfg.Sim.Workers

	return dc
}

// writeHeightfield dumps the final displaced Y values as a grayscale PNG,
// normalized across the observed range.
func writeHeightfield(path string, driver *deform.Driver, resX, resZ int) error {
	out := driver.Outputs()

	minY, maxY := out[0].Position.Y(), out[0].Position.Y()
	for _, o := range out {
		if o.Position.Y() < minY {
			minY = o.Position.Y()
		}
		if o.Position.Y() > maxY {
			maxY = o.Position.Y()
		}
	}
	span := maxY - minY
	if span <= 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, resX, resZ))
	grid := driver.Grid()
	for i := range out {
		gx, gz := grid.Coords(i)
		if gx >= resX || gz >= resZ {
			continue
		}
		v := (out[i].Position.Y() - minY) / span
		img.Pix[gz*resX+gx] = uint8(v * 255)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
