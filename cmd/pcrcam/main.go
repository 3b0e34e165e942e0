package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/ivlev/pcrcam/internal/config"
	"github.com/ivlev/pcrcam/internal/director"
	"github.com/ivlev/pcrcam/internal/logging"
	"github.com/ivlev/pcrcam/internal/pcr"
	log "github.com/sirupsen/logrus"
)

var buildVersion = "dev"

func main() {
	takePtr := flag.String("take", "", "Path to the take YAML (default: newest file in input/takes/)")
	outputPtr := flag.String("output", "", "Output JSON file, or directory with -all (default: camera.json / output/)")
	cameraPtr := flag.String("camera", "", "Camera object to export (default: first camera of the take)")
	layoutPtr := flag.String("layout", "property", "Keyframe layout: property (per-property lists) or frame (indexed on frame)")
	allPtr := flag.Bool("all", false, "Export every camera object, one file each")
	bakePtr := flag.Int("bake", 0, "Insert a key every N frames between take keys (0 = off)")
	easingPtr := flag.String("easing", "linear", "Bake interpolation: linear, ease")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel writers with -all")
	logLevelPtr := flag.String("log-level", "info", "Log level: debug, info, warn, error")

	flag.Parse()

	cfg := &config.Config{
		TakePath:     *takePtr,
		OutputPath:   *outputPtr,
		CameraName:   *cameraPtr,
		Layout:       *layoutPtr,
		ExportAll:    *allPtr,
		BakeStep:     *bakePtr,
		Easing:       *easingPtr,
		Workers:      *workersPtr,
		LogLevel:     *logLevelPtr,
		BuildVersion: buildVersion,
	}

	if err := logging.Setup(cfg.LogLevel, os.Stdout); err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	run := logging.NewRun()

	params, err := cfg.Resolve()
	if err != nil {
		run.Fatalf("Invalid options: %v", err)
	}

	if cfg.TakePath == "" {
		latest, err := director.FindLatestTake(director.DefaultTakeDir)
		if err != nil {
			run.Fatalf("%v. Put a take into %s", err, director.DefaultTakeDir)
		}
		cfg.TakePath = latest
		run.Infof("Selected take: %s", cfg.TakePath)
	}

	take, err := director.ReadTake(cfg.TakePath)
	if err != nil {
		run.Fatalf("Failed to read take: %v", err)
	}

	if cfg.BakeStep > 0 {
		if err := director.Bake(take, cfg.BakeStep, params.Easing); err != nil {
			run.Fatalf("Bake failed: %v", err)
		}
		run.Infof("Baked keys every %d frames (%s)", cfg.BakeStep, cfg.Easing)
	}

	bpy := pcr.New()
	d := director.NewDirector(bpy)
	d.Logger = run
	if err := d.Replay(take); err != nil {
		run.Fatalf("Replay failed: %v", err)
	}

	if cfg.ExportAll {
		outDir := cfg.OutputPath
		if outDir == "" {
			outDir = "output"
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			run.Fatalf("Failed to create %s: %v", outDir, err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		paths, err := director.ExportAll(ctx, bpy, outDir, params.Layout, cfg.Workers)
		if err != nil {
			stop()
			run.Fatalf("Export failed: %v", err)
		}
		run.WithField("files", len(paths)).Infof("Exported every camera to %s", outDir)
		return
	}

	cameraName := cfg.CameraName
	if cameraName == "" {
		cameraName = take.Cameras[0].ObjectKey()
	}

	output := cfg.OutputPath
	if output == "" {
		output = pcr.DefaultFilename
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			run.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	if err := bpy.DumpLayout(cameraName, output, params.Layout); err != nil {
		run.Fatalf("Export failed: %v", err)
	}

	run.WithFields(log.Fields{
		"camera": cameraName,
		"layout": params.Layout,
	}).Infof("Success! Result: %s", output)
}
