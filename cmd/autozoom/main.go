package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ivlev/autozoom/internal/config"
	"github.com/ivlev/autozoom/internal/cursor"
	"github.com/ivlev/autozoom/internal/director"
	"github.com/ivlev/autozoom/internal/easing"
	"github.com/ivlev/autozoom/internal/effects"
	"github.com/ivlev/autozoom/internal/engine"
	"github.com/ivlev/autozoom/internal/events"
	"github.com/ivlev/autozoom/internal/preview"
	"github.com/ivlev/autozoom/internal/renderer"
	"github.com/ivlev/autozoom/internal/system"
	"github.com/ivlev/autozoom/internal/timeline"
)

// discardSink drops frames; used by the dry-run export that exists to
// benchmark resolution before wiring a real encoder behind it.
type discardSink struct{}

func (discardSink) WriteFrame(int, renderer.Frame) error { return nil }

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	inputPtr := flag.String("input", "", "Path to a recording log, or a directory to pick the newest log from (default: input/recordings/)")
	planPtr := flag.String("plan", "", "Path for the generated plan YAML (default: auto-generated in output/plans/)")
	configPtr := flag.String("config", "", "Optional project config YAML; flags override it")
	fpsPtr := flag.Int("fps", 30, "Output frame rate")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Frame resolution workers")
	zoomPtr := flag.Float64("zoom-level", 2.0, "Zoom magnification (1-6)")
	durationPtr := flag.Float64("zoom-duration", 1.2, "Zoom segment duration in seconds (0.6-3.0)")
	easingPtr := flag.String("easing", "ease_in_out", "Easing curve: linear, ease_in, ease_out, ease_in_out")
	followPtr := flag.Bool("follow-cursor", false, "Track the cursor during the hold phase")
	smoothingPtr := flag.Float64("smoothing", 0.3, "Cursor smoothing factor (0.1-0.5)")
	cursorScalePtr := flag.Float64("cursor-scale", 1.5, "Highlight scale inside zoomed frames (1-3)")
	filterPtr := flag.Bool("filter", false, "Print the FFmpeg zoompan filter for the plan")
	previewPtr := flag.String("preview", "", "Write a contact-sheet PNG of the plan to this path")
	exportPtr := flag.Bool("export", false, "Run a dry-run export and report resolution throughput")

	flag.Parse()

	cfg := config.Default()
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
		cfg = loaded
	}
	cfg.FPS = *fpsPtr
	cfg.Workers = *workersPtr
	cfg.Zoom = config.Settings{
		Enabled:         true,
		ZoomLevel:       *zoomPtr,
		Duration:        *durationPtr,
		Easing:          easing.Curve(*easingPtr),
		FollowCursor:    *followPtr,
		CursorSmoothing: *smoothingPtr,
		CursorScale:     *cursorScalePtr,
	}.Clamp()

	inputPath, err := resolveInput(*inputPtr)
	if err != nil {
		log.WithError(err).Fatal("no recording to process")
	}

	rec, err := events.NewFileSource(inputPath).Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load recording")
	}

	log.WithFields(logrus.Fields{
		"recording": inputPath,
		"canvas":    fmt.Sprintf("%dx%d", rec.Canvas.Width, rec.Canvas.Height),
		"duration":  fmt.Sprintf("%.2fs", rec.Duration),
		"clicks":    len(rec.Clicks),
		"samples":   len(rec.Cursor),
	}).Info("recording loaded")

	segments, err := director.NewDirector(rec.Canvas).Generate(rec.Clicks, cfg.Zoom)
	if err != nil {
		log.WithError(err).Fatal("segment generation failed")
	}

	plan, err := director.NewPlan(rec.Canvas, rec.Duration, segments)
	if err != nil {
		log.WithError(err).Fatal("invalid plan")
	}

	planPath := *planPtr
	if planPath == "" {
		dir := filepath.Join("output", "plans")
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.WithError(err).Fatal("failed to create plan directory")
		}
		planPath = director.GeneratePlanPath(dir)
	}
	if err := director.WritePlan(plan, planPath); err != nil {
		log.WithError(err).Fatal("failed to write plan")
	}
	log.WithFields(logrus.Fields{
		"plan":     planPath,
		"segments": len(segments),
	}).Info("plan written")

	track, err := cursor.NewTrack(rec.Cursor, cfg.Zoom.CursorSmoothing)
	if err != nil {
		log.WithError(err).Fatal("failed to build cursor track")
	}

	tl, err := timeline.New(segments, rec.Duration, track)
	if err != nil {
		log.WithError(err).Fatal("failed to build timeline")
	}

	resolver := renderer.NewResolver(tl, track, effects.ForClicks(rec.Clicks), cfg.Zoom)

	if *filterPtr {
		fmt.Println(renderer.ZoomPanFilter(tl, cfg.FPS, rec.Canvas.Width, rec.Canvas.Height))
	}

	if *previewPtr != "" {
		if err := preview.WritePNG(resolver, rec.Duration, preview.DefaultSheetOptions(), *previewPtr); err != nil {
			log.WithError(err).Fatal("failed to write preview")
		}
		log.WithField("preview", *previewPtr).Info("contact sheet written")
	}

	if *exportPtr {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		job := engine.Job{FPS: cfg.FPS, Duration: rec.Duration, Workers: cfg.Workers}
		report, err := engine.NewExporter(resolver, log).Export(ctx, job, discardSink{})
		if err != nil {
			log.WithError(err).Fatal("export failed")
		}
		fmt.Printf("--- [RESOLUTION REPORT] ---\n")
		fmt.Printf("Frames: %d\n", report.Frames)
		fmt.Printf("Elapsed: %.2fs\n", report.Elapsed.Seconds())
		fmt.Printf("Effective FPS: %.0f\n", report.EffectiveFPS)
		fmt.Printf("Host: %d cores, %.1f%% CPU, %d MB used\n",
			report.Host.NumCPU, report.Host.CPUPercent, report.Host.MemUsedMB)
		fmt.Printf("---------------------------\n")
	}
}

// resolveInput turns the -input flag into a concrete recording path:
// a file is used as-is, a directory (or the default input/recordings)
// yields its newest log.
func resolveInput(input string) (string, error) {
	if input == "" {
		input = filepath.Join("input", "recordings")
	}

	info, err := os.Stat(input)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return system.FindLatestRecording(input)
	}
	return input, nil
}
