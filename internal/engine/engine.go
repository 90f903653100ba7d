package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/autozoom/internal/renderer"
	"github.com/ivlev/autozoom/internal/system"
)

// Job describes one export run: the frame grid to resolve.
type Job struct {
	FPS      int
	Duration float64
	Workers  int
}

// FrameCount returns the number of output frames in the grid. The grid
// may round slightly past the last sample; resolving past the end is
// defined behavior (identity state).
func (j Job) FrameCount() int {
	if j.Duration <= 0 || j.FPS <= 0 {
		return 0
	}
	return int(math.Ceil(j.Duration * float64(j.FPS)))
}

// FrameSink consumes resolved frames. WriteFrame is called from a
// single goroutine, in frame order, each index exactly once.
type FrameSink interface {
	WriteFrame(index int, frame renderer.Frame) error
}

// Report summarizes a completed export.
type Report struct {
	Frames       int
	Elapsed      time.Duration
	EffectiveFPS float64
	Host         system.Stats
}

// Exporter drives per-frame resolution for one export run. Resolution
// fans out across a bounded worker pool (the resolver is a pure
// function over immutable snapshots, so no locking is involved) and
// delivery to the sink stays sequential and ordered.
type Exporter struct {
	resolver *renderer.Resolver
	log      logrus.FieldLogger
}

func NewExporter(resolver *renderer.Resolver, log logrus.FieldLogger) *Exporter {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Exporter{resolver: resolver, log: log}
}

// Export resolves every frame of the job and hands them to the sink in
// index order. Cancellation is honored between frames: once the
// context fails, no further frames are resolved and nothing partial is
// delivered: the sink never sees a frame from a cancelled run that
// would not also appear in a completed one.
func (e *Exporter) Export(ctx context.Context, job Job, sink FrameSink) (*Report, error) {
	total := job.FrameCount()
	if total == 0 {
		return &Report{Host: system.Snapshot()}, nil
	}

	workers := job.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	e.log.WithFields(logrus.Fields{
		"frames":  total,
		"fps":     job.FPS,
		"workers": workers,
	}).Info("export started")

	start := time.Now()
	frames := make([]renderer.Frame, total)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				frames[i] = e.resolver.Resolve(float64(i) / float64(job.FPS))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < total; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		e.log.WithError(err).Warn("export aborted, unflushed frames discarded")
		return nil, fmt.Errorf("export aborted: %w", err)
	}

	// Ordered delivery after resolution, still cancellable.
	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export aborted: %w", err)
		}
		if err := sink.WriteFrame(i, frame); err != nil {
			return nil, fmt.Errorf("write frame %d: %w", i, err)
		}
	}

	elapsed := time.Since(start)
	report := &Report{
		Frames:       total,
		Elapsed:      elapsed,
		EffectiveFPS: float64(total) / elapsed.Seconds(),
		Host:         system.Snapshot(),
	}

	e.log.WithFields(logrus.Fields{
		"frames":        report.Frames,
		"elapsed":       report.Elapsed,
		"effective_fps": fmt.Sprintf("%.0f", report.EffectiveFPS),
		"cpu_percent":   fmt.Sprintf("%.1f", report.Host.CPUPercent),
		"mem_used_mb":   report.Host.MemUsedMB,
	}).Info("export finished")

	return report, nil
}
