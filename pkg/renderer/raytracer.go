package renderer

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/scene"
)

// ErrInvalidConfig is returned when a render cannot start with the given scene or settings
var ErrInvalidConfig = errors.New("invalid render configuration")

// RenderConfig contains settings for a single render invocation
type RenderConfig struct {
	NumWorkers       int           // Worker goroutines (0 = one per logical core)
	Seed             int64         // Worker i seeds its generator with Seed+i
	SamplesPerPixel  int           // Overrides the scene's sampling config when > 0
	MaxDepth         int           // Overrides the scene's sampling config when > 0
	Progress         *Progress     // Optional shared progress counter
	ProgressInterval time.Duration // How often progress is logged (0 = never)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:       0,
		Seed:             42,
		ProgressInterval: time.Second,
	}
}

// Result is the output of a completed render
type Result struct {
	Framebuffer     *Framebuffer // Per-pixel radiance sums
	SamplesPerPixel int          // Samples summed into every pixel
	MaxDepth        int          // Bounce budget each sample was traced with
	Stats           RenderStats
}

// Image converts the result into an 8-bit image
func (r *Result) Image() *image.RGBA {
	return ToImage(r.Framebuffer, r.SamplesPerPixel)
}

// Render path traces the scene in parallel. The scene must already be preprocessed.
// Workers share the scene read-only, each accumulating into a private framebuffer
// that is merged in worker order once all of them have finished.
func Render(s *scene.Scene, config RenderConfig, logger core.Logger) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidConfig)
	}
	sampling := mergeSamplingConfig(s.SamplingConfig, config)
	integ := integrator.NewPathTracingIntegrator(sampling).WithBackground(s.Background)
	return render(s, config, sampling, integ, logger)
}

func mergeSamplingConfig(base scene.SamplingConfig, config RenderConfig) scene.SamplingConfig {
	result := base
	if config.SamplesPerPixel > 0 {
		result.SamplesPerPixel = config.SamplesPerPixel
	}
	if config.MaxDepth > 0 {
		result.MaxDepth = config.MaxDepth
	}
	return result
}

func validate(s *scene.Scene, sampling scene.SamplingConfig) error {
	switch {
	case s.Camera == nil:
		return fmt.Errorf("%w: scene has no camera", ErrInvalidConfig)
	case s.World == nil:
		return fmt.Errorf("%w: scene has not been preprocessed", ErrInvalidConfig)
	case s.CameraConfig.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, s.CameraConfig.Width)
	case sampling.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, sampling.SamplesPerPixel)
	case sampling.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, sampling.MaxDepth)
	}
	return nil
}

func render(s *scene.Scene, config RenderConfig, sampling scene.SamplingConfig, integ integrator.Integrator, logger core.Logger) (*Result, error) {
	if logger == nil {
		logger = discardLogger{}
	}
	if err := validate(s, sampling); err != nil {
		return nil, err
	}

	width := s.CameraConfig.Width
	height := s.CameraConfig.Height()

	// Never start more workers than there are samples to share
	pool := NewWorkerPool(min(resolveWorkers(config.NumWorkers), sampling.SamplesPerPixel))
	numWorkers := pool.GetNumWorkers()
	shares := splitSamples(sampling.SamplesPerPixel, numWorkers)

	progress := config.Progress
	if progress == nil {
		progress = NewProgress()
	}
	progress.reset(height * numWorkers)

	logger.Printf("Rendering %dx%d with %d spp, max depth %d, on %d workers\n",
		width, height, sampling.SamplesPerPixel, sampling.MaxDepth, numWorkers)

	stopReporting := startProgressReporter(progress, config.ProgressInterval, logger)
	start := time.Now()

	buffers := make([]*Framebuffer, numWorkers)
	err := pool.Run(func(workerID int) {
		worker := &sampleWorker{
			id:         workerID,
			samples:    shares[workerID],
			width:      width,
			height:     height,
			scene:      s,
			integrator: integ,
			sampler:    core.NewRandomSampler(rand.New(rand.NewSource(config.Seed + int64(workerID)))),
			progress:   &rowBatcher{progress: progress},
			pool:       pool,
		}
		buffers[workerID] = worker.render()
	})
	stopReporting()

	if err != nil {
		return nil, fmt.Errorf("render aborted: %w", err)
	}

	final := NewFramebuffer(width, height)
	for _, buffer := range buffers {
		if err := final.Merge(buffer); err != nil {
			return nil, err
		}
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		NumWorkers:      numWorkers,
		SamplesPerPixel: sampling.SamplesPerPixel,
		TotalSamples:    width * height * sampling.SamplesPerPixel,
		Duration:        time.Since(start),
	}
	logger.Printf("Render complete: %s\n", stats)

	return &Result{
		Framebuffer:     final,
		SamplesPerPixel: sampling.SamplesPerPixel,
		MaxDepth:        sampling.MaxDepth,
		Stats:           stats,
	}, nil
}

func resolveWorkers(numWorkers int) int {
	if numWorkers <= 0 {
		return DefaultWorkerCount()
	}
	return numWorkers
}

// startProgressReporter logs the completion percentage every interval until the returned func is called
func startProgressReporter(progress *Progress, interval time.Duration, logger core.Logger) func() {
	if interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				logger.Printf("Progress: %.1f%%\n", 100*progress.Fraction())
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

// sampleWorker accumulates its share of samples for every pixel into a private framebuffer
type sampleWorker struct {
	id         int
	samples    int
	width      int
	height     int
	scene      *scene.Scene
	integrator integrator.Integrator
	sampler    core.Sampler
	progress   *rowBatcher
	pool       *WorkerPool
}

func (w *sampleWorker) render() *Framebuffer {
	fb := NewFramebuffer(w.width, w.height)
	defer w.progress.flush()

	camera := w.scene.Camera
	world := w.scene.World
	uDenom := float64(max(1, w.width-1))
	vDenom := float64(max(1, w.height-1))

	for y := 0; y < w.height; y++ {
		if w.pool.Aborted() {
			return fb
		}

		// Framebuffer rows run top to bottom, camera v runs bottom to top
		j := w.height - 1 - y
		for i := 0; i < w.width; i++ {
			var pixelColor core.Vec3
			for sample := 0; sample < w.samples; sample++ {
				u := (float64(i) + w.sampler.Get1D()) / uDenom
				v := (float64(j) + w.sampler.Get1D()) / vDenom
				ray := camera.GetRay(u, v, w.sampler)
				pixelColor = pixelColor.Add(w.integrator.RayColor(ray, world, w.sampler))
			}
			fb.Add(i, y, pixelColor)
		}
		w.progress.rowDone()
	}

	return fb
}
