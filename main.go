package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
	"github.com/df07/go-parallel-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int   // 0 = scene default
	Samples   int   // 0 = scene default
	MaxDepth  int   // 0 = scene default
	Workers   int   // 0 = one per logical core
	Seed      int64 // Seeds scene generation, BVH construction and the workers
	OutputDir string
	Help      bool
}

func main() {
	config, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	if config.Help {
		printHelp()
		return
	}

	logger := renderer.NewDefaultLogger()
	filename, err := run(config, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// newFlagSet registers the command line options, storing parsed values in config
func newFlagSet(config *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&config.SceneType, "scene", "random-spheres", "Scene type (see -help for the list)")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of worker goroutines (0 = one per logical core)")
	fs.Int64Var(&config.Seed, "seed", 42, "Random seed for scene generation and sampling")
	fs.StringVar(&config.OutputDir, "output", "output", "Directory that receives <scene>/render_<timestamp>.png")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

// parseFlags reads the command line options from args
func parseFlags(args []string) (Config, error) {
	var config Config
	if err := newFlagSet(&config).Parse(args); err != nil {
		return Config{}, err
	}
	if config.Width < 0 || config.Samples < 0 || config.MaxDepth < 0 {
		return Config{}, fmt.Errorf("width, samples and depth must not be negative")
	}
	return config, nil
}

func printHelp() {
	fmt.Println("Parallel Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs := newFlagSet(&Config{})
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-17s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

// createScene builds and preprocesses the requested scene
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneType, config.Seed, geometry.CameraConfig{Width: config.Width})
	if err != nil {
		return nil, err
	}
	if err := s.Preprocess(rand.New(rand.NewSource(config.Seed))); err != nil {
		return nil, fmt.Errorf("failed to preprocess scene %q: %w", config.SceneType, err)
	}
	return s, nil
}

// run renders the configured scene and writes it as a PNG, returning the file path
func run(config Config, logger core.Logger) (string, error) {
	logger.Printf("Starting Parallel Path Tracer...\n")
	logger.Printf("Using %s scene (seed %d)...\n", config.SceneType, config.Seed)

	buildStart := time.Now()
	s, err := createScene(config)
	if err != nil {
		return "", err
	}
	logger.Printf("Built BVH over %d primitives in %v\n", s.GetPrimitiveCount(), time.Since(buildStart))

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	renderConfig.Seed = config.Seed
	renderConfig.SamplesPerPixel = config.Samples
	renderConfig.MaxDepth = config.MaxDepth

	result, err := renderer.Render(s, renderConfig, logger)
	if err != nil {
		return "", err
	}

	img := result.Image()
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	// Create output directory for this scene type
	outputDir := filepath.Join(config.OutputDir, config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
