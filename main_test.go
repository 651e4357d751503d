package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/scene"
)

// testLogger collects log output
type testLogger struct {
	lines []string
}

func (l *testLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectError bool
	}{
		{
			name: "defaults",
			args: nil,
			expected: Config{
				SceneType: "random-spheres",
				Seed:      42,
				OutputDir: "output",
			},
		},
		{
			name: "all options",
			args: []string{"-scene", "default", "-width", "320", "-samples", "16", "-depth", "10", "-workers", "3", "-seed", "7", "-output", "out"},
			expected: Config{
				SceneType: "default",
				Width:     320,
				Samples:   16,
				MaxDepth:  10,
				Workers:   3,
				Seed:      7,
				OutputDir: "out",
			},
		},
		{
			name:     "help",
			args:     []string{"-help"},
			expected: Config{SceneType: "random-spheres", Seed: 42, OutputDir: "output", Help: true},
		},
		{"negative width", []string{"-width", "-5"}, Config{}, true},
		{"bad number", []string{"-samples", "many"}, Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := parseFlags(tt.args)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if config != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, config)
			}
		})
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"random spheres scene", "random-spheres", false},
		{"bouncing spheres scene", "bouncing-spheres", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(Config{SceneType: tt.sceneType, Width: 64, Seed: 1})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.CameraConfig.Width != 64 {
				t.Errorf("Expected width override 64, got %d", s.CameraConfig.Width)
			}
			if _, ok := s.World.(*geometry.BVHNode); !ok {
				t.Errorf("Expected preprocessed scene with BVH world, got %T", s.World)
			}
		})
	}
}

func TestRun_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	logger := &testLogger{}

	filename, err := run(Config{
		SceneType: "default",
		Width:     32,
		Samples:   2,
		MaxDepth:  4,
		Workers:   2,
		Seed:      3,
		OutputDir: dir,
	}, logger)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.HasPrefix(filename, filepath.Join(dir, "default")) {
		t.Errorf("Expected output under %s, got %s", filepath.Join(dir, "default"), filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Could not open output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	// Default scene is 16:9
	if bounds := img.Bounds(); bounds.Dx() != 32 || bounds.Dy() != 18 {
		t.Errorf("Expected 32x18 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if len(logger.lines) == 0 {
		t.Error("Expected progress to be logged")
	}
}
