package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
)

func TestList(t *testing.T) {
	infos := List()
	if len(infos) != 3 {
		t.Fatalf("Expected 3 built-in scenes, got %d", len(infos))
	}

	seen := make(map[string]bool)
	for _, info := range infos {
		if info.ID == "" || info.DisplayName == "" {
			t.Errorf("Scene info incomplete: %+v", info)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene id %q", info.ID)
		}
		seen[info.ID] = true
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		expectErr bool
	}{
		{"default scene", "default", false},
		{"random spheres", "random-spheres", false},
		{"bouncing spheres", "bouncing-spheres", false},
		{"unknown scene", "cornell-box", true},
		{"empty name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.sceneName, 42)

			if tt.expectErr {
				if err == nil {
					t.Fatalf("Expected error for scene %q", tt.sceneName)
				}
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s == nil || s.Camera == nil {
				t.Fatal("Expected a scene with a camera")
			}
			if len(s.Shapes) == 0 {
				t.Error("Expected scene to contain shapes")
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Invalid sampling config %+v", s.SamplingConfig)
			}
		})
	}
}

func TestCreate_EveryListedSceneIsCreatable(t *testing.T) {
	for _, info := range List() {
		t.Run(info.ID, func(t *testing.T) {
			if _, err := Create(info.ID, 1, geometry.CameraConfig{Width: 64}); err != nil {
				t.Errorf("Create(%q) failed: %v", info.ID, err)
			}
		})
	}
}
