package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type sceneFactory func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene

type registeredScene struct {
	info    SceneInfo
	factory sceneFactory
}

// builtInScenes is ordered as it should be listed
var builtInScenes = []registeredScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Three spheres (glass, diffuse, metal) on a large ground sphere",
		},
		factory: func(_ int64, cameraOverrides ...geometry.CameraConfig) *Scene {
			return NewDefaultScene(cameraOverrides...)
		},
	},
	{
		info: SceneInfo{
			ID:          "random-spheres",
			DisplayName: "Random Spheres",
			Description: "Grid of small random diffuse, metal and glass spheres around three large spheres",
		},
		factory: NewRandomSpheresScene,
	},
	{
		info: SceneInfo{
			ID:          "bouncing-spheres",
			DisplayName: "Bouncing Spheres",
			Description: "Random spheres with motion-blurred diffuse spheres",
		},
		factory: NewBouncingSpheresScene,
	},
}

// List returns the built-in scenes
func List() []SceneInfo {
	infos := make([]SceneInfo, len(builtInScenes))
	for i, registered := range builtInScenes {
		infos[i] = registered.info
	}
	return infos
}

// Create builds the named scene. Scenes with random content are generated from seed.
// The returned scene still needs Preprocess before rendering.
func Create(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, registered := range builtInScenes {
		if registered.info.ID == name {
			return registered.factory(seed, cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
