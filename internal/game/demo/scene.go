// Package demo is the day/night lighting scene: one textured mesh, a
// free-fly camera, a movable point light and a sun driven by a day cycle.
package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/sunlit/internal/engine/camera"
	"github.com/Faultbox/sunlit/internal/engine/input"
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/internal/engine/model"
	"github.com/Faultbox/sunlit/internal/engine/renderer"
	"github.com/Faultbox/sunlit/internal/engine/texture"
	"github.com/Faultbox/sunlit/internal/logger"
)

// AssetLoader loads scene resources.
type AssetLoader interface {
	LoadMesh(path string) (*model.Mesh, error)
	LoadTexture(path string) (*texture.Texture, error)
}

// Renderer draws the scene.
type Renderer interface {
	Init(target renderer.Target) error
	Render(target renderer.Target, cam *camera.Camera, items []*model.Item, point *lighting.PointLight, dir *lighting.DirectionalLight)
	Cleanup()
}

// Scene owns all state of the demo. It implements game.Logic.
type Scene struct {
	settings Settings
	assets   AssetLoader
	renderer Renderer
	log      *zap.Logger

	camera     *camera.Camera
	items      []*model.Item
	pointLight *lighting.PointLight
	sun        *lighting.DirectionalLight
	cycle      *lighting.DayCycle
	intents    Intents

	mode       lighting.Mode
	outOfBand  bool
	rendererUp bool
	cleaned    bool
}

// NewScene creates an uninitialised scene.
func NewScene(settings Settings, assets AssetLoader, r Renderer) *Scene {
	return &Scene{
		settings: settings,
		assets:   assets,
		renderer: r,
		log:      logger.Named("scene"),
	}
}

// Init loads the mesh and texture and places camera, item and lights.
func (s *Scene) Init(target renderer.Target) error {
	if err := s.renderer.Init(target); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	s.rendererUp = true

	mesh, err := s.assets.LoadMesh(s.settings.Model)
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	// Keep colour and texture from the model file; a configured texture
	// replaces the file's one.
	mesh.Material.Reflectance = s.settings.Reflectance
	if s.settings.Texture != "" {
		tex, err := s.assets.LoadTexture(s.settings.Texture)
		if err != nil {
			mesh.Cleanup()
			return fmt.Errorf("loading texture: %w", err)
		}
		mesh.Material.Texture = tex
	}

	item := model.NewItem(mesh)
	item.Scale = s.settings.Scale
	item.Position = s.settings.Position
	s.items = []*model.Item{item}

	s.camera = camera.New()

	s.pointLight = lighting.NewPointLight(s.settings.PointColor, s.settings.PointPosition, s.settings.PointIntensity)
	s.pointLight.Attenuation = s.settings.PointAttenuation

	s.sun = lighting.NewDirectionalLight(s.settings.SunColor, s.settings.SunDirection, s.settings.SunIntensity)
	s.cycle = lighting.NewDayCycle(s.settings.InitialLightAngle)
	s.mode = s.cycle.Mode()

	s.log.Info("scene initialised",
		zap.String("model", s.settings.Model),
		zap.String("texture", s.settings.Texture),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Bool("textured", mesh.Material.IsTextured()),
		zap.Any("center", mesh.Bounds.Center()),
		zap.Float32("light_angle", s.cycle.Angle),
	)
	return nil
}

// Input records this frame's intents.
func (s *Scene) Input(state input.State) {
	s.intents = ReadIntents(state)
}

// Update moves the camera, then rotates it, then applies the light nudges and
// derives the sun. Steps are per frame; dt is not used.
func (s *Scene) Update(dt float64, state input.State) {
	in := s.intents

	s.camera.Move(in.Move, CameraStep)
	if pitch, yaw := in.Rotation(); in.Rotate {
		s.camera.MoveRotation(pitch, yaw, 0)
	}

	s.pointLight.Nudge(in.LightNudge)
	s.cycle.Nudge(in.Angle)

	mode := s.cycle.Apply(s.sun)
	if mode != s.mode {
		s.log.Debug("day phase changed",
			zap.Stringer("from", s.mode),
			zap.Stringer("to", mode),
			zap.Float32("angle", s.cycle.Angle))
		s.mode = mode
	}
	s.checkBand()
}

// checkBand warns once each time the sun angle leaves [-90, 90], where the
// twilight factor falls outside [0, 1].
func (s *Scene) checkBand() {
	if s.cycle.InBand() {
		s.outOfBand = false
		return
	}
	if s.outOfBand {
		return
	}
	s.outOfBand = true
	s.log.Warn("sun angle outside clamp range",
		zap.Float32("angle", s.cycle.Angle),
		zap.Float32("factor", lighting.TwilightFactor(s.cycle.Angle)),
		zap.Float32("intensity", s.sun.Intensity),
	)
}

// Render hands camera, items and lights to the renderer.
func (s *Scene) Render(target renderer.Target) {
	s.renderer.Render(target, s.camera, s.items, s.pointLight, s.sun)
}

// Cleanup releases the renderer and every item's mesh. Only the first call
// has an effect.
func (s *Scene) Cleanup() {
	if s.cleaned {
		return
	}
	s.cleaned = true

	if s.rendererUp {
		s.renderer.Cleanup()
	}
	for _, item := range s.items {
		item.Mesh.Cleanup()
	}
	s.log.Info("scene cleaned up", zap.Int("items", len(s.items)))
}

// Camera returns the scene camera.
func (s *Scene) Camera() *camera.Camera { return s.camera }

// PointLight returns the point light.
func (s *Scene) PointLight() *lighting.PointLight { return s.pointLight }

// Sun returns the directional light.
func (s *Scene) Sun() *lighting.DirectionalLight { return s.sun }

// DayCycle returns the sun angle state.
func (s *Scene) DayCycle() *lighting.DayCycle { return s.cycle }

// Items returns the placed items.
func (s *Scene) Items() []*model.Item { return s.items }

// Intents returns the intents recorded by the last Input call.
func (s *Scene) Intents() Intents { return s.intents }
