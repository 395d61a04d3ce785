// Package saver implements the screensaver main loop.
package saver

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skysaver/internal/config"
	"github.com/Faultbox/skysaver/internal/engine/camera"
	"github.com/Faultbox/skysaver/internal/engine/input"
	"github.com/Faultbox/skysaver/internal/engine/renderer"
	"github.com/Faultbox/skysaver/internal/engine/window"
	"github.com/Faultbox/skysaver/internal/logger"
	"github.com/Faultbox/skysaver/internal/sky"
)

// Saver is the running screensaver.
type Saver struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	builder  *sky.Builder

	built config.Quality
}

// New opens the window and uploads the first scene. Invalid scene settings
// surface as a wrapped *geometry.ConfigError.
func New(cfg *config.Config, catalog *sky.Catalog) (*Saver, error) {
	s := &Saver{
		cfg: cfg,
		log: logger.Named("saver"),
	}
	s.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("quality", cfg.Scene.Quality.String()),
	)

	// Build before opening the window so bad settings fail fast.
	s.builder = sky.NewBuilder(sky.OptionsFromConfig(cfg.Scene, catalog))
	scene, err := s.builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	s.window, err = window.New(window.Config{
		Title:      "Skysaver",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the OpenGL context created by the window
	width, height := s.window.GetSize()
	s.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := s.upload(scene); err != nil {
		s.Close()
		return nil, err
	}

	s.input = input.New(!cfg.Graphics.Fullscreen)
	s.camera = camera.NewOrbitCamera(float32(cfg.Scene.SphereRadius), cfg.Scene.RotationSpeed)

	s.log.Info("initialized")
	return s, nil
}

// upload replaces everything on the GPU with scene and drops the CPU copy.
func (s *Saver) upload(scene *sky.Scene) error {
	s.renderer.Reset()
	if err := scene.Submit(s.renderer); err != nil {
		return fmt.Errorf("uploading scene: %w", err)
	}

	st := scene.Stats()
	s.log.Info("scene uploaded",
		zap.String("quality", st.Quality.String()),
		zap.Int("meshes", len(st.Meshes)),
		zap.Int("vertices", st.Vertices),
		zap.Int("indices", st.Indices),
		zap.Int("warnings", st.Warnings),
	)
	s.built = scene.Quality
	scene.Release()
	return nil
}

// Run runs the main loop until the user quits.
func (s *Saver) Run() error {
	s.running = true

	var frameTime time.Duration
	if s.cfg.Graphics.FPSLimit > 0 {
		frameTime = time.Second / time.Duration(s.cfg.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	s.log.Info("starting main loop")

	for s.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		for _, action := range s.input.Update() {
			if err := s.handle(action); err != nil {
				return err
			}
		}
		if !s.running {
			break
		}

		if s.builder.Quality() != s.built {
			scene, err := s.builder.Build()
			if err != nil {
				return fmt.Errorf("rebuilding scene: %w", err)
			}
			if err := s.upload(scene); err != nil {
				return err
			}
		}

		s.camera.Update(float32(dt))
		s.renderer.Draw(s.camera.ViewProjection(s.renderer.Aspect()))
		s.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			s.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameTime > 0 {
			if spent := time.Since(now); spent < frameTime {
				time.Sleep(frameTime - spent)
			}
		}
	}

	return nil
}

func (s *Saver) handle(action input.Action) error {
	switch action {
	case input.ActionQuit:
		s.running = false
	case input.ActionResize:
		width, height := s.window.GetSize()
		s.renderer.Resize(width, height)
	case input.ActionQualityLow:
		return s.builder.SetQuality(config.QualityLow)
	case input.ActionQualityMedium:
		return s.builder.SetQuality(config.QualityMedium)
	case input.ActionQualityHigh:
		return s.builder.SetQuality(config.QualityHigh)
	case input.ActionToggleGrid:
		visible := !s.renderer.Visible(sky.MeshGrid)
		s.renderer.SetVisible(sky.MeshGrid, visible)
		s.log.Debug("grid toggled", zap.Bool("visible", visible))
	}
	return nil
}

// Close cleans up all resources.
func (s *Saver) Close() {
	s.log.Info("closing")

	if s.renderer != nil {
		s.renderer.Close()
	}
	if s.window != nil {
		s.window.Close()
	}
}
