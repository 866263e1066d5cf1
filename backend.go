package main

import (
	"fmt"
	"log/slog"

	"cubescene/config"
	"cubescene/rendering"
	"cubescene/rendering/opengl"
	"cubescene/rendering/raylib"
)

// backend is what main needs beyond rendering.Renderer
type backend interface {
	rendering.Renderer
	SetInputHandler(h rendering.InputHandler)
	WindowSize() (int, int)
}

func openBackend(s config.Settings, log *slog.Logger) (backend, error) {
	w := s.Window
	log = log.With("component", "renderer", "backend", w.Backend)

	switch w.Backend {
	case config.BackendOpenGL:
		return opengl.New(opengl.Options{
			Width:   w.Width,
			Height:  w.Height,
			Title:   w.Title,
			VSync:   w.VSync,
			Samples: w.Samples,
		}, log)
	case config.BackendRaylib:
		return raylib.New(raylib.Options{
			Width:   w.Width,
			Height:  w.Height,
			Title:   w.Title,
			VSync:   w.VSync,
			Samples: w.Samples,
		}, log)
	}
	return nil, fmt.Errorf("unknown backend: %s", w.Backend)
}
