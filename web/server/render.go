package server

import (
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-reference-pathtracer/pkg/renderer"
	"github.com/df07/go-reference-pathtracer/pkg/scene"
)

// renderRequest holds the parsed query parameters for one preview render
type renderRequest struct {
	Scene           string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// parseRenderRequest reads query parameters, applying preview-sized defaults
// and clamping the work to bounds a single request can serve
func parseRenderRequest(r *http.Request) renderRequest {
	req := renderRequest{
		Scene:           "default",
		Width:           400,
		Height:          400,
		SamplesPerPixel: 25,
		MaxDepth:        8,
	}

	query := r.URL.Query()
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	if v, err := strconv.Atoi(query.Get("width")); err == nil && v > 0 {
		req.Width = min(v, 1920)
	}
	if v, err := strconv.Atoi(query.Get("height")); err == nil && v > 0 {
		req.Height = min(v, 1080)
	}
	if v, err := strconv.Atoi(query.Get("spp")); err == nil && v > 0 {
		req.SamplesPerPixel = min(v, 500)
	}
	if v, err := strconv.Atoi(query.Get("depth")); err == nil && v > 0 {
		req.MaxDepth = min(v, 32)
	}
	return req
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req := parseRenderRequest(r)

	selectedScene, ok := scene.ByName(req.Scene)
	if !ok {
		http.Error(w, "unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	config := renderer.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		RRLimit:         0.25,
		Seed:            time.Now().UnixNano(),
	}
	camera := renderer.NewCamera(selectedScene.CameraConfig, config.Width, config.Height)
	rt := renderer.NewRaytracer(selectedScene, camera, config, log.Default())

	startTime := time.Now()
	img, stats := rt.RenderPass()
	log.Printf("rendered %s %dx%d (%d spp) in %v, %.1f samples/pixel",
		req.Scene, req.Width, req.Height, req.SamplesPerPixel,
		time.Since(startTime), stats.AverageSamples)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("encoding render: %v", err)
	}
}
