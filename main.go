package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-reference-pathtracer/pkg/renderer"
	"github.com/df07/go-reference-pathtracer/pkg/scene"
)

// fileConfig holds render settings loadable from a JSON file. Zero values
// leave the corresponding flag or default untouched.
type fileConfig struct {
	Scene           string  `json:"scene,omitempty"`
	Width           int     `json:"width,omitempty"`
	Height          int     `json:"height,omitempty"`
	SamplesPerPixel int     `json:"spp,omitempty"`
	MaxDepth        int     `json:"maxDepth,omitempty"`
	RRLimit         float64 `json:"rrLimit,omitempty"`
	Seed            int64   `json:"seed,omitempty"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: 'default' or 'cornell'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("spp", 100, "Samples per pixel")
	maxDepth := flag.Int("depth", 12, "Maximum ray bounce depth")
	rrLimit := flag.Float64("rr-limit", 0.25, "Russian roulette threshold in (0, 1]")
	seed := flag.Int64("seed", 42, "Base random seed")
	outputDir := flag.String("output", "output", "Output directory")
	configPath := flag.String("config", "", "Optional JSON config file overriding flags")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Reference Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output is saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	if *configPath != "" {
		cfg, err := loadFileConfig(*configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.Scene != "" {
			*sceneName = cfg.Scene
		}
		if cfg.Width > 0 {
			*width = cfg.Width
		}
		if cfg.Height > 0 {
			*height = cfg.Height
		}
		if cfg.SamplesPerPixel > 0 {
			*samples = cfg.SamplesPerPixel
		}
		if cfg.MaxDepth > 0 {
			*maxDepth = cfg.MaxDepth
		}
		if cfg.RRLimit > 0 {
			*rrLimit = cfg.RRLimit
		}
		if cfg.Seed != 0 {
			*seed = cfg.Seed
		}
	}

	selectedScene, ok := scene.ByName(*sceneName)
	if !ok {
		fmt.Printf("Unknown scene %q. Available scenes: %v\n", *sceneName, scene.Names())
		os.Exit(1)
	}

	config := renderer.SamplingConfig{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
		RRLimit:         *rrLimit,
		Seed:            *seed,
	}
	camera := renderer.NewCamera(selectedScene.CameraConfig, config.Width, config.Height)
	raytracer := renderer.NewRaytracer(selectedScene, camera, config, nil)

	fmt.Printf("Rendering %q at %dx%d, %d samples/pixel, depth %d...\n",
		*sceneName, *width, *height, *samples, *maxDepth)

	startTime := time.Now()
	img, stats := raytracer.RenderPass()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Pixels: %d, samples per pixel: %.1f\n", stats.TotalPixels, stats.AverageSamples)

	dir := filepath.Join(*outputDir, *sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
