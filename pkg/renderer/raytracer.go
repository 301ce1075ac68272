package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/df07/go-reference-pathtracer/pkg/core"
	"github.com/df07/go-reference-pathtracer/pkg/tracer"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	RRLimit         float64 // Russian roulette threshold in (0, 1]
	Seed            int64   // Base seed for per-tile generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        12,
		RRLimit:         0.25,
		Seed:            42,
	}
}

// Raytracer renders a scene through a camera. It holds no mutable state of
// its own during rendering; all per-ray state lives in the worker that
// traces it, so tiles can render concurrently.
type Raytracer struct {
	scene  tracer.Scene
	camera *Camera
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene tracer.Scene, camera *Camera, config SamplingConfig, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// TracePixel traces a single jittered sample through pixel (x, y) and
// returns its radiance. Pure apart from the sampler: rays share only the
// read-only scene, so callers may dispatch pixels across goroutines freely.
func (rt *Raytracer) TracePixel(x, y int, sampler core.Sampler) core.Vec3 {
	s := (float64(x) + sampler.Get1D()) / float64(rt.config.Width)
	t := (float64(y) + sampler.Get1D()) / float64(rt.config.Height)

	origin, direction := rt.camera.GetRay(s, t)
	ray := tracer.NewRay(rt.scene, origin, direction, tracer.Config{
		MaxDepth: rt.config.MaxDepth,
		RRLimit:  rt.config.RRLimit,
	}, sampler)

	ray.TraceToNextIntersection()
	return ray.Trace()
}

// RenderBounds renders the pixels inside bounds into the shared stats
// array. Tiles have non-overlapping bounds, so concurrent calls are safe.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand) RenderStats {
	sampler := core.NewRandomSampler(random)

	stats := RenderStats{}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				pixelStats[y][x].AddSample(rt.TracePixel(x, y, sampler))
			}
			stats.TotalPixels++
			stats.TotalSamples += rt.config.SamplesPerPixel
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// RenderPass renders the full image across a worker pool and returns it
// with aggregate statistics
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	pool := NewWorkerPool(rt, 0)
	pool.Start()

	tiles := SplitIntoTiles(width, height, defaultTileSize, rt.config.Seed)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			TaskID:     i,
			Bounds:     tile.Bounds,
			Random:     tile.Random,
			PixelStats: pixelStats,
		})
	}
	pool.Stop()

	stats := RenderStats{}
	for result := range pool.Results() {
		stats.Merge(result.Stats)
	}

	if rt.logger != nil {
		rt.logger.Printf("rendered %d pixels, %.1f samples/pixel average",
			stats.TotalPixels, stats.AverageSamples)
	}

	return rt.assembleImage(pixelStats), stats
}

// assembleImage converts accumulated pixel stats into an image, flipping
// vertically so image row 0 is the top of the viewport
func (rt *Raytracer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, height-1-y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
