package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// RenderConfig contains the sampling configuration for one render
type RenderConfig struct {
	SamplesPerPixel int   // Total rays per pixel across all workers
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Worker goroutines; 0 means one per CPU
	Seed            int64 // Base seed; worker i uses Seed+i
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel: 200,
		MaxDepth:        20,
		NumWorkers:      runtime.NumCPU(),
		Seed:            42,
	}
}

// Render estimates the image by partitioning the sample budget across
// workers. Each worker accumulates radiance into its own full-resolution
// buffer with its own integrator and generator; the scene is shared
// read-only, so no locks are needed. Buffers are reduced after the join
// barrier and tone-mapped into the returned screen.
func Render(scene Scene, config RenderConfig) *Screen {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}

	camera := scene.GetCamera()
	width := camera.Config().Width
	height := camera.Config().Height

	sampleCounts := splitSamples(config.SamplesPerPixel, config.NumWorkers)
	partials := make([][]core.Vec3, len(sampleCounts))

	var wg sync.WaitGroup
	for worker, samples := range sampleCounts {
		wg.Add(1)
		go func(worker, samples int) {
			defer wg.Done()

			random := rand.New(rand.NewSource(config.Seed + int64(worker)))
			raytracer := NewRaytracer(scene, random)
			accum := make([]core.Vec3, width*height)

			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					i := y*width + x
					for s := 0; s < samples; s++ {
						ray := camera.GetRay(x, y, random)
						accum[i] = accum[i].Add(raytracer.RayColor(ray, config.MaxDepth))
					}
				}
			}

			partials[worker] = accum
		}(worker, samples)
	}
	wg.Wait()

	// Sum the partial buffers; the order is irrelevant up to floating-point
	// association
	sum := make([]core.Vec3, width*height)
	for _, accum := range partials {
		for i, c := range accum {
			sum[i] = sum[i].Add(c)
		}
	}

	screen := NewScreen(width, height)
	scale := 1.0 / float64(config.SamplesPerPixel)
	for i, c := range sum {
		color := linearToGamma(c.Multiply(scale))
		screen.Pixels[i] = RGB{
			R: quantize(color.X),
			G: quantize(color.Y),
			B: quantize(color.Z),
		}
	}
	return screen
}

// splitSamples partitions total samples across workers as evenly as
// possible; the first total%workers workers take one extra, so the counts
// always sum to exactly total
func splitSamples(total, workers int) []int {
	counts := make([]int, workers)
	base := total / workers
	extra := total % workers
	for i := range counts {
		counts[i] = base
		if i < extra {
			counts[i]++
		}
	}
	return counts
}

// linearToGamma converts linear radiance to gamma 2 display space.
// Radiance is never negative, but the guard keeps sqrt defined anyway.
func linearToGamma(color core.Vec3) core.Vec3 {
	return core.NewVec3(
		sqrtOrZero(color.X),
		sqrtOrZero(color.Y),
		sqrtOrZero(color.Z),
	)
}

func sqrtOrZero(v float64) float64 {
	if v > 0 {
		return math.Sqrt(v)
	}
	return 0
}

// quantize maps a [0,1] channel to 8 bits, saturating above 1
func quantize(v float64) uint8 {
	q := int(v * 255.99)
	if q > 255 {
		q = 255
	}
	return uint8(q)
}
