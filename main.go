package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Ofir7909/go-raytracer/pkg/renderer"
	"github.com/Ofir7909/go-raytracer/pkg/scene"
)

func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(width, height), nil
	case "final":
		return scene.NewFinalScene(width, height), nil
	case "quads":
		return scene.NewQuadsScene(width, height), nil
	case "lights":
		return scene.NewLightsScene(width, height), nil
	case "cornell":
		return scene.NewCornellScene(width, height), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'final', 'quads', 'lights' or 'cornell'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 picks a scene-appropriate default)")
	samples := flag.Int("samples", 200, "Samples per pixel")
	depth := flag.Int("depth", 20, "Maximum ray bounce depth")
	threads := flag.Int("threads", 0, "Worker goroutines (0 uses one per CPU)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("o", "render.ppm", "Output PPM file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres with a hollow glass sphere and sky gradient")
		fmt.Println("  final   - Hundreds of random spheres on a checkered ground")
		fmt.Println("  quads   - Five colored quads facing the camera")
		fmt.Println("  lights  - Dark scene lit by a single quad light")
		fmt.Println("  cornell - Cornell box with quad walls and area lighting")
		return
	}

	// Square aspect ratio for the Cornell box, 16:9 otherwise
	if *height <= 0 {
		if *sceneType == "cornell" {
			*height = *width
		} else {
			*height = *width * 9 / 16
		}
	}

	fmt.Printf("Rendering '%s' scene at %dx%d with %d samples...\n", *sceneType, *width, *height, *samples)

	selectedScene, err := createScene(*sceneType, *width, *height)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	selectedScene.Preprocess()

	config := renderer.RenderConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *threads,
		Seed:            *seed,
	}

	startTime := time.Now()
	screen := renderer.Render(selectedScene, config)
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := screen.WritePPM(file); err != nil {
		fmt.Printf("Error saving PPM: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
