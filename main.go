package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/renderer"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/scene"
)

// renderScene builds the named scene and renders it to a framebuffer
func renderScene(sceneName string, width, height, depth, workers int) (*renderer.Framebuffer, error) {
	selectedScene, ok := scene.Build(sceneName, width, height)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, available scenes: %s", sceneName, strings.Join(scene.Names(), ", "))
	}

	clearColor := core.NewVec3(0.2, 0.2, 0.3)
	raytracer := renderer.NewRaytracer(clearColor, depth)
	fb := renderer.NewFramebuffer(width, height, clearColor)
	renderer.NewWorkerPool(raytracer, workers).Render(fb, selectedScene)
	return fb, nil
}

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", fmt.Sprintf("Scene to render: %s", strings.Join(scene.Names(), ", ")))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	depth := flag.Int("depth", 3, "Maximum recursion depth for reflection and refraction")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Checkered sphere, copper cylinders and a glass disk")
		fmt.Println("  gallery - One of every primitive on a plastic ground plane")
		return
	}

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	fmt.Printf("Rendering %q at %dx%d, depth %d...\n", *sceneName, *width, *height, *depth)

	startTime := time.Now()
	fb, err := renderScene(*sceneName, *width, *height, *depth, *workers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
