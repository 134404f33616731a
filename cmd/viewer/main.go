// Command viewer opens an interactive window on a rendered scene. Lights
// can be selected, toggled and moved from the keyboard; each change kicks
// off an asynchronous re-render that is blitted when complete.
//
// Controls:
//
//	a/b    select previous/next light
//	o      toggle the selected light
//	x/y/z  move the selected light along an axis (shift reverses)
//	j/k/l  nudge a spotlight's direction (shift reverses)
//	0-4    set the recursion depth
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/lights"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/renderer"
	"github.com/JacksonGuy/go-whitted-raytracer/pkg/scene"
)

const lightStep = 1.0
const spotDirStep = 0.1

// lightHandle pairs a light with the concrete types the keyboard controls
// need to mutate it
type lightHandle struct {
	pos  *lights.PositionalLight
	spot *lights.SpotLight // nil for plain positional lights
}

type viewerGame struct {
	sc        *scene.Scene
	raytracer *renderer.Raytracer
	pool      *renderer.WorkerPool
	width     int
	height    int

	handles  []lightHandle
	selected int

	// edits holds queued scene and depth mutations. Render workers read
	// the scene and raytracer concurrently, so edits apply only between
	// frames; the scene stays read-only while a frame is in flight.
	edits []func()

	dirty     bool
	rendering bool
	frames    chan *image.RGBA

	img   *image.RGBA
	fbImg *ebiten.Image
}

func newViewerGame(sc *scene.Scene, raytracer *renderer.Raytracer, width, height int) *viewerGame {
	g := &viewerGame{
		sc:        sc,
		raytracer: raytracer,
		pool:      renderer.NewWorkerPool(raytracer, 0),
		width:     width,
		height:    height,
		dirty:     true,
		frames:    make(chan *image.RGBA, 1),
	}

	for _, light := range sc.GetLights() {
		switch l := light.(type) {
		case *lights.SpotLight:
			g.handles = append(g.handles, lightHandle{pos: &l.PositionalLight, spot: l})
		case *lights.PositionalLight:
			g.handles = append(g.handles, lightHandle{pos: l})
		}
	}
	return g
}

func (g *viewerGame) Update() error {
	g.handleInput()

	select {
	case img := <-g.frames:
		g.img = img
		g.rendering = false
	default:
	}

	g.applyPendingEdits()

	if g.dirty && !g.rendering {
		g.dirty = false
		g.rendering = true
		go g.renderFrame()
	}
	return nil
}

// queueEdit defers a scene or depth mutation until no frame is in flight
func (g *viewerGame) queueEdit(edit func()) {
	g.edits = append(g.edits, edit)
}

// applyPendingEdits runs queued mutations once the render goroutine has
// finished, then schedules a re-render
func (g *viewerGame) applyPendingEdits() {
	if g.rendering || len(g.edits) == 0 {
		return
	}
	for _, edit := range g.edits {
		edit()
	}
	g.edits = g.edits[:0]
	g.dirty = true
}

func (g *viewerGame) handleInput() {
	if len(g.handles) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyA) {
			g.selected = (g.selected + len(g.handles) - 1) % len(g.handles)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyB) {
			g.selected = (g.selected + 1) % len(g.handles)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyO) {
			light := g.handles[g.selected].pos
			g.queueEdit(func() { light.On = !light.On })
		}
		g.handleLightMovement()
	}

	for i, key := range []ebiten.Key{ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			depth := i
			g.queueEdit(func() { g.raytracer.SetMaxDepth(depth) })
		}
	}
}

func (g *viewerGame) handleLightMovement() {
	step := lightStep
	dirStep := spotDirStep
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		step = -step
		dirStep = -dirStep
	}

	handle := g.handles[g.selected]
	moves := []struct {
		key  ebiten.Key
		axis core.Vec3
	}{
		{ebiten.KeyX, core.NewVec3(1, 0, 0)},
		{ebiten.KeyY, core.NewVec3(0, 1, 0)},
		{ebiten.KeyZ, core.NewVec3(0, 0, 1)},
	}
	for _, m := range moves {
		if inpututil.IsKeyJustPressed(m.key) {
			delta := m.axis.Multiply(step)
			g.queueEdit(func() { handle.pos.Pos = handle.pos.Pos.Add(delta) })
		}
	}

	if handle.spot == nil {
		return
	}
	nudges := []struct {
		key  ebiten.Key
		axis core.Vec3
	}{
		{ebiten.KeyJ, core.NewVec3(1, 0, 0)},
		{ebiten.KeyK, core.NewVec3(0, 1, 0)},
		{ebiten.KeyL, core.NewVec3(0, 0, 1)},
	}
	for _, n := range nudges {
		if inpututil.IsKeyJustPressed(n.key) {
			delta := n.axis.Multiply(dirStep)
			g.queueEdit(func() {
				dir := handle.spot.Dir.Add(delta)
				handle.spot.SetDir(dir.X, dir.Y, dir.Z)
			})
		}
	}
}

func (g *viewerGame) renderFrame() {
	fb := renderer.NewFramebuffer(g.width, g.height, core.NewVec3(0.2, 0.2, 0.3))
	g.pool.Render(fb, g.sc)
	g.frames <- fb.ToImage()
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	sceneName := flag.String("scene", "default", fmt.Sprintf("Scene to render: %s", strings.Join(scene.Names(), ", ")))
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 360, "Image height in pixels")
	depth := flag.Int("depth", 3, "Initial recursion depth")
	flag.Parse()

	sc, ok := scene.Build(*sceneName, *width, *height)
	if !ok {
		fmt.Printf("Unknown scene %q. Available scenes: %s\n", *sceneName, strings.Join(scene.Names(), ", "))
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(core.NewVec3(0.2, 0.2, 0.3), *depth)
	game := newViewerGame(sc, raytracer, *width, *height)

	ebiten.SetWindowTitle("Whitted Raytracer")
	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Viewer exited with error: %v", err)
	}
}
