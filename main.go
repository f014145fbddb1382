package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"hello-gl/gldevice"
	"hello-gl/render"
	"hello-gl/shaders"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()
}

func main() {
	app := &HelloGLApp{
		width:  windowWidth,
		height: windowHeight,
	}
	if err := app.Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}

// HelloGLApp draws animated metaballs on a full window quad.
type HelloGLApp struct {
	width  int
	height int

	window *glfw.Window
	device *gldevice.Device

	// resources is loaded once by loadResources and never released; the GL
	// context owns it until the process exits.
	resources *render.Resources
	renderer  *render.Renderer
}

// Run opens the window and draws until it is closed.
func (h *HelloGLApp) Run() error {
	if err := h.initWindow(); err != nil {
		return fmt.Errorf("initWindow: %w", err)
	}
	defer h.cleanWindow()

	if err := h.initGL(); err != nil {
		return fmt.Errorf("initGL: %w", err)
	}

	if err := h.loadResources(); err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}

	h.window.Show()
	h.mainLoop()
	return nil
}

func (h *HelloGLApp) initWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)

	// Shown by Run once resources are loaded.
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(h.width, h.height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()

	h.window = window
	return nil
}

func (h *HelloGLApp) cleanWindow() {
	h.window.Destroy()
	glfw.Terminate()
}

func (h *HelloGLApp) initGL() error {
	device, err := gldevice.New()
	if err != nil {
		return err
	}

	if err := render.RequireVersion(device.Version()); err != nil {
		return err
	}

	h.device = device
	return nil
}

func (h *HelloGLApp) loadResources() error {
	resources, err := render.LoadResources(h.device, shaders.FS)
	if err != nil {
		return err
	}

	h.resources = resources
	h.renderer = render.NewRenderer(h.device, resources, h.window)
	return nil
}

func (h *HelloGLApp) mainLoop() {
	log.Printf("main loop!\n")

	for !h.window.ShouldClose() {
		h.idle()
		h.display()

		glfw.PollEvents()
	}
}

// idle records the time elapsed since glfw.Init and asks for a redraw.
func (h *HelloGLApp) idle() {
	elapsed := time.Duration(glfw.GetTime() * float64(time.Second))
	h.renderer.Advance(elapsed)
}

func (h *HelloGLApp) display() {
	if h.renderer.RedrawRequested() {
		h.renderer.RenderFrame()
	}
}

const (
	title        = "Hello World"
	windowWidth  = 600
	windowHeight = 600
)
