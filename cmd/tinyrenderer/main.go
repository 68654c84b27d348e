// tinyrenderer - software wireframe renderer
// Draws OBJ and GLB meshes as wireframes with a Bresenham line rasterizer,
// to an image file, the terminal or a desktop window.
//
// Terminal controls:
//
//	W/S or Up/Down     - Pitch
//	A/D or Left/Right  - Yaw
//	Q/E                - Roll
//	Space              - Random spin
//	R                  - Reset rotation
//	Esc                - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bstahlhood/tinyrenderer/pkg/config"
	"github.com/bstahlhood/tinyrenderer/pkg/models"
	"github.com/bstahlhood/tinyrenderer/pkg/render"
	"github.com/bstahlhood/tinyrenderer/pkg/window"
)

var (
	configPath = flag.String("config", "", "Path to JSON config file")
	outputPath = flag.String("o", "", "Output image (.png, .tga or .webp)")
	width      = flag.Int("width", 0, "Logical width (default 1024)")
	height     = flag.Int("height", 0, "Logical height (default 768)")
	scale      = flag.Int("scale", 0, "Integer device pixel scale for headless output (default 1)")
	lineColor  = flag.String("color", "", "Wireframe color (R,G,B)")
	bgColor    = flag.String("bg", "", "Background color (R,G,B)")
	viewMode   = flag.String("view", "none", "Presenter: none, terminal or window")
	targetFPS  = flag.Int("fps", 0, "Target FPS for viewers (default 60)")
	showLabel  = flag.Bool("caption", false, "Draw mesh name and triangle count")
	downsample = flag.Bool("downsample", false, "Reduce scaled output to logical size")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tinyrenderer - Software wireframe renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tinyrenderer [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model the line test pattern is drawn.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nTerminal controls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	cfg.Resolve(config.Flags{
		Width:      *width,
		Height:     *height,
		Scale:      *scale,
		Color:      *lineColor,
		Background: *bgColor,
		Output:     *outputPath,
		Downsample: *downsample,
		Caption:    *showLabel,
		FPS:        *targetFPS,
		LogLevel:   *logLevel,
	})
	return cfg, cfg.Validate()
}

// newLogger writes text logs to stderr and routes render package logs
// through the same handler.
func newLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)
	return logger
}

// fitMesh scales mesh into model space for a presenter. The terminal viewer
// rotates the mesh, so it is fitted by radius; static views fill the
// viewport with the bounding box.
func fitMesh(mesh *models.Mesh, view string) {
	if view == "terminal" {
		mesh.NormalizeRadius()
		return
	}
	mesh.Normalize()
}

func run(modelPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := newLogger(level)

	fg, _ := cfg.OutlineColor()
	bg, _ := cfg.BackgroundColor()
	sc := render.Scene{Color: fg, Background: bg}

	view := strings.ToLower(*viewMode)

	var mesh *models.Mesh
	name := "line test"
	if modelPath != "" {
		mesh, err = models.Load(modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		fitMesh(mesh, view)
		name = filepath.Base(modelPath)
		sc.Mesh = mesh
		logger.Info("loaded model",
			"file", name,
			"vertices", mesh.VertexCount(),
			"triangles", mesh.TriangleCount(),
		)
	}
	if cfg.Caption {
		sc.Caption = caption(name, sc.Mesh)
	}

	// Context for clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch view {
	case "none", "":
		img, err := renderImage(ctx, cfg, sc)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := render.SaveImage(cfg.Output, img); err != nil {
			return err
		}
		logger.Info("wrote image", "path", cfg.Output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		return nil

	case "terminal":
		return runTerminal(ctx, cfg, mesh, sc)

	case "window":
		return window.Run(ctx, window.Options{
			Title:  "Tiny Renderer",
			Width:  cfg.Width,
			Height: cfg.Height,
			FPS:    cfg.FPS,
			Scene:  sc,
		})

	default:
		return fmt.Errorf("unknown view %q (use none, terminal or window)", *viewMode)
	}
}
