// Command cpurt renders a demo scene with the cpurt path tracer and
// writes the result to a timestamped PNG file.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ciekce/cpurt/camera"
	"github.com/ciekce/cpurt/cmd/cpurt/scenes"
	"github.com/ciekce/cpurt/config"
	"github.com/ciekce/cpurt/imgbuf"
	"github.com/ciekce/cpurt/internal/errs"
	"github.com/ciekce/cpurt/render"
	"github.com/ciekce/cpurt/scene"
	"github.com/ciekce/cpurt/vec"
)

var (
	configPath string
	sceneName  string
	fieldSeed  uint32
	outPath    string
)

var rootCmd = &cobra.Command{
	Use:   "cpurt",
	Short: "cpurt is a CPU Monte-Carlo path tracer",
	Long:  "cpurt renders a sphere scene with a tile-parallel path tracer and writes the result to a PNG file.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file overlaying the defaults")
	rootCmd.Flags().StringVar(&sceneName, "scene", "hero", "demo scene to render: hero or field")
	rootCmd.Flags().Uint32Var(&fieldSeed, "seed", 0x696969, "rng seed for the field scene")
	rootCmd.Flags().StringVar(&outPath, "out", "", "output PNG path (default: a timestamped filename)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	s := scene.New()
	cam := camera.New(cfg.Width, cfg.Height, 20.0, 0.1, 10.0)
	cam.Pos = vec.V3(13.0, 2.0, 3.0)
	cam.Target = vec.V3(0.0, 0.0, 0.0)

	switch sceneName {
	case "hero":
		target := scenes.BuildHero(s)
		cam.FovY = 90.0
		cam.Aperture = 0.001
		cam.FocalLength = 1.0
		cam.Pos = vec.V3(0.0, 0.0, 2.0)
		cam.Target = target
	case "field":
		scenes.BuildField(s, fieldSeed)
	default:
		return fmt.Errorf("unknown scene %q (want hero or field)", sceneName)
	}

	if err := errs.Log(s.BuildBVH()); err != nil {
		return err
	}

	cam.Update()

	buf := imgbuf.New(cfg.Width, cfg.Height)

	r := render.NewRenderer(s, cfg)
	defer r.Close()

	slog.Info("rendering", "scene", sceneName, "width", cfg.Width, "height", cfg.Height, "samples", cfg.Samples)
	r.Render(cam, buf)

	path := outPath
	if path == "" {
		path = time.Now().Format("2006-01-02_15.04.05") + ".png"
	}

	return writePNG(path, buf)
}

func writePNG(path string, buf *imgbuf.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, buf.ToRGBA()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	slog.Info("wrote output", "path", path)
	return nil
}
