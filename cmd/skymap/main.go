// skymap is a CLI utility for inspecting the sky scene without a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/skysaver/internal/config"
	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/internal/logger"
	"github.com/Faultbox/skysaver/internal/sky"
	"github.com/Faultbox/skysaver/internal/skymap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "stats":
		cmdStats(args)
	case "check":
		cmdCheck(args)
	case "svg":
		cmdSVG(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`skymap - sky scene inspection utility

Usage:
  skymap <command> [options]

Commands:
  stats [quality]                Show mesh sizes for a quality level
  check [file.yaml]              Validate a constellation catalogue
  svg <out.svg> [quality]        Write an equirectangular sky chart
  config [out.yaml]              Write the default screensaver config

Options:
  -constellations <file.yaml>    Use this catalogue instead of the built-in one
  -stagger, -stitch              Globe tessellation flags (stats)
  -width <px>                    Chart width (svg)
  -force                         Overwrite an existing file (config)

Examples:
  skymap stats high
  skymap check my-sky.yaml
  skymap svg -width 2400 sky.svg medium
  skymap config ./skysaver.yaml`)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	catalogPath := fs.String("constellations", "", "Constellation catalogue (YAML)")
	stagger := fs.Bool("stagger", false, "Stagger the globe")
	stitch := fs.Bool("stitch", true, "Stitch the globe seam")
	fs.Parse(args)

	opts := sceneOptions(*catalogPath, fs.Arg(0))
	opts.Stagger = *stagger
	opts.Stitch = *stitch

	scene := buildScene(opts)
	st := scene.Stats()

	fmt.Printf("Quality:  %s\n", st.Quality)
	fmt.Printf("Detail:   grid %dx%d, globe %dx%d, ecliptic %d\n",
		scene.Detail.GridSlices, scene.Detail.GridStacks,
		scene.Detail.GlobeSlices, scene.Detail.GlobeStacks,
		scene.Detail.EclipticSegments)
	fmt.Println()
	fmt.Printf("  %-16s %10s %10s %8s\n", "mesh", "vertices", "indices", "batches")
	for _, m := range st.Meshes {
		fmt.Printf("  %-16s %10d %10d %8d\n", m.Name, m.Vertices, m.Indices, m.Batches)
	}
	fmt.Printf("  %-16s %10d %10d\n", "total", st.Vertices, st.Indices)
	fmt.Printf("\nGPU memory: %.1f KB\n",
		float64(st.Vertices*geometry.VertexStride+st.Indices*geometry.IndexSize)/1024)
	if st.Warnings > 0 {
		fmt.Printf("Warnings:   %d (run 'skymap check')\n", st.Warnings)
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Parse(args)

	// Warnings are logged as they are found
	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat := loadCatalog(fs.Arg(0))
	lg := geometry.BuildLinkGraph(cat.Groups(), 1)

	links := 0
	for _, c := range cat.Constellations {
		links += len(c.Links)
	}
	fmt.Printf("Constellations: %d\n", len(cat.Constellations))
	fmt.Printf("Stars:          %d\n", cat.StarCount())
	fmt.Printf("Links:          %d (%d drawn)\n", links, len(lg.Indices)/2)

	if len(lg.Warnings) == 0 {
		fmt.Println("\nOK")
		return
	}

	fmt.Printf("\n%d warnings:\n", len(lg.Warnings))
	for _, w := range lg.Warnings {
		if w.Reason == geometry.ReasonEmptyGroup {
			fmt.Printf("  %-16s %s\n", w.Group, w.Reason)
			continue
		}
		fmt.Printf("  %-16s link (%d, %d): %s\n", w.Group, w.Link.A, w.Link.B, w.Reason)
	}
	os.Exit(2)
}

func cmdSVG(args []string) {
	fs := flag.NewFlagSet("svg", flag.ExitOnError)
	catalogPath := fs.String("constellations", "", "Constellation catalogue (YAML)")
	width := fs.Int("width", 1600, "Chart width in pixels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: skymap svg <out.svg> [quality]")
		os.Exit(1)
	}

	opts := sceneOptions(*catalogPath, fs.Arg(1))
	opts.ShowGlobe = false
	scene := buildScene(opts)

	out, err := os.Create(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := skymap.Render(out, scene, *width); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", fs.Arg(0), *width, *width/2)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	path := fs.Arg(0)
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use -force to overwrite)\n", path)
		os.Exit(1)
	}

	cfg := config.Default()
	var err error
	if fs.Arg(0) == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
}

// sceneOptions starts from the default scene settings.
func sceneOptions(catalogPath, quality string) sky.Options {
	scene := config.Default().Scene
	if quality != "" {
		q, err := config.ParseQuality(quality)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scene.Quality = q
	}
	return sky.OptionsFromConfig(scene, loadCatalog(catalogPath))
}

func buildScene(opts sky.Options) *sky.Scene {
	scene, err := sky.Build(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return scene
}

func loadCatalog(path string) *sky.Catalog {
	var (
		cat *sky.Catalog
		err error
	)
	if path == "" {
		cat, err = sky.DefaultCatalog()
	} else {
		cat, err = sky.LoadCatalog(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cat
}
