// Command islandgen generates an island, raises the water tick by tick and
// prints what is left of it.
//
//	islandgen -generator terrain -seed 7 -ticks 20
//	islandgen -config island.yaml -size 32 -color never
//
// Flags set on the command line override the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/katalvlaran/islandflood/gridgraph"
	"github.com/katalvlaran/islandflood/shade"
	"github.com/katalvlaran/islandflood/terrain"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "islandgen:", err)
		}
		cancel()
		os.Exit(1)
	}
}

// options holds everything that is not part of terrain.Config.
type options struct {
	configPath string
	water      float64
	ticks      int
	step       float64
	colorMode  string
	showMap    bool
	verbose    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := terrain.DefaultConfig()
	var opt options

	fs := flag.NewFlagSet("islandgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.configPath, "config", "", "YAML config file")
	fs.Var(&cfg.Generator, "generator", "height generator: mountain, random or terrain")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "last grid index (side is size+1)")
	fs.IntVar(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "peak height")
	fs.IntVar(&cfg.OceanDistance, "ocean-distance", cfg.OceanDistance, "coast distance from centre (mountain, random)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time-seeded")
	fs.Float64Var(&cfg.MinHeight, "min-height", cfg.MinHeight, "lowest height (terrain)")
	fs.Float64Var(&cfg.DescentProbability, "descent", cfg.DescentProbability, "chance a nudge goes down (terrain)")
	fs.Float64Var(&opt.water, "water", 0, "starting water level")
	fs.IntVar(&opt.ticks, "ticks", 16, "number of water rises")
	fs.Float64Var(&opt.step, "step", 1, "water rise per tick")
	fs.StringVar(&opt.colorMode, "color", "auto", "auto, always or never")
	fs.BoolVar(&opt.showMap, "map", true, "print the final map")
	fs.BoolVar(&opt.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	base := defaultsFor(cfg.Generator, cfg.Size, explicit["size"])
	if opt.configPath != "" {
		fromFile, err := terrain.LoadConfig(opt.configPath)
		if err != nil {
			return err
		}
		base = fromFile
		log.Debug("config loaded", "path", opt.configPath)
	}
	terrain.Merge(&cfg, base, explicit)

	if opt.ticks < 0 {
		return fmt.Errorf("ticks=%d (must be ≥ 0)", opt.ticks)
	}
	mode, err := renderMode(opt.colorMode, stdout)
	if err != nil {
		return err
	}

	t, err := terrain.Generate(cfg, terrain.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("island ready",
		"generator", cfg.Generator.String(),
		"width", t.Width(),
		"cells", t.Size(),
		"ocean", t.OceanCount(),
	)

	water := opt.water
	t.Flood(water)
	for tick := 1; tick <= opt.ticks; tick++ {
		water += opt.step
		n := t.Flood(water)
		log.Info("tick", "n", tick, "water", water, "newly_flooded", n, "flooded", t.FloodedCount())
	}

	if opt.showMap {
		if mode == shade.Blocks && tooNarrow(stdout, t.Width()) {
			log.Warn("terminal too narrow for colour blocks, falling back to glyphs")
			mode = shade.Glyphs
		}
		if err := shade.Render(stdout, t, water, mode); err != nil {
			return err
		}
	}

	return report(ctx, stdout, t, water)
}

// defaultsFor returns the generator defaults, rescaled to size when the size
// came from the command line rather than DefaultSize.
func defaultsFor(g terrain.Generator, size int, sizeSet bool) terrain.Config {
	base := terrain.DefaultConfigFor(g)
	if !sizeSet {
		return base
	}
	base.Size = size
	base.OceanDistance = max(size/2, 1)
	if g != terrain.Random {
		base.MaxHeight = max(size/2, 1)
	}
	return base
}

func renderMode(mode string, stdout io.Writer) (shade.Mode, error) {
	switch mode {
	case "always":
		color.ForceOpenColor()
		return shade.Blocks, nil
	case "never":
		return shade.Glyphs, nil
	case "auto":
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return shade.Blocks, nil
		}
		return shade.Glyphs, nil
	default:
		return shade.Glyphs, fmt.Errorf("color=%q (want auto, always or never)", mode)
	}
}

// tooNarrow reports whether stdout is a terminal narrower than two columns
// per cell. Non-terminals are never too narrow.
func tooNarrow(stdout io.Writer, cells int) bool {
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return false
	}
	return width < 2*cells
}

// report prints what the player still has to work with: dry islands, the
// enclosed basins, and whether the centre can still walk to the peak.
func report(ctx context.Context, w io.Writer, t *terrain.Terrain, water float64) error {
	gg := gridgraph.FromTerrain(t, gridgraph.DefaultGridOptions())
	islands, err := gg.ConnectedComponents()
	if err != nil {
		return err
	}
	basins, err := gg.Basins(water)
	if err != nil {
		return err
	}
	largest := 0
	for _, isl := range islands {
		largest = max(largest, len(isl))
	}

	peak, peakHeight := -1, 0.0
	for i, c := range t.All() {
		if !c.Flooded && (peak < 0 || c.Height > peakHeight) {
			peak, peakHeight = i, c.Height
		}
	}
	centre, err := t.Index(t.Width()/2, t.Height()/2)
	if err != nil {
		return err
	}
	escape := "cut off"
	if peak >= 0 {
		if route, err := gg.EscapeRouteContext(ctx, centre, peak); err == nil {
			escape = fmt.Sprintf("%d steps", len(route)-1)
		} else if !errors.Is(err, gridgraph.ErrNoPath) {
			return err
		}
	}

	_, err = fmt.Fprintf(w,
		"water: %g\nflooded: %d/%d\nislands: %d (largest %d)\nbasins: %d\ncentre to peak: %s\n",
		water, t.FloodedCount(), t.Size(), len(islands), largest, len(basins), escape)
	return err
}
