// Command palettegen builds a color gradient and writes its palette.
//
// A sparse gradient is built from -keys, a dense one from -samples:
//
//	palettegen -keys "0:black,0.5:#ff0000,1:white" -size 16 -format hex
//	palettegen -samples "navy,teal,gold" -size 256 -format png -o ramp.png
//	palettegen -keys "0:blue,1:red" -format term
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gputypes"
	"golang.org/x/text/language"

	"github.com/gogpu/colormap"
	"github.com/gogpu/colormap/preview"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("palettegen: %v", err)
	}
}

// config holds the parsed command line.
type config struct {
	keys    string
	samples string
	size    int
	invert  bool
	format  string
	output  string
	width   int
	height  int
	lang    string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("palettegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.keys, "keys", "", "sparse gradient keys, e.g. \"0:black,1:white\"")
	fs.StringVar(&c.samples, "samples", "", "dense gradient samples, e.g. \"navy,teal,gold\"")
	fs.IntVar(&c.size, "size", 256, "palette entries")
	fs.BoolVar(&c.invert, "invert", false, "invert the gradient")
	fs.StringVar(&c.format, "format", "hex", "output format: hex, png, rgba, bgra or term")
	fs.StringVar(&c.output, "o", "", "output file (default stdout)")
	fs.IntVar(&c.width, "width", 512, "png width")
	fs.IntVar(&c.height, "height", 32, "png height")
	fs.StringVar(&c.lang, "lang", "en", "language of error messages (BCP 47)")
	fs.BoolVar(&c.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if (c.keys == "") == (c.samples == "") {
		return c, errors.New("exactly one of -keys and -samples is required")
	}
	return c, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		colormap.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	tag, err := language.Parse(cfg.lang)
	if err != nil {
		return fmt.Errorf("-lang: %w", err)
	}

	colors, err := buildPalette(cfg, colormap.WithLanguage(tag))
	if err != nil {
		return err
	}

	if cfg.format == "term" {
		return showTerminal(cfg, colors)
	}

	out := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writePalette(out, cfg, colors)
}

// buildPalette materializes the palette described by cfg.
func buildPalette(cfg config, opts ...colormap.Option) ([]colormap.Color, error) {
	if cfg.samples != "" {
		var samples [][3]float64
		for _, s := range strings.Split(cfg.samples, ",") {
			c, err := colormap.ParseColor(s)
			if err != nil {
				return nil, err
			}
			u := c.Unit()
			samples = append(samples, [3]float64{u.R, u.G, u.B})
		}
		g, err := colormap.NewDenseGradientTriples(samples, opts...)
		if err != nil {
			return nil, err
		}
		if cfg.invert {
			return g.PaletteInverse(cfg.size)
		}
		return g.Palette(cfg.size)
	}

	keys, err := colormap.ParseKeys(cfg.keys)
	if err != nil {
		return nil, err
	}
	g, err := colormap.NewSparseGradient(cfg.size, append(opts, colormap.WithInverted(cfg.invert))...)
	if err != nil {
		return nil, err
	}
	g.SetKeys(keys)
	return g.Palette().Colors(), nil
}

func writePalette(w io.Writer, cfg config, colors []colormap.Color) error {
	switch cfg.format {
	case "hex":
		bw := bufio.NewWriter(w)
		for _, c := range colors {
			fmt.Fprintln(bw, c)
		}
		return bw.Flush()
	case "png":
		img, err := colormap.Swatch(colors, cfg.width, cfg.height)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case "rgba", "bgra":
		format := gputypes.TextureFormatRGBA8Unorm
		if cfg.format == "bgra" {
			format = colormap.DefaultPixelFormat
		}
		b, err := colormap.EncodePixels(nil, colors, format)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
}

func showTerminal(cfg config, colors []colormap.Color) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	title := cfg.keys
	if title == "" {
		title = cfg.samples
	}
	preview.Show(screen, fmt.Sprintf("%s (%d entries, any key to exit)", title, len(colors)), colors)
	return nil
}
