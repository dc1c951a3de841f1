// Command smaa antialiases images with SMAA from the command line.
//
// Usage:
//
//	smaa apply [options] <input>...   Antialias images
//	smaa pattern [options]            Write an aliased test image
//	smaa searchtex [options]          Write the generated search table
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/smaa"
	"github.com/gogpu/smaa/imageio"
	"github.com/gogpu/smaa/internal/testpattern"
	"github.com/gogpu/smaa/tables"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("smaa: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "apply":
		err = runApply(os.Args[2:])
	case "pattern":
		err = runPattern(os.Args[2:])
	case "searchtex":
		err = runSearchtex(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "smaa: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  smaa apply [options] <input>...   Antialias PNG/JPEG/BMP/TIFF images
  smaa pattern [options]            Write an aliased test image
  smaa searchtex [options]          Write the generated search table

Run "smaa <command> -h" for command-specific options.
`)
}

// --- apply ---

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	areaPath := fs.String("area", "", "area table: PNG image or raw 160x560x2 bytes (required)")
	searchPath := fs.String("search", "", "search table: PNG image or raw 64x16 bytes (default: generated)")
	preset := fs.String("preset", "high", "quality preset: low/medium/high/ultra")
	threshold := fs.Float64("threshold", 0, "edge threshold in (0, 1] (0=use preset)")
	workers := fs.Int("workers", 0, "worker goroutines per image (0=GOMAXPROCS)")
	jobs := fs.Int("j", 2, "images processed at once")
	step := fs.String("step", "blend", "stop after phase: edges/weights/blend")
	output := fs.String("o", "", "output path, single input only (default: <input>_smaa.<ext>)")
	verbose := fs.Bool("v", false, "log pipeline phases to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("apply: missing input file\nUsage: smaa apply [options] <input>...")
	}
	if *output != "" && fs.NArg() > 1 {
		return errors.New("apply: -o requires a single input")
	}
	if *jobs < 1 {
		return fmt.Errorf("apply: -j must be at least 1, got %d", *jobs)
	}

	p, err := smaa.ParsePreset(*preset)
	if err != nil {
		return err
	}
	until, err := smaa.ParseStep(*step)
	if err != nil {
		return err
	}

	area, err := loadArea(*areaPath)
	if err != nil {
		return err
	}
	search, err := loadSearch(*searchPath)
	if err != nil {
		return err
	}

	if *verbose {
		smaa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []smaa.Option{smaa.WithPreset(p), smaa.WithWorkers(*workers)}
	if *threshold != 0 {
		opts = append(opts, smaa.WithThreshold(float32(*threshold)))
	}
	aa, err := smaa.New(area, search, opts...)
	if err != nil {
		return err
	}
	defer aa.Close()

	start := time.Now()
	var pixels atomic.Int64

	var g errgroup.Group
	g.SetLimit(*jobs)
	for _, in := range fs.Args() {
		out := *output
		if out == "" {
			out = outputPath(in)
		}
		g.Go(func() error {
			n, err := applyFile(aa, in, out, until)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			pixels.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	pr := message.NewPrinter(language.English)
	pr.Fprintf(os.Stderr, "smaa: %d image(s), %d pixels in %v\n",
		fs.NArg(), pixels.Load(), time.Since(start).Round(time.Millisecond))
	return nil
}

// applyFile antialiases the image at in and writes it to out. It returns the
// number of pixels processed.
func applyFile(aa *smaa.Antialiaser, in, out string, until smaa.Step) (int, error) {
	img, err := imageio.Load(in)
	if err != nil {
		return 0, err
	}

	var result image.Image
	if until == smaa.StepBlend {
		result = aa.ApplyImage(img)
	} else {
		result = imageio.FloatToImage(aa.Run(imageio.ToBuffer(img), until))
	}

	if err := imageio.Save(out, result); err != nil {
		return 0, err
	}
	b := img.Bounds()
	return b.Dx() * b.Dy(), nil
}

// outputPath returns the default output path for in: the same directory and
// extension with "_smaa" appended to the base name.
func outputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_smaa" + ext
}

func loadArea(path string) (*tables.Area, error) {
	if path == "" {
		return nil, errors.New("apply: -area is required")
	}
	if isPNG(path) {
		img, err := imageio.Load(path)
		if err != nil {
			return nil, err
		}
		return tables.AreaFromImage(img)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tables.ReadArea(f)
}

func loadSearch(path string) (*tables.Search, error) {
	if path == "" {
		return tables.GenerateSearch(), nil
	}
	if isPNG(path) {
		img, err := imageio.Load(path)
		if err != nil {
			return nil, err
		}
		return tables.SearchFromImage(img)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tables.ReadSearch(f)
}

func isPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// --- pattern ---

func runPattern(args []string) error {
	fs := flag.NewFlagSet("pattern", flag.ContinueOnError)
	width := fs.Int("width", 320, "image width")
	height := fs.Int("height", 200, "image height")
	output := fs.String("o", "pattern.png", "output file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("pattern: invalid size %dx%d", *width, *height)
	}

	if err := imageio.Save(*output, testpattern.Scene(*width, *height)); err != nil {
		return err
	}
	log.Printf("pattern saved to %s (%dx%d)", *output, *width, *height)
	return nil
}

// --- searchtex ---

func runSearchtex(args []string) error {
	fs := flag.NewFlagSet("searchtex", flag.ContinueOnError)
	output := fs.String("o", "search.png", "output file (.png for an image, anything else for raw bytes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	search := tables.GenerateSearch()
	if isPNG(*output) {
		if err := imageio.Save(*output, search.Image()); err != nil {
			return err
		}
	} else if err := os.WriteFile(*output, search.Bytes(), 0o644); err != nil {
		return err
	}
	log.Printf("search table saved to %s", *output)
	return nil
}
