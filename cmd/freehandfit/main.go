// Command freehandfit fits a recorded pointer trace with a cubic Bézier
// spline and writes the result as SVG path data, an SVG document or a PNG
// preview.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/kpango/glg"

	"honnef.co/go/freehand"
)

type Flags struct {
	InputFilePath  string
	OutputFilePath string
	Format         string
	Size           float64
	Workers        int
	StrokeWidth    float64
	Scale          float64
	Replay         bool
	Verbose        bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "-", "input trace (JSON or text), - for stdin")
	flag.StringVar(&f.OutputFilePath, "o", "-", "output file path, - for stdout")
	flag.StringVar(&f.Format, "format", "path", "output format: path, svg or png")
	flag.Float64Var(&f.Size, "size", freehand.DefaultSize, "segmentation distance")
	flag.IntVar(&f.Workers, "workers", 0, "maximum number of goroutines fitting a spline (0 for GOMAXPROCS)")
	flag.Float64Var(&f.StrokeWidth, "w", 2, "stroke width for svg and png output")
	flag.Float64Var(&f.Scale, "s", 1, "scale factor for png output")
	flag.BoolVar(&f.Replay, "replay", false, "feed the trace to the fitter one sample at a time")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "print a preset of the current flags")
	flag.Parse()

	glg.Get().SetMode(glg.WRITER).SetWriter(os.Stderr)

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v", f.preset, err)
		}
		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	if f.Verbose {
		freehand.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if err := run(f); err != nil {
		glg.Fatal(err)
	}
}

func run(f Flags) error {
	if f.Scale <= 0 || f.StrokeWidth < 0 {
		return fmt.Errorf("scale must be positive and stroke width non-negative, got %g and %g", f.Scale, f.StrokeWidth)
	}
	points, err := readInput(f.InputFilePath)
	if err != nil {
		return fmt.Errorf("cannot read trace %s: %w", f.InputFilePath, err)
	}
	glg.Infof("read %d points from %s", len(points), f.InputFilePath)

	fitter, err := freehand.NewFitter(freehand.Options{Size: f.Size, Workers: f.Workers})
	if err != nil {
		return err
	}

	start := time.Now()
	spline, err := fit(fitter, points, f.Replay)
	if err != nil {
		return err
	}
	glg.Infof("fitted %d curves in %v", len(spline), time.Since(start))

	out, closeOut, err := openOutput(f.OutputFilePath)
	if err != nil {
		return err
	}
	if err := writeSpline(out, spline, f); err != nil {
		closeOut()
		return fmt.Errorf("cannot write %s: %w", f.OutputFilePath, err)
	}
	return closeOut()
}

func fit(fitter *freehand.Fitter, points []freehand.Point, replay bool) (freehand.Spline, error) {
	if !replay {
		return fitter.Fit(points)
	}
	stroke := fitter.NewStroke()
	for i, p := range points {
		start := time.Now()
		spline, err := stroke.Append(p)
		if err != nil {
			return nil, err
		}
		glg.Debugf("sample %d: %d curves in %v", i, len(spline), time.Since(start))
	}
	spline := stroke.End()
	if len(spline) == 0 {
		return nil, fmt.Errorf("%w: got %d", freehand.ErrTooFewPoints, len(points))
	}
	return spline, nil
}

func writeSpline(w io.Writer, spline freehand.Spline, f Flags) error {
	switch f.Format {
	case "path":
		if err := spline.BezPath().WriteSVG(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "svg":
		return writeSVG(w, spline, f.StrokeWidth)
	case "png":
		return writePNG(w, spline, f.StrokeWidth, f.Scale)
	default:
		return fmt.Errorf("unknown format %q", f.Format)
	}
}

func readInput(path string) ([]freehand.Point, error) {
	if path == "-" {
		return readTrace(os.Stdin)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readTrace(fd)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	fd, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fd, fd.Close, nil
}
