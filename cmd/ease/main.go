// Command ease prints the values of an easing curve, or of every job in a
// YAML job file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	easing "github.com/tphakala/go-fixed-easing"
	"github.com/tphakala/go-fixed-easing/internal/batch"
	"github.com/tphakala/go-fixed-easing/internal/simdops"
)

var errUnknownFormat = errors.New("unknown output format")

func main() {
	var (
		curveName = flag.String("curve", defaultCurve, "Curve name (see -list)")
		start     = flag.Float64("start", defaultStart, "First end point")
		end       = flag.Float64("end", defaultEnd, "Last end point")
		steps     = flag.Uint64("steps", defaultSteps, "Number of values")
		format    = flag.String("format", defaultFormat, "Output format: text, json")
		list      = flag.Bool("list", false, "List available curves and exit")
		config    = flag.String("config", "", "YAML job file to render instead of a single curve")
		parallel  = flag.Bool("parallel", true, "Render jobs concurrently")
		verbose   = flag.Bool("v", false, "Verbose output")
		demo      = flag.Bool("demo", false, "Plot every curve")
	)
	flag.Parse()

	if *list {
		for _, c := range easing.Curves() {
			fmt.Println(c)
		}
		return
	}

	if *demo {
		runDemo(os.Stdout)
		return
	}

	if *verbose {
		log.Printf("SIMD: %s", simdops.Info())
	}

	jobs, err := loadJobs(*config, *curveName, *start, *end, *steps)
	if err != nil {
		log.Fatalf("Failed to load jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, jobs, *parallel)
	if err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}

	if *verbose {
		for _, r := range results {
			log.Printf("%s: %s %g -> %g, %d values", r.Job.Name, r.Job.Curve, r.Job.Start, r.Job.End, len(r.Values))
		}
	}

	if err := writeResults(os.Stdout, *format, results, *config != ""); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// loadJobs reads the job file at path, or builds a single job from the
// curve flags when path is empty.
func loadJobs(path, curveName string, start, end float64, steps uint64) ([]batch.Job, error) {
	if path != "" {
		return batch.LoadFile(path)
	}

	curve, err := easing.ParseCurve(curveName)
	if err != nil {
		return nil, err
	}
	job := batch.Job{
		Name:   curve.String(),
		Config: easing.Config{Curve: curve, Start: start, End: end, Steps: steps},
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return []batch.Job{job}, nil
}

type jsonResult struct {
	Name   string    `json:"name"`
	Curve  string    `json:"curve"`
	Values []float64 `json:"values"`
}

// writeResults prints results in format. Text output of a single job is
// one value per line; named sections are only emitted when named is set.
func writeResults(w io.Writer, format string, results []batch.Result, named bool) error {
	switch format {
	case formatText:
		for _, r := range results {
			if named {
				if _, err := fmt.Fprintf(w, "# %s (%s)\n", r.Job.Name, r.Job.Curve); err != nil {
					return err
				}
			}
			for _, v := range r.Values {
				if _, err := fmt.Fprintln(w, v); err != nil {
					return err
				}
			}
		}
		return nil

	case formatJSON:
		enc := json.NewEncoder(w)
		if !named && len(results) == 1 {
			return enc.Encode(toFloat64s(results[0].Values))
		}
		out := make([]jsonResult, len(results))
		for i, r := range results {
			out[i] = jsonResult{Name: r.Job.Name, Curve: r.Job.Curve.String(), Values: toFloat64s(r.Values)}
		}
		return enc.Encode(out)

	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func toFloat64s(values []easing.Fix) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.ToFloat64()
	}
	return out
}

func runDemo(w io.Writer) {
	fmt.Fprintln(w, "=== Fixed-Point Easing Demo ===")
	for _, c := range easing.Curves() {
		fmt.Fprintf(w, "\n%s\n", c)
		g, err := easing.New(c, easing.Zero, easing.FromInt(demoEnd), demoSteps)
		if err != nil {
			fmt.Fprintf(w, "  error: %v\n", err)
			continue
		}
		for v := range g.All() {
			n := int(v.ToFloat64() / demoEnd * demoBarWidth)
			n = max(0, min(demoBarWidth, n))
			fmt.Fprintf(w, "  %9.3f |%s\n", v.ToFloat64(), strings.Repeat(demoBarSymbol, n))
		}
	}
}
