// Command ease-wav writes an easing curve as a mono PCM envelope.
//
// Usage:
//
//	ease-wav -curve sin-in-out -steps 480 fade.wav
//	ease-wav -curve exp-out -start 1 -end 0 -hold 100 -bits 24 decay.wav
//
// Curve values are read as amplitudes in [-1, 1]. Each value is held for
// -hold frames, so the file lasts steps*hold/rate seconds.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	easing "github.com/tphakala/go-fixed-easing"
	"github.com/tphakala/go-fixed-easing/internal/batch"
	"github.com/tphakala/go-fixed-easing/internal/pcm"
	"github.com/tphakala/go-fixed-easing/internal/simdops"
)

const (
	// CLI defaults
	defaultCurve    = "linear"
	defaultEnd      = 1.0
	defaultSteps    = 480
	defaultRateKHz  = 48.0
	defaultBitDepth = 16
	defaultHold     = 100
	minRequiredArgs = 1

	kHzToHz = 1000
)

var (
	errUsage        = errors.New("insufficient arguments")
	errTooManySteps = errors.New("too many steps")
)

type options struct {
	curve    easing.Curve
	start    float64
	end      float64
	steps    uint64
	rate     int
	bitDepth int
	hold     int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curveName := flag.String("curve", defaultCurve, "Curve name")
	start := flag.Float64("start", 0, "First amplitude in [-1, 1]")
	end := flag.Float64("end", defaultEnd, "Last amplitude in [-1, 1]")
	steps := flag.Uint64("steps", defaultSteps, "Number of curve values")
	rateKHz := flag.Float64("rate", defaultRateKHz, "Sample rate in kHz (e.g., 44.1, 48, 96)")
	bitDepth := flag.Int("bits", defaultBitDepth, "Bit depth: 16, 24, 32")
	hold := flag.Int("hold", defaultHold, "Frames per curve value")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errUsage
	}

	curve, err := easing.ParseCurve(*curveName)
	if err != nil {
		return err
	}

	opts := options{
		curve:    curve,
		start:    *start,
		end:      *end,
		steps:    *steps,
		rate:     int(*rateKHz * kHzToHz),
		bitDepth: *bitDepth,
		hold:     *hold,
	}

	if *verbose {
		log.Printf("SIMD: %s", simdops.Info())
		log.Printf("Curve: %s, %g -> %g in %d steps", opts.curve, opts.start, opts.end, opts.steps)
		log.Printf("Output format: %d Hz, 1 channel, %d-bit, hold %d", opts.rate, opts.bitDepth, opts.hold)
	}

	began := time.Now()
	frames, err := writeEnvelope(args[0], &opts)
	if err != nil {
		return err
	}

	if *verbose {
		seconds := float64(frames) / float64(opts.rate)
		log.Printf("Wrote %d frames (%.3fs) to %s in %v", frames, seconds, args[0], time.Since(began))
	}
	return nil
}

// writeEnvelope renders the curve described by opts into path and returns
// the number of frames written. Sizes are checked before anything is
// rendered.
func writeEnvelope(path string, opts *options) (int, error) {
	if opts.steps > batch.MaxSteps {
		return 0, fmt.Errorf("%w: %d exceeds %d", errTooManySteps, opts.steps, batch.MaxSteps)
	}
	if _, err := pcm.FrameCount(opts.steps, opts.hold); err != nil {
		return 0, err
	}

	cfg := easing.Config{Curve: opts.curve, Start: opts.start, End: opts.end, Steps: opts.steps}
	g, err := easing.NewFromConfig(&cfg)
	if err != nil {
		return 0, err
	}

	samples, err := pcm.Envelope(g.Collect(), opts.bitDepth)
	if err != nil {
		return 0, err
	}
	if err := pcm.WriteWAV(path, samples, opts.rate, opts.bitDepth, opts.hold); err != nil {
		return 0, err
	}
	return len(samples) * opts.hold, nil
}
