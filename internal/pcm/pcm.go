// Package pcm renders easing sequences as PCM control tracks.
//
// Values are read as normalized amplitudes: -1 and 1 map to negative and
// positive full scale of the chosen bit depth, anything beyond is clipped.
// Tracks are mono and are usually held for several samples per value to
// turn a control-rate curve into an audio-rate envelope.
package pcm

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	easing "github.com/tphakala/go-fixed-easing"
	"github.com/tphakala/go-fixed-easing/internal/simdops"
)

// Errors returned by the envelope writers.
var (
	// ErrUnsupportedBitDepth indicates a bit depth other than 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrInvalidSampleRate indicates a sample rate outside (0, 768000].
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidHold indicates a hold count below 1.
	ErrInvalidHold = errors.New("invalid hold count")

	// ErrTooLong indicates a held track longer than MaxFrames.
	ErrTooLong = errors.New("track too long")
)

// FullScale returns the positive full-scale sample value for bitDepth.
func FullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Envelope converts values to integer PCM samples at bitDepth.
func Envelope(values []easing.Fix, bitDepth int) ([]int, error) {
	fullScale, err := FullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	norm := make([]float64, len(values))
	for i, v := range values {
		norm[i] = max(-1, min(1, v.ToFloat64()))
	}
	simdops.For[float64]().Scale(norm, norm, fullScale)

	out := make([]int, len(norm))
	for i, s := range norm {
		out[i] = int(math.Round(s))
	}
	return out, nil
}

// FrameCount returns the length of values samples held n frames each.
func FrameCount(values uint64, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHold, n)
	}
	if values > MaxFrames/uint64(n) {
		return 0, fmt.Errorf("%w: %d values held %d frames exceeds %d", ErrTooLong, values, n, MaxFrames)
	}
	return int(values) * n, nil
}

// Hold repeats every sample n times.
func Hold(samples []int, n int) ([]int, error) {
	frames, err := FrameCount(uint64(len(samples)), n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return samples, nil
	}
	out := make([]int, 0, frames)
	for _, s := range samples {
		for range n {
			out = append(out, s)
		}
	}
	return out, nil
}

// WriteWAV writes samples as a mono PCM WAV file, holding each one for
// hold frames.
func WriteWAV(path string, samples []int, sampleRate, bitDepth, hold int) (err error) {
	if sampleRate <= 0 || sampleRate > maxSampleRate {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if _, err := FullScale(bitDepth); err != nil {
		return err
	}
	held, err := Hold(samples, hold)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		Data:           held,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
