// Package batch renders easing curves described in YAML job files.
//
// A job file is a list of named generator configurations:
//
//	jobs:
//	  - name: fade-in
//	    curve: sin-in
//	    start: 0
//	    end: 1
//	    steps: 48
//	  - name: pan
//	    curve: quad-in-out
//	    start: -1
//	    end: 1
//	    steps: 100
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	easing "github.com/tphakala/go-fixed-easing"
	"gopkg.in/yaml.v3"
)

// Errors returned while loading job files.
var (
	// ErrNoJobs indicates a job file without any jobs.
	ErrNoJobs = errors.New("no jobs defined")

	// ErrInvalidJob indicates a job that fails validation.
	ErrInvalidJob = errors.New("invalid job")
)

// Job is one named curve to render.
type Job struct {
	Name          string `yaml:"name" json:"name"`
	easing.Config `yaml:",inline"`
}

// Validate checks the job name and its generator configuration.
func (j *Job) Validate() error {
	if j.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidJob)
	}
	if j.Steps > MaxSteps {
		return fmt.Errorf("%w: %s: steps %d exceeds %d", ErrInvalidJob, j.Name, j.Steps, MaxSteps)
	}
	if err := j.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidJob, j.Name, err)
	}
	return nil
}

type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// Parse decodes and validates a YAML job file. Unknown keys and duplicate
// job names are rejected.
func Parse(data []byte) ([]Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f jobFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	seen := make(map[string]bool, len(f.Jobs))
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidJob, j.Name)
		}
		seen[j.Name] = true
	}
	return f.Jobs, nil
}

// LoadFile reads and parses the job file at path.
func LoadFile(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return Parse(data)
}

// Result holds the values rendered for one job.
type Result struct {
	Job    Job
	Values []easing.Fix
}

// Run renders every job and returns the results in job order. With
// parallel set each job runs in its own goroutine. The first error wins
// and discards all results. Cancelling ctx stops jobs that have not
// started yet.
func Run(ctx context.Context, jobs []Job, parallel bool) ([]Result, error) {
	if parallel && len(jobs) > 1 {
		return runParallel(ctx, jobs)
	}
	return runSequential(ctx, jobs)
}

func runParallel(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	var runErr error
	var errMu sync.Mutex

	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			res, err := render(ctx, &jobs[idx])
			if err != nil {
				errMu.Lock()
				if runErr == nil {
					runErr = err
				}
				errMu.Unlock()
				return
			}
			results[idx] = res
		}(i)
	}
	wg.Wait()

	if runErr != nil {
		return nil, runErr
	}
	return results, nil
}

func runSequential(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	for i := range jobs {
		res, err := render(ctx, &jobs[i])
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

func render(ctx context.Context, j *Job) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("job %s: %w", j.Name, err)
	}
	if err := j.Validate(); err != nil {
		return Result{}, err
	}
	g, err := easing.NewFromConfig(&j.Config)
	if err != nil {
		return Result{}, fmt.Errorf("job %s: %w", j.Name, err)
	}
	return Result{Job: *j, Values: g.Collect()}, nil
}
