package batch

// MaxSteps bounds the step count of a single job. Run materializes every
// value, so an unbounded count would let a job file exhaust memory.
const MaxSteps = 1 << 24
