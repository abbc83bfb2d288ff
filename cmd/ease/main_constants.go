package main

// Default command-line flag values
const (
	defaultCurve  = "linear"
	defaultStart  = 0.0
	defaultEnd    = 1.0
	defaultSteps  = 10
	defaultFormat = formatText
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
)

// Demo parameters
const (
	demoEnd       = 10000 // range of the reference tables
	demoSteps     = 10
	demoBarWidth  = 40
	demoBarSymbol = "#"
)
