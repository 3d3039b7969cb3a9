package sentiment

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBand signals a caller bug: a band whose bullish threshold does
// not sit above its bearish threshold.
var ErrInvalidBand = errors.New("sentiment: bullish threshold must be greater than bearish")

// Band is a classification band: values at or above Bullish classify
// bullish, values at or below Bearish classify bearish, everything in
// between is neutral. Bearish is expected to be negative.
type Band struct {
	Bullish float64
	Bearish float64
}

// NewBand validates and builds a band. It fails fast on bullish <= bearish.
func NewBand(bullish, bearish float64) (Band, error) {
	if bullish <= bearish {
		return Band{}, fmt.Errorf("%w: bullish=%v bearish=%v", ErrInvalidBand, bullish, bearish)
	}
	return Band{Bullish: bullish, Bearish: bearish}, nil
}

// The thresholds intentionally differ per call site and must not be
// collapsed into one constant: global index breadth reacts at half a
// percent while relative-strength breadth reacts at 0.15, and the
// outperformance cut for sector/stock status sits at a full percent.
var (
	// GlobalBreadthBand classifies raw index returns for global market breadth.
	GlobalBreadthBand = Band{Bullish: 0.5, Bearish: -0.5}

	// RelativeStrengthBand classifies relative strength for sector/stock breadth.
	RelativeStrengthBand = Band{Bullish: 0.15, Bearish: -0.15}

	// OutperformanceBand separates outperforming and underperforming
	// instruments from the benchmark.
	OutperformanceBand = Band{Bullish: 1.0, Bearish: -1.0}

	// StrictZeroBand classifies any positive value bullish and any negative
	// value bearish; exactly zero stays neutral. Built from the smallest
	// positive float so v >= Bullish is equivalent to v > 0.
	StrictZeroBand = Band{Bullish: math.SmallestNonzeroFloat64, Bearish: -math.SmallestNonzeroFloat64}
)
