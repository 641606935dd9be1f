package estimate

import "math"

// Quality bounds accepted by the server
const (
	MinQuality     = 50
	MaxQuality     = 100
	DefaultQuality = 95
)

// Heuristic ratio ramp: q=50 ~ 0.18x, q=95 ~ 0.55x
const (
	RatioAtMin      = 0.18
	RatioAtHigh     = 0.55
	HighQuality     = 95
	HighBonusPerQ   = 0.02
	MaxRatio        = 0.75
	MinEstimateSize = 8 * 1024
)

// ClampQuality limits q to [MinQuality, MaxQuality]
func ClampQuality(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// Ratio returns the expected output/input size ratio for quality q
func Ratio(q int) float64 {
	q = ClampQuality(q)
	t := float64(q-MinQuality) / float64(MaxQuality-MinQuality)
	ratio := RatioAtMin + (RatioAtHigh-RatioAtMin)*t

	if q >= HighQuality {
		ratio += float64(q-HighQuality) * HighBonusPerQ
	}
	return math.Min(MaxRatio, ratio)
}

// EstimateWebPBytes approximates the converted size of an input of size bytes.
// The result is never below MinEstimateSize nor above the input size; inputs
// smaller than MinEstimateSize are returned unchanged.
func EstimateWebPBytes(size int64, quality int) int64 {
	if size <= 0 {
		return 0
	}
	if size < MinEstimateSize {
		return size
	}

	estimate := int64(math.Round(float64(size) * Ratio(quality)))
	if estimate > size {
		estimate = size
	}
	if estimate < MinEstimateSize {
		estimate = MinEstimateSize
	}
	return estimate
}

// SavingsPercent returns how much smaller converted is than original, as a whole
// percentage clamped to [0, 100]
func SavingsPercent(original, converted int64) int {
	if original <= 0 {
		return 0
	}
	saved := math.Round((1 - float64(converted)/float64(original)) * 100)
	if saved < 0 {
		return 0
	}
	if saved > 100 {
		return 100
	}
	return int(saved)
}
