// Package score contains scoring calculations for practice rounds.
package score

import "math"

// WordsPerMinute computes WPM from fully correct words and elapsed seconds.
// A non-positive duration yields 0.
func WordsPerMinute(correct int, elapsedSeconds float64) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	minutes := elapsedSeconds / 60.0
	return int(math.Round(float64(correct) / minutes))
}

// Accuracy returns the correct share as a rounded percentage.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
