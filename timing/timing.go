// SPDX-License-Identifier: EPL-2.0

package timing

import (
	"fmt"
	"math"
)

// Tick is the engine's fixed-rate integer time unit. TickRate is the
// least common multiple of every supported sample rate, so a sample
// boundary at any supported rate lands on an exact tick count.
type Tick int64

const (
	// TickRate is the number of ticks per second.
	TickRate = 28_224_000

	// TicksPerMS is the number of ticks per millisecond.
	TicksPerMS = TickRate / 1000
)

// SupportedRates lists the sample rates that divide TickRate exactly,
// in ascending order.
var SupportedRates = []int{
	8000, 11025, 16000, 22050, 32000,
	44100, 48000, 88200, 96000, 176400, 192000,
}

var ticksPerSample = map[int]Tick{
	8000:   3528,
	11025:  2560,
	16000:  1764,
	22050:  1280,
	32000:  882,
	44100:  640,
	48000:  588,
	88200:  320,
	96000:  294,
	176400: 160,
	192000: 147,
}

// ToTicks converts a duration in seconds to ticks, rounding to the
// nearest tick. Negative durations are rejected.
func ToTicks(seconds float64) (Tick, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("%w: %v s", ErrNegativeDuration, seconds)
	}

	return Tick(math.Round(seconds * TickRate)), nil
}

// ToSeconds converts ticks to seconds.
func ToSeconds(t Tick) float64 {
	return float64(t) / TickRate
}

// MSToTicks converts whole milliseconds to ticks. Exact: TickRate is a
// multiple of 1000.
func MSToTicks(ms int64) Tick {
	return Tick(ms) * TicksPerMS
}

// TicksToMS converts ticks to whole milliseconds, truncating any
// sub-millisecond remainder.
func TicksToMS(t Tick) int64 {
	return int64(t / TicksPerMS)
}

// TicksPerSample returns the exact tick length of one sample at the
// given rate.
func TicksPerSample(rate int) (Tick, error) {
	tps, ok := ticksPerSample[rate]
	if !ok {
		return 0, fmt.Errorf("%w: %d Hz", ErrUnsupportedRate, rate)
	}

	return tps, nil
}

// SamplesToTicks converts a sample count at the given rate to ticks.
// The conversion is exact for every supported rate.
func SamplesToTicks(samples int64, rate int) (Tick, error) {
	tps, err := TicksPerSample(rate)
	if err != nil {
		return 0, err
	}

	return Tick(samples) * tps, nil
}

// TicksToSamples converts ticks to a sample count at the given rate,
// truncating any partial sample.
func TicksToSamples(t Tick, rate int) (int64, error) {
	tps, err := TicksPerSample(rate)
	if err != nil {
		return 0, err
	}

	return int64(t / tps), nil
}
