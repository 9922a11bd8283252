package mf

import "time"

// TicksPerMillisecond is the number of 100-nanosecond ticks in a millisecond.
const TicksPerMillisecond = 10000

// TicksToMillis converts a tick count to whole milliseconds, truncating toward zero.
func TicksToMillis(ticks int64) int64 {
	return ticks / TicksPerMillisecond
}

// MillisToTicks converts milliseconds to a tick count, truncating toward zero.
func MillisToTicks(millis float64) int64 {
	return int64(millis * TicksPerMillisecond)
}

// TicksToDuration converts a tick count to a duration with millisecond resolution.
func TicksToDuration(ticks int64) time.Duration {
	return time.Duration(TicksToMillis(ticks)) * time.Millisecond
}

// DurationToTicks converts a duration to a tick count.
func DurationToTicks(d time.Duration) int64 {
	return MillisToTicks(float64(d) / float64(time.Millisecond))
}
