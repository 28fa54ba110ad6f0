// Package sexagesimal converts packed sexagesimal angles to decimal form.
//
// SIGPROC stores source coordinates as a single double whose decimal digits
// encode degrees (or hours), minutes and seconds: ddmmss.s for declination
// and hhmmss.s for right ascension. A value of -123456.7 means
// -(12° 34' 56.7").
package sexagesimal

import "math"

// ToDecimal converts a packed ddmmss.s (or hhmmss.s) value to decimal degrees
// (or hours). The sign applies to the whole angle.
//
// The result is not re-encoded, so applying ToDecimal to its own output
// treats that output as already packed.
func ToDecimal(v float64) float64 {
	dd, mm, ss := Split(v)
	// Minutes and seconds are summed first; the grouping affects the last bit.
	dd += mm/60 + ss/3600

	if v < 0 {
		dd = -dd
	}
	return dd
}

// Split returns the whole degree (or hour), minute and second parts of the
// magnitude of a packed value.
func Split(v float64) (dd, mm, ss float64) {
	v = math.Abs(v)
	dd = math.Floor(v / 10000)
	v -= 10000 * dd
	mm = math.Floor(v / 100)
	ss = v - 100*mm
	return dd, mm, ss
}
