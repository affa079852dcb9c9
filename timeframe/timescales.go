package timeframe

// EOPOffsets holds the Earth-orientation quantities needed to move a UTC
// epoch into UT1 and TT. Callers obtain this from the eop package's lookup
// (which returns a record rather than mutating process-wide scratch, per
// spec §5/§9) and pass it through explicitly — no package-level state here.
type EOPOffsets struct {
	DUT1Sec float64 // UT1 - UTC, seconds
	DATSec  float64 // TAI - UTC (leap seconds), seconds
	XPRad   float64 // polar motion x, radians
	YPRad   float64 // polar motion y, radians
}

// UT1FromUTC returns Mjd_UT1 = Mjd_UTC + dUT1/86400.
func UT1FromUTC(mjdUTC float64, off EOPOffsets) float64 {
	return mjdUTC + off.DUT1Sec/secPerDay
}

// TTFromUTC returns Mjd_TT = Mjd_UTC + (32.184 + ΔAT)/86400.
func TTFromUTC(mjdUTC float64, off EOPOffsets) float64 {
	return mjdUTC + (32.184+off.DATSec)/secPerDay
}
