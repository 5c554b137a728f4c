package units

// Units of time. Years here are the 365-day civil year, not the Julian
// or tropical one; calendar arithmetic is out of scope for a unit
// catalog.
var (
	Seconds      = Base(Time)
	Nanoseconds  = Nano(Seconds)
	Microseconds = Micro(Seconds)
	Milliseconds = Milli(Seconds)
	Minutes      = Derive(Seconds, 60, 1)
	Hours        = Derive(Minutes, 60, 1)
	Days         = Derive(Hours, 24, 1)
	Weeks        = Derive(Days, 7, 1)
	Years        = Derive(Days, 365, 1)
)
