package zipfmt

import "time"

// DosDateTime packs t into the 16-bit DOS date and time fields used by ZIP
// headers. Resolution is 2 seconds; years before 1980 clamp to 1980.
// Date bits: 0-4 day, 5-8 month, 9-15 years since 1980.
// Time bits: 0-4 seconds/2, 5-10 minute, 11-15 hour.
func DosDateTime(t time.Time) (dosDate, dosTime uint16) {
	year := t.Year() - 1980
	if year < 0 {
		year = 0
	}
	dosDate = uint16(year<<9 | int(t.Month())<<5 | t.Day())
	dosTime = uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	return dosDate, dosTime
}
