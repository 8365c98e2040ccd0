package booking

import "time"

// HasConflict decides whether a candidate range can coexist with the live
// bookings already claiming dates on the same item. The caller supplies the
// live set; the repository query restricts to live states.
func HasConflict(live []DateRange, candidate DateRange) bool {
	for _, r := range live {
		if r.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (Date, Date) {
	first := NewDate(year, month, 1)
	last := NewDate(year, month+1, 1).AddDays(-1)
	return first, last
}

// BlockedDates expands the live ranges into the set of individual days of
// (year, month) that are taken. Ranges sticking out of the month are
// clipped to it.
func BlockedDates(live []DateRange, year int, month time.Month) map[Date]struct{} {
	first, last := MonthBounds(year, month)
	blocked := make(map[Date]struct{})
	for _, r := range live {
		start, end := r.Start(), r.End()
		if start.Before(first) {
			start = first
		}
		if end.After(last) {
			end = last
		}
		for d := start; !d.After(end); d = d.AddDays(1) {
			blocked[d] = struct{}{}
		}
	}
	return blocked
}
