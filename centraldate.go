package metocean

import "time"

// CentralDate returns the midpoint of the period between start and end,
// computed as start + (end−start)/2. Convenient when a calculation such
// as a declination lookup over a multi-day record needs a single
// representative date. The result carries start's location; equal
// inputs return that same instant, and swapping the arguments yields
// the same midpoint.
func CentralDate(start, end time.Time) time.Time {
	return start.Add(end.Sub(start) / 2)
}
