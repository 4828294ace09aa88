package calendar

import "time"

// minHeightPct keeps zero-duration items tall enough to read and select.
const minHeightPct = 5.0

// minCellHeightPct is the floor used for per-hour-cell placement in the
// week/day grids, which draw events slightly taller than the day column does.
const minCellHeightPct = 10.0

func hourOf(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// Layout computes the vertical placement of a time-blocked item within the
// visible hour window as percentages of the window height. Both ends are
// clamped to the window; height never drops below the visibility minimum, so
// an item whose end precedes its start collapses to the minimum rather than
// producing a negative extent.
func Layout(start, end time.Time, visibleStart, visibleEnd int) (top, height float64) {
	s := hourOf(start)
	e := hourOf(end)

	lo, hi := float64(visibleStart), float64(visibleEnd)
	if s < lo {
		s = lo
	}
	if s > hi {
		s = hi
	}
	if e < lo {
		e = lo
	}
	if e > hi {
		e = hi
	}
	if e < s {
		e = s
	}

	window := hi - lo
	top = (s - lo) / window * 100
	height = (e - s) / window * 100
	if height < minHeightPct {
		height = minHeightPct
	}
	return top, height
}

// CellLayout places an item inside a single hour cell. Only the cell containing
// the item's start hour draws it; the returned extent covers the full span, so
// multi-hour items overflow their cell rather than being clipped at hour
// boundaries. ok is false for cells the item does not start in.
func CellLayout(start, end time.Time, hour int) (top, height float64, ok bool) {
	if start.Hour() != hour {
		return 0, 0, false
	}

	top = float64(start.Minute()) / 60 * 100

	var minutes int
	if end.Hour() == start.Hour() {
		minutes = end.Minute() - start.Minute()
	} else {
		span := end.Hour() - start.Hour()
		minutes = span*60 - start.Minute() + end.Minute()
	}
	height = float64(minutes) / 60 * 100
	if height < minCellHeightPct {
		height = minCellHeightPct
	}
	return top, height, true
}
