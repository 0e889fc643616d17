package colorspace

// The hue wheel splits into six sectors. In every sector one channel holds
// the high component, one ramps between the extremes and one holds the low
// component; only the assignment of components to channels changes from
// sector to sector.

// sectorOrder lists, per sector, which component lands in R, G and B:
// 0 is the high component, 1 the ramp, 2 the low component.
var sectorOrder = [6][3]int{
	{0, 1, 2}, // R=high G=ramp B=low
	{1, 0, 2}, // R=ramp G=high B=low
	{2, 0, 1}, // R=low  G=high B=ramp
	{2, 1, 0}, // R=low  G=ramp B=high
	{1, 2, 0}, // R=ramp G=low  B=high
	{0, 2, 1}, // R=high G=low  B=ramp
}

// PlaceSector distributes a sector's high, ramp and low components onto the
// R, G and B channels. Sectors past 5 wrap around the wheel. Both the
// fixed-point conversions and the float HSL pipeline place their channels
// through this one table, so the sector layouts cannot drift apart.
func PlaceSector[T any](sector int, high, ramp, low T) (r, g, b T) {
	parts := [3]T{high, ramp, low}
	order := sectorOrder[sector%6]
	return parts[order[0]], parts[order[1]], parts[order[2]]
}
