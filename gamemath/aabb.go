package gamemath

// BoxOverlap reports whether two axis-aligned boxes intersect.
// Boxes that only share an edge do not overlap.
func BoxOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax+aw > bx &&
		ax < bx+bw &&
		ay+ah > by &&
		ay < by+bh
}
