package ui

// pt reports whether (x, y) lies on a w×h surface anchored at the origin.
func pt(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
