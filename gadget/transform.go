package gadget

import "fmt"

// Rotated returns the pattern turned n quarter-turns clockwise about
// its crossing cell, shifted back into a 1-based window. Pins, edges,
// boundary tables, weights and overhead carry over unchanged.
func Rotated(p Pattern, n int) Pattern {
	n = ((n % 4) + 4) % 4
	q := transform(p, n%2 == 1, func(dr, dc int) (int, int) {
		for k := 0; k < n; k++ {
			dr, dc = -dc, dr
		}
		return dr, dc
	})
	q.Name = fmt.Sprintf("%s-rot%d", p.Name, n*90)
	return q
}

// Reflected returns the pattern mirrored about the given axis through
// its crossing cell, shifted back into a 1-based window. Pins, edges,
// boundary tables, weights and overhead carry over unchanged.
func Reflected(p Pattern, axis Axis) Pattern {
	var f func(dr, dc int) (int, int)
	swap := false
	suffix := ""
	switch axis {
	case AxisX:
		f = func(dr, dc int) (int, int) { return dr, -dc }
		suffix = "-mirx"
	case AxisY:
		f = func(dr, dc int) (int, int) { return -dr, dc }
		suffix = "-miry"
	case AxisDiag:
		f = func(dr, dc int) (int, int) { return dc, dr }
		swap = true
		suffix = "-mird"
	default:
		f = func(dr, dc int) (int, int) { return -dc, -dr }
		swap = true
		suffix = "-mira"
	}
	q := transform(p, swap, f)
	q.Name = p.Name + suffix
	return q
}

// transform maps every cell through f as a delta from the crossing
// cell, then shifts the result so the window corners land back on
// 1-based coordinates.
func transform(p Pattern, swapDims bool, f func(dr, dc int) (int, int)) Pattern {
	cr, cc := p.Cross[0], p.Cross[1]
	move := func(r, c int) (int, int) {
		dr, dc := f(r-cr, c-cc)
		return cr + dr, cc + dc
	}

	c1r, c1c := move(1, 1)
	c2r, c2c := move(p.Rows, p.Cols)
	offR := 1 - min(c1r, c2r)
	offC := 1 - min(c1c, c2c)

	q := p
	if swapDims {
		q.Rows, q.Cols = p.Cols, p.Rows
	}
	q.Cross = [2]int{cr + offR, cc + offC}
	q.Source = moveNodes(p.Source, move, offR, offC)
	q.Mapped = moveNodes(p.Mapped, move, offR, offC)
	return q
}

func moveNodes(nodes []Node, move func(r, c int) (int, int), offR, offC int) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		r, c := move(n.Row, n.Col)
		out[i] = Node{Row: r + offR, Col: c + offC, Weight: n.Weight}
	}
	return out
}
