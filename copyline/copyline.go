package copyline

import "fmt"

// Create assigns one Line per vertex from the given processing order.
//
// Vertical slots are order positions. Horizontal slots are reused: a slot is
// freed as soon as every neighbor of its vertex has been processed, so the
// grid height tracks the order's vertex separation rather than n. Extents
// are then the minimal ranges covering the slots of all neighbors, which
// gives the 1:1 crossing/edge correspondence.
//
// The returned slice is indexed by vertex id. Returns ErrNotPermutation if
// order is not a permutation of 0..n-1; slot clashes cannot arise from a
// valid permutation.
func Create(n int, edges [][2]int, order []int) ([]Line, error) {
	if n == 0 {
		return nil, nil
	}
	if err := checkPermutation(n, order); err != nil {
		return nil, err
	}

	adj := adjacency(n, edges)
	rmorder := removeOrder(n, adj, order)

	// --- 1. Horizontal slots with reuse. ---
	// slots[k] holds vertex+1 so 0 can mean "free"; a free slot always
	// exists because removals keep the active count at or below n.
	slots := make([]int, n)
	hslots := make([]int, n)
	for i, v := range order {
		islot := -1
		for k, s := range slots {
			if s == 0 {
				islot = k
				break
			}
		}
		slots[islot] = v + 1
		hslots[i] = islot + 1
		for _, r := range rmorder[i] {
			for k, s := range slots {
				if s == r+1 {
					slots[k] = 0
					break
				}
			}
		}
	}

	// --- 2. Extents from neighbor slots. ---
	lines := make([]Line, n)
	for i, v := range order {
		vstart, vstop, hstop := hslots[i], hslots[i], i+1
		for j, u := range order {
			if u != v && !adj[v][u] {
				continue
			}
			if j <= i {
				if hslots[j] < vstart {
					vstart = hslots[j]
				}
				if hslots[j] > vstop {
					vstop = hslots[j]
				}
			}
			if j+1 > hstop {
				hstop = j + 1
			}
		}
		lines[v] = Line{
			Vertex: v,
			VSlot:  i + 1,
			HSlot:  hslots[i],
			VStart: vstart,
			VStop:  vstop,
			HStop:  hstop,
		}
	}

	return lines, nil
}

// checkPermutation verifies order is a permutation of 0..n-1.
func checkPermutation(n int, order []int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d entries for n=%d", ErrNotPermutation, len(order), n)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: entry %d", ErrNotPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

func adjacency(n int, edges [][2]int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		if e[0] == e[1] || e[0] < 0 || e[1] < 0 || e[0] >= n || e[1] >= n {
			continue
		}
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	return adj
}

// removeOrder computes, per order position, the vertices whose slots may be
// released there. A vertex is releasable once all its neighbors have been
// processed; the release lands at the later of its own position and that
// step.
func removeOrder(n int, adj [][]bool, order []int) [][]int {
	total := make([]int, n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			if adj[j][k] {
				total[j]++
			}
		}
	}
	pos := make([]int, n)
	for i, v := range order {
		pos[v] = i
	}

	counts := make([]int, n)
	removed := make([]bool, n)
	result := make([][]int, n)
	for i, v := range order {
		for j := 0; j < n; j++ {
			if adj[j][v] {
				counts[j]++
			}
		}
		for j := 0; j < n; j++ {
			if removed[j] || counts[j] != total[j] {
				continue
			}
			step := i
			if pos[j] > step {
				step = pos[j]
			}
			result[step] = append(result[step], j)
			removed[j] = true
		}
	}

	return result
}
