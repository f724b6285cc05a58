package copyline

import (
	"fmt"
	"sort"
)

// Validate checks an externally supplied slot assignment against the
// 1:1 crossing/edge contract. It accepts exactly the assignments Create
// could have produced for some order, plus any hand-built assignment that
// preserves the contract.
//
// Returns ErrNotPermutation, ErrSlotClash, ErrMissingCrossing or
// ErrExtraCrossing; nil means the lines are safe to embed.
func Validate(n int, edges [][2]int, lines []Line) error {
	if len(lines) != n {
		return fmt.Errorf("%w: %d lines for n=%d", ErrNotPermutation, len(lines), n)
	}
	if n == 0 {
		return nil
	}

	// --- 1. Vertex coverage and slot permutations. ---
	byVertex := make([]*Line, n)
	vseen := make([]bool, n)
	for k := range lines {
		l := &lines[k]
		if l.Vertex < 0 || l.Vertex >= n || byVertex[l.Vertex] != nil {
			return fmt.Errorf("%w: vertex %d", ErrNotPermutation, l.Vertex)
		}
		byVertex[l.Vertex] = l
		if l.VSlot < 1 || l.VSlot > n || vseen[l.VSlot-1] {
			return fmt.Errorf("%w: vertical slot %d", ErrSlotClash, l.VSlot)
		}
		vseen[l.VSlot-1] = true
	}

	// --- 2. Extent sanity. ---
	for _, l := range lines {
		ok := l.HSlot >= 1 && l.HSlot <= n &&
			l.VStart >= 1 && l.VStart <= l.HSlot && l.HSlot <= l.VStop && l.VStop <= n &&
			l.HStop >= l.VSlot && l.HStop <= n
		if !ok {
			return fmt.Errorf("%w: vertex %d extents (vslot=%d hslot=%d vstart=%d vstop=%d hstop=%d)",
				ErrSlotClash, l.Vertex, l.VSlot, l.HSlot, l.VStart, l.VStop, l.HStop)
		}
	}

	// --- 3. Shared horizontal slots need disjoint runs. ---
	byHSlot := make(map[int][]*Line)
	for k := range lines {
		byHSlot[lines[k].HSlot] = append(byHSlot[lines[k].HSlot], &lines[k])
	}
	for _, group := range byHSlot {
		sort.Slice(group, func(i, j int) bool { return group[i].VSlot < group[j].VSlot })
		for i := 1; i < len(group); i++ {
			if group[i-1].HStop >= group[i].VSlot {
				return fmt.Errorf("%w: horizontal slot %d shared by vertices %d and %d",
					ErrSlotClash, group[i].HSlot, group[i-1].Vertex, group[i].Vertex)
			}
		}
	}

	// --- 4. Crossing/edge 1:1. ---
	adj := adjacency(n, edges)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			s, l := byVertex[u], byVertex[v]
			if s.VSlot > l.VSlot {
				s, l = l, s
			}
			crosses := l.VSlot <= s.HStop && l.VStart <= s.HSlot && s.HSlot <= l.VStop
			switch {
			case adj[u][v] && !crosses:
				return fmt.Errorf("%w: edge (%d,%d)", ErrMissingCrossing, u, v)
			case !adj[u][v] && crosses:
				return fmt.Errorf("%w: vertices %d and %d", ErrExtraCrossing, u, v)
			}
		}
	}

	return nil
}
