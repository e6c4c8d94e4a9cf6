// Package selector implements the Selector: it chooses the top-scoring
// subset of tokens sized to a target ratio, then runs a bounded gap-fill
// pass so large stretches between high-score neighbors are not left empty.
package selector

import "sort"

// Select runs spec.md §4.6 over final, the per-token final scores indexed
// by token index, and returns the sorted set of kept indices.
//
// K = max(1, min(N, floor(N*targetRatio))). Tokens are ranked by score
// descending, ties broken by ascending index. The top K are kept
// unconditionally; then any token whose score is >= the critical-override
// floor (classify.Modal, 5.0) is added regardless of K, since spec.md §4.6
// requires every critical or protected token to survive truncation. Gap
// fill then adds at most one token per gap between consecutive kept
// "anchor" tokens (final > 0.8) whose original-index distance exceeds
// minGapBetweenCritical.
func Select(final []float64, targetRatio float64, minGapBetweenCritical int) []int {
	n := len(final)
	if n == 0 {
		return nil
	}

	k := int(float64(n) * targetRatio)
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if final[ia] != final[ib] {
			return final[ia] > final[ib]
		}
		return ia < ib
	})

	kept := make(map[int]struct{}, k)
	for i := 0; i < k; i++ {
		kept[order[i]] = struct{}{}
	}

	// Unconditional membership: any token whose score is a critical or
	// protection override (>= 5.0, which includes +Inf) is never allowed
	// to be truncated away by a small K (spec.md §4.6 note, §8 property 3).
	const criticalFloor = 5.0
	for i, s := range final {
		if s >= criticalFloor {
			kept[i] = struct{}{}
		}
	}

	gapFill(kept, final, minGapBetweenCritical)

	result := make([]int, 0, len(kept))
	for idx := range kept {
		result = append(result, idx)
	}
	sort.Ints(result)
	return result
}

// gapFill implements spec.md §4.6 step 3. Anchors are kept indices whose
// final score exceeds 0.8. For each consecutive anchor pair whose index
// gap exceeds minGap, the single highest-scoring non-kept token strictly
// between them is promoted into kept (ties broken by lowest index). At
// most one promotion per gap; no recursion.
func gapFill(kept map[int]struct{}, final []float64, minGap int) {
	var anchors []int
	for idx := range kept {
		if final[idx] > 0.8 {
			anchors = append(anchors, idx)
		}
	}
	sort.Ints(anchors)

	for i := 0; i+1 < len(anchors); i++ {
		a, b := anchors[i], anchors[i+1]
		if b-a <= minGap {
			continue
		}
		best := -1
		for j := a + 1; j < b; j++ {
			if _, already := kept[j]; already {
				continue
			}
			if best == -1 || final[j] > final[best] {
				best = j
			}
		}
		if best != -1 {
			kept[best] = struct{}{}
		}
	}
}
