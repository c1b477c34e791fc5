package generate

// IdentifierBase is the first identifier handed out when no identifiers
// exist yet.
const IdentifierBase = 10000

// AllocateIDs returns n distinct identifiers, none of which appear in
// existing. Allocation starts at max(existing)+1 when existing is
// non-empty, else at IdentifierBase, and counts upward skipping any
// value already taken. The returned sequence is deterministic and
// monotonically increasing, so freshly allocated identifiers never
// collide with identifiers already present in an augmented dataset.
func AllocateIDs(n int, existing map[int64]bool) []int64 {
	current := int64(IdentifierBase)
	if len(existing) > 0 {
		var highest int64
		first := true
		for id := range existing {
			if first || id > highest {
				highest = id
				first = false
			}
		}
		current = highest + 1
	}

	ids := make([]int64, 0, n)
	for len(ids) < n {
		if !existing[current] {
			ids = append(ids, current)
		}
		current++
	}
	return ids
}
