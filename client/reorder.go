package client

// MoveBefore computes the new display order after dragging one entry in
// front of another: the moving id is removed from its slot and re-inserted
// immediately before the target id. Unknown ids and degenerate drags
// (moving onto itself, moving or target absent) return the input order
// unchanged.
func MoveBefore(currentIDs []uint, moving, target uint) []uint {
	if moving == target {
		return currentIDs
	}

	movingFound := false
	targetFound := false
	for _, id := range currentIDs {
		if id == moving {
			movingFound = true
		}
		if id == target {
			targetFound = true
		}
	}
	if !movingFound || !targetFound {
		return currentIDs
	}

	result := make([]uint, 0, len(currentIDs))
	for _, id := range currentIDs {
		if id == moving {
			continue
		}
		if id == target {
			result = append(result, moving)
		}
		result = append(result, id)
	}
	return result
}
