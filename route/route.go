package route

import (
	"errors"
	"fmt"
)

// NoPredecessor is the sentinel predecessor value meaning "none recorded".
// The shortest-path engines initialize every prev entry to it.
const NoPredecessor = -1

// Sentinel errors for path reconstruction.
var (
	// ErrInvalidVertex indicates that source or target lies outside [0, len(prev)).
	ErrInvalidVertex = errors.New("route: vertex out of range")

	// ErrNoPath indicates that the target was never reached from the source.
	ErrNoPath = errors.New("route: no path to target")

	// ErrBrokenChain indicates a predecessor chain that does not terminate
	// within len(prev) steps; the map is internally inconsistent.
	ErrBrokenChain = errors.New("route: predecessor chain does not terminate")
)

// Reconstruct returns the ordered vertex sequence from source to target
// recorded in prev, both endpoints included.
//
// Behavior:
//   - target == source yields the single-vertex path [source].
//   - An unreached target (no predecessor chain leading back to source)
//     yields ErrNoPath.
//   - Indices outside [0, len(prev)) yield ErrInvalidVertex.
//
// Complexity: O(L) where L is the path length.
func Reconstruct(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d (size %d)", ErrInvalidVertex, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d (size %d)", ErrInvalidVertex, target, n)
	}
	if target == source {
		return []int{source}, nil
	}
	if prev[target] == NoPredecessor {
		// Nothing was ever recorded for the target: it is unreached.
		return nil, fmt.Errorf("%w: target %d", ErrNoPath, target)
	}

	// Walk backward from the target, collecting vertices in reverse order.
	// The walk is capped at n steps: any longer chain must contain a cycle.
	path := make([]int, 0, 8)
	cur := target
	for cur != NoPredecessor {
		if len(path) == n {
			return nil, fmt.Errorf("%w: target %d", ErrBrokenChain, target)
		}
		path = append(path, cur)
		cur = prev[cur]
	}

	// A well-formed chain ends at the source (the only vertex a search
	// leaves without a predecessor while still reaching it).
	if path[len(path)-1] != source {
		return nil, fmt.Errorf("%w: target %d", ErrNoPath, target)
	}

	// Reverse in place: source first, target last.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
