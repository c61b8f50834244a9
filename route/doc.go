// Package route reconstructs vertex paths from the predecessor maps produced
// by the shortest-path engines.
//
// A predecessor map is a slice indexed by vertex: prev[v] is the vertex
// preceding v on the best-known path from the source, or NoPredecessor when
// none was recorded (the source itself, or a vertex the search never
// reached). Reconstruct walks the map backward from a target until it hits
// the sentinel, then reverses the collected vertices.
//
// An unreached target yields ErrNoPath — never an empty or partial slice
// that could be mistaken for a valid zero-length route. A chain that walks
// more than len(prev) steps without terminating (only possible with a
// hand-corrupted map) yields ErrBrokenChain.
package route
