// Package graphroots finds the nodes of a dependency graph that no other node depends on.
package graphroots

// Find returns the nodes that are not declared as a dependency by any other node in nodes.
// deps may return identifiers outside nodes; those are ignored. A node listing itself does
// not disqualify itself, so cycles through a node keep it eligible as long as no other
// input node points at it. The result keeps the order of nodes and duplicates in nodes
// are reported once.
func Find[T comparable](nodes []T, deps func(T) []T) []T {
	members := make(map[T]struct{}, len(nodes))
	for _, n := range nodes {
		members[n] = struct{}{}
	}

	dependedOn := make(map[T]struct{}, len(nodes))
	for n := range members {
		for _, d := range deps(n) {
			if d == n {
				continue
			}
			if _, ok := members[d]; ok {
				dependedOn[d] = struct{}{}
			}
		}
	}

	roots := make([]T, 0, len(members)-len(dependedOn))
	seen := make(map[T]struct{}, len(members))
	for _, n := range nodes {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := dependedOn[n]; !ok {
			roots = append(roots, n)
		}
	}
	return roots
}
