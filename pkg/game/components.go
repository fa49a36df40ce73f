package game

import "slices"

// Components partitions the state into its maximal connected sub-states.
// Each returned state carries only the vertices of one component and the
// edges internal to it. The union of the returned vertex sets is exactly
// the state's vertex set; an empty state decomposes into zero components.
//
// Components are ordered by their smallest vertex ID, so the result is
// deterministic for a given state.
func (s *State) Components() []*State {
	visited := make(map[string]bool, len(s.vertices))
	var comps []*State

	for _, start := range s.vertices {
		if visited[start] {
			continue
		}

		// BFS from start collects one component.
		members := []string{start}
		visited[start] = true
		for i := 0; i < len(members); i++ {
			for _, n := range s.adj[members[i]] {
				if !visited[n] {
					visited[n] = true
					members = append(members, n)
				}
			}
		}
		comps = append(comps, s.subgraph(members))
	}
	return comps
}

// subgraph builds the sub-state induced by members. BFS order is not
// sorted, so the vertex list is re-sorted; adjacency lists carry over
// unchanged because every neighbor of a member is itself a member.
func (s *State) subgraph(members []string) *State {
	adj := make(map[string][]string, len(members))
	vertices := make([]string, 0, len(members))
	for _, v := range members {
		adj[v] = s.adj[v]
		vertices = append(vertices, v)
	}
	slices.Sort(vertices)
	return &State{vertices: vertices, adj: adj}
}
