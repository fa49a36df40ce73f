package game

import (
	"slices"
	"testing"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		name  string
		state func(t *testing.T) *State
		want  [][]string // vertex sets, ordered by smallest member
	}{
		{
			name:  "Empty",
			state: func(t *testing.T) *State { return mustState(t, nil, nil) },
			want:  nil,
		},
		{
			name:  "SingleConnected",
			state: func(t *testing.T) *State { return pathState(t, "a", "b", "c") },
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name: "AllIsolated",
			state: func(t *testing.T) *State {
				return mustState(t, []string{"a", "b", "c"}, nil)
			},
			want: [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name: "TrianglePathEdge",
			state: func(t *testing.T) *State {
				return mustState(t,
					[]string{"0", "1", "2", "3", "4", "5", "6", "7"},
					[]Edge{
						{U: "0", V: "1"}, {U: "1", V: "2"}, {U: "2", V: "0"}, // triangle
						{U: "3", V: "4"}, {U: "4", V: "5"}, // path
						{U: "6", V: "7"}, // edge
					})
			},
			want: [][]string{{"0", "1", "2"}, {"3", "4", "5"}, {"6", "7"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps := tt.state(t).Components()
			if len(comps) != len(tt.want) {
				t.Fatalf("component count = %d, want %d", len(comps), len(tt.want))
			}
			for i, c := range comps {
				if got := c.Vertices(); !slices.Equal(got, tt.want[i]) {
					t.Errorf("component %d = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestComponentsKeepInternalEdgesOnly(t *testing.T) {
	s := mustState(t,
		[]string{"a", "b", "x", "y"},
		[]Edge{{U: "a", V: "b"}, {U: "x", V: "y"}})

	comps := s.Components()
	if len(comps) != 2 {
		t.Fatalf("component count = %d, want 2", len(comps))
	}
	for _, c := range comps {
		if got := len(c.Edges()); got != 1 {
			t.Errorf("component %v edge count = %d, want 1", c.Vertices(), got)
		}
	}
}

func TestComponentsPartition(t *testing.T) {
	s := mustState(t,
		[]string{"a", "b", "c", "d", "e"},
		[]Edge{{U: "a", V: "b"}, {U: "d", V: "e"}})

	var union []string
	for _, c := range s.Components() {
		union = append(union, c.Vertices()...)
	}
	slices.Sort(union)
	if !slices.Equal(union, s.Vertices()) {
		t.Errorf("component union = %v, want %v", union, s.Vertices())
	}
}
