package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/grundylab/kayles/pkg/game"
)

func newTestCLI() *CLI {
	var out, errOut bytes.Buffer
	return New(&out, &errOut, log.FatalLevel)
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    game.Edge
		wantErr bool
	}{
		{"simple", "a-b", game.Edge{U: "a", V: "b"}, false},
		{"numeric labels", "1-2", game.Edge{U: "1", V: "2"}, false},
		{"missing dash", "ab", game.Edge{}, true},
		{"empty left", "-b", game.Edge{}, true},
		{"empty right", "a-", game.Edge{}, true},
		{"extra dash", "a-b-c", game.Edge{}, true},
		{"empty spec", "", game.Edge{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEdge(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEdge(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseEdge(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestBuildBoard(t *testing.T) {
	s, err := buildBoard([]string{"lonely"}, []string{"a-b", "b-c"})
	if err != nil {
		t.Fatalf("buildBoard() error = %v", err)
	}

	want := []string{"a", "b", "c", "lonely"}
	if got := s.Vertices(); !equalStrings(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
	if got := len(s.Edges()); got != 2 {
		t.Errorf("len(Edges()) = %d, want 2", got)
	}
	if s.Degree("lonely") != 0 {
		t.Error("isolated vertex should have degree 0")
	}
}

func TestBuildBoardBadEdge(t *testing.T) {
	if _, err := buildBoard(nil, []string{"broken"}); err == nil {
		t.Error("buildBoard() should reject an edge without a dash")
	}
}

func TestBoardFlagsExactlyOneSource(t *testing.T) {
	c := newTestCLI()

	tests := []struct {
		name    string
		flags   boardFlags
		wantErr bool
	}{
		{"no source", boardFlags{}, true},
		{"file and sample", boardFlags{file: "x.json", sample: "connected"}, true},
		{"edges and sample", boardFlags{edges: []string{"a-b"}, sample: "connected"}, true},
		{"sample only", boardFlags{sample: "connected"}, false},
		{"edges only", boardFlags{edges: []string{"a-b"}}, false},
		{"unknown sample", boardFlags{sample: "nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.state(c)
			if (err != nil) != tt.wantErr {
				t.Errorf("state() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoardFlagsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	data := `{"vertices": ["a", "b"], "edges": [{"u": "a", "v": "b"}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestCLI()
	flags := boardFlags{file: path}
	s, err := flags.state(c)
	if err != nil {
		t.Fatalf("state() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestCheckSize(t *testing.T) {
	c := newTestCLI()
	c.Config.MaxVertices = 3

	small, err := buildBoard(nil, []string{"a-b"})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.checkSize(small); err != nil {
		t.Errorf("checkSize(2 vertices) = %v, want nil", err)
	}

	big, err := buildBoard([]string{"a", "b", "c", "d"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = c.checkSize(big)
	if err == nil {
		t.Fatal("checkSize(4 vertices) should fail with limit 3")
	}
	if !strings.Contains(err.Error(), "limit is 3") {
		t.Errorf("error %q should mention the limit", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
