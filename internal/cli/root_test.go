package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/grundylab/kayles/pkg/graphio"
)

// execute runs the CLI with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	c := New(&out, &errOut, log.FatalLevel)

	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := newTestCLI()
	root := c.RootCommand()

	want := []string{"analyze", "play", "random", "grid", "draw", "rules", "completion"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestAnalyzeInlineEdges(t *testing.T) {
	// P_3 is an N-position with the middle vertex as the only winning move.
	out, err := execute(t, "analyze", "--edge", "a-b", "--edge", "b-c")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(out, "N-position") {
		t.Errorf("output should contain the verdict, got:\n%s", out)
	}
	if !strings.Contains(out, "b") {
		t.Errorf("output should list the winning move, got:\n%s", out)
	}
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "analyze", "--json", "--edge", "a-b", "--edge", "b-c")
	if err != nil {
		t.Fatalf("analyze --json failed: %v", err)
	}

	var report graphio.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if report.Analysis.Grundy != 2 {
		t.Errorf("Grundy = %d, want 2", report.Analysis.Grundy)
	}
	if got := report.Analysis.WinningMoves; len(got) != 1 || got[0] != "b" {
		t.Errorf("WinningMoves = %v, want [b]", got)
	}
}

func TestAnalyzeRequiresBoard(t *testing.T) {
	if _, err := execute(t, "analyze"); err == nil {
		t.Error("analyze without a board source should fail")
	}
}

func TestAnalyzeRejectsOversizedBoard(t *testing.T) {
	args := []string{"analyze", "--max-vertices", "2"}
	for _, e := range []string{"a-b", "b-c", "c-d"} {
		args = append(args, "--edge", e)
	}
	if _, err := execute(t, args...); err == nil {
		t.Error("board above the vertex ceiling should be rejected")
	}
}

func TestAnalyzeSampleBoards(t *testing.T) {
	for _, sample := range []string{"connected", "disconnected"} {
		t.Run(sample, func(t *testing.T) {
			out, err := execute(t, "analyze", "--sample", sample, "--json")
			if err != nil {
				t.Fatalf("analyze --sample %s failed: %v", sample, err)
			}
			var report graphio.Report
			if err := json.Unmarshal([]byte(out), &report); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if len(report.Graph.Vertices) == 0 {
				t.Error("report should echo the board")
			}
		})
	}
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	if !strings.Contains(out, "Node Kayles") {
		t.Error("rules output should name the game")
	}
}

func TestGridCommand(t *testing.T) {
	out, err := execute(t, "grid", "--size", "4")
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	if !strings.Contains(out, "Grundy") {
		t.Errorf("grid output should list path values, got:\n%s", out)
	}
}

func TestGridRejectsBadSize(t *testing.T) {
	if _, err := execute(t, "grid", "--size", "0"); err == nil {
		t.Error("grid --size 0 should fail")
	}
	if _, err := execute(t, "grid", "--size", "99"); err == nil {
		t.Error("grid --size 99 should fail")
	}
}

func TestRandomDeterministicSeed(t *testing.T) {
	out1, err := execute(t, "random", "--seed", "7", "--analyze=false")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	out2, err := execute(t, "random", "--seed", "7", "--analyze=false")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	if out1 != out2 {
		t.Error("same seed should generate the same board")
	}
	if out1 == "" {
		t.Error("random should print the generated board")
	}
}

func TestDrawDOT(t *testing.T) {
	out, err := execute(t, "draw", "--format", "dot", "--edge", "a-b", "--annotate=false")
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if !strings.Contains(out, "graph G {") {
		t.Errorf("draw --format dot should emit DOT, got:\n%s", out)
	}
}
