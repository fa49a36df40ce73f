// Package render draws Node Kayles boards as node-link diagrams.
//
// # Overview
//
// This package produces undirected graph visualizations using Graphviz:
// vertices appear as circles connected by plain edges. When an analysis is
// supplied, winning moves are filled green, other vertices grey, and the
// diagram carries an N/P verdict badge - the same color language the
// interactive player uses.
//
// # Usage
//
// Convert a state to DOT format, then render to SVG or PNG:
//
//	dot := render.ToDOT(s, render.Options{Analysis: &res})
//	svg, err := render.SVG(dot)
//	png, err := render.PNG(dot)
//
// The generated DOT can also be saved and processed with external Graphviz
// tools.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/grundylab/kayles/pkg/game"
	"github.com/grundylab/kayles/pkg/observability"
)

// Fill colors for position-aware rendering.
const (
	colorWin     = "#27AE60" // winning move, mover takes this and wins
	colorNeutral = "#D5D8DC" // ordinary vertex
	colorBadgeN  = "#27AE60"
	colorBadgeP  = "#E74C3C"
)

// Options configures DOT generation.
type Options struct {
	// Title is drawn above the graph when non-empty.
	Title string

	// Analysis enables position-aware coloring: winning moves green,
	// everything else grey, plus an N/P badge under the graph.
	Analysis *game.Analysis
}

// ToDOT converts a state to Graphviz DOT format. The resulting DOT string
// can be rendered with [SVG] or [PNG].
func ToDOT(s *game.State, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=lightblue, fontsize=14, fixedsize=true, width=0.6];\n")

	if label := graphLabel(s, opts); label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=\"t\";\n  fontsize=18;\n", label)
	}
	buf.WriteString("\n")

	winning := make(map[string]bool)
	if opts.Analysis != nil {
		for _, v := range opts.Analysis.WinningMoves {
			winning[v] = true
		}
	}

	for _, v := range s.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", v)}
		if opts.Analysis != nil {
			fill := colorNeutral
			if winning[v] {
				fill = colorWin
			}
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// graphLabel builds the title line, appending the N/P verdict when an
// analysis is present.
func graphLabel(s *game.State, opts Options) string {
	parts := make([]string, 0, 2)
	if opts.Title != "" {
		parts = append(parts, opts.Title)
	}
	if opts.Analysis != nil {
		a := opts.Analysis
		if a.Position == game.PositionN {
			parts = append(parts, fmt.Sprintf("N-position (G=%d): player to move can win", a.Grundy))
		} else {
			parts = append(parts, "P-position (G=0): player to move loses")
		}
	}
	if s.IsTerminal() && opts.Title == "" {
		parts = append([]string{"empty board"}, parts...)
	}
	return strings.Join(parts, "\n")
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(string(format))

	out, err := doRender(dot, format)
	observability.Render().OnRenderComplete(string(format), len(out), time.Since(start), err)
	return out, err
}

func doRender(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
