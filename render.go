// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/arbor/console"
)

const (
	// deeper trees are listed level by level instead of drawn
	maxDrawDepth = console.MaxSlotDepth
	minSlotWidth = 4
)

// renderSnapshot draws a structure for the canvas viewport.
func renderSnapshot(snap console.Snapshot, styles *Styles, showNotes bool) string {
	switch s := snap.(type) {
	case console.TreeSnapshot:
		return renderTree(s, styles, showNotes)
	case console.SequenceSnapshot:
		return renderSequence(s, styles)
	case console.TableSnapshot:
		return renderTable(s, styles)
	}
	return ""
}

// renderTree centres every node over the slots its subtree could occupy, so
// a parent always sits midway between its children.
func renderTree(s console.TreeSnapshot, styles *Styles, showNotes bool) string {
	if len(s.Rows) == 0 {
		return styles.Muted.Render("(empty tree)")
	}
	if len(s.Rows) > maxDrawDepth {
		return renderTreeLevels(s, styles, showNotes)
	}

	unit := minSlotWidth
	for _, row := range s.Rows {
		for _, c := range row {
			if c == nil {
				continue
			}
			unit = max(unit, lipgloss.Width(c.Label)+2)
			if showNotes {
				unit = max(unit, lipgloss.Width(c.Note)+1)
			}
		}
	}
	// even slots keep child centres on whole columns
	if unit%2 == 1 {
		unit++
	}

	leaves := 1 << (len(s.Rows) - 1)
	var lines []string
	for d, row := range s.Rows {
		span := unit * (leaves >> d)

		var nodes, notes strings.Builder
		for _, c := range row {
			if c == nil {
				nodes.WriteString(strings.Repeat(" ", span))
				notes.WriteString(strings.Repeat(" ", span))
				continue
			}
			style := styles.Node
			if c.Selected {
				style = styles.NodeSelected
			}
			nodes.WriteString(lipgloss.PlaceHorizontal(span, lipgloss.Center, style.Render(c.Label)))
			notes.WriteString(lipgloss.PlaceHorizontal(span, lipgloss.Center, styles.Muted.Render(c.Note)))
		}

		lines = append(lines, strings.TrimRight(nodes.String(), " "))
		if showNotes {
			lines = append(lines, strings.TrimRight(notes.String(), " "))
		}
		if d+1 < len(s.Rows) {
			lines = append(lines, styles.Connector.Render(connectors(row, s.Rows[d+1], span)))
		}
	}
	return strings.Join(lines, "\n")
}

// connectors draws the branch line between a row of parents and their
// children, e.g. "  ┌─┴─┐".
func connectors(parents, children []*console.Cell, span int) string {
	line := []rune(strings.Repeat(" ", len(parents)*span))
	half := span / 2

	for i, p := range parents {
		if p == nil {
			continue
		}
		var left, right *console.Cell
		if 2*i < len(children) {
			left = children[2*i]
		}
		if 2*i+1 < len(children) {
			right = children[2*i+1]
		}

		pc := i*span + half
		lc := 2*i*half + half/2
		rc := (2*i+1)*half + half/2

		if left != nil {
			line[lc] = '┌'
			for x := lc + 1; x < pc; x++ {
				line[x] = '─'
			}
		}
		if right != nil {
			line[rc] = '┐'
			for x := pc + 1; x < rc; x++ {
				line[x] = '─'
			}
		}
		switch {
		case left != nil && right != nil:
			line[pc] = '┴'
		case left != nil:
			line[pc] = '┘'
		case right != nil:
			line[pc] = '└'
		}
	}
	return strings.TrimRight(string(line), " ")
}

func renderTreeLevels(s console.TreeSnapshot, styles *Styles, showNotes bool) string {
	lines := make([]string, 0, len(s.Rows))
	for d, row := range s.Rows {
		var parts []string
		for _, c := range row {
			if c == nil {
				continue
			}
			style := styles.Node
			if c.Selected {
				style = styles.NodeSelected
			}
			part := style.Render(c.Label)
			if showNotes && c.Note != "" {
				part += styles.Muted.Render("(" + c.Note + ")")
			}
			parts = append(parts, part)
		}
		lines = append(lines, fmt.Sprintf("%s %s", styles.Muted.Render(fmt.Sprintf("depth %2d:", d)), strings.Join(parts, " ")))
	}
	return strings.Join(lines, "\n")
}

func renderSequence(s console.SequenceSnapshot, styles *Styles) string {
	if len(s.Items) == 0 {
		switch s.Layout {
		case console.Vertical:
			return styles.Muted.Render("(empty stack)")
		case console.Horizontal:
			return styles.Muted.Render("(empty queue)")
		}
		return styles.Muted.Render("head → nil")
	}

	width := 0
	for _, item := range s.Items {
		width = max(width, lipgloss.Width(item))
	}
	box := func(i int) string {
		style := styles.Cell
		if i == s.Selected {
			style = styles.CellSelected
		}
		if s.Layout == console.Vertical {
			style = style.Width(width + 2).Align(lipgloss.Center)
		}
		return style.Render(s.Items[i])
	}

	switch s.Layout {
	case console.Vertical:
		boxes := make([]string, 0, len(s.Items))
		for i := len(s.Items) - 1; i >= 0; i-- {
			boxes = append(boxes, box(i))
		}
		stack := lipgloss.JoinVertical(lipgloss.Left, boxes...)
		return lipgloss.JoinHorizontal(lipgloss.Top, stack, styles.Muted.Render(" ← top"))

	case console.Horizontal:
		parts := []string{styles.Muted.Render("front → ")}
		for i := range s.Items {
			parts = append(parts, box(i))
		}
		parts = append(parts, styles.Muted.Render(" ← back"))
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	parts := []string{styles.Muted.Render("head → ")}
	for i := range s.Items {
		parts = append(parts, box(i), styles.Connector.Render(" → "))
	}
	parts = append(parts, styles.Muted.Render("nil"))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func renderTable(s console.TableSnapshot, styles *Styles) string {
	digits := len(fmt.Sprint(len(s.Buckets) - 1))
	lines := make([]string, 0, len(s.Buckets))
	for b, chain := range s.Buckets {
		head := styles.Muted.Render(fmt.Sprintf("[%*d]", digits, b))
		if len(chain) == 0 {
			lines = append(lines, head+styles.Connector.Render(" ─ ")+styles.Muted.Render("∅"))
			continue
		}
		parts := make([]string, len(chain))
		for i, e := range chain {
			style := styles.Node
			if b == s.SelectedBucket && i == s.SelectedSlot {
				style = styles.NodeSelected
			}
			parts[i] = style.Render(fmt.Sprintf("%s: %s", e.Key, e.Value))
		}
		lines = append(lines, head+styles.Connector.Render(" ─ ")+strings.Join(parts, styles.Connector.Render(" → ")))
	}
	return strings.Join(lines, "\n")
}
