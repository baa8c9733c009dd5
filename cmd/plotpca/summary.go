// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/plotpca/pipeline"
)

var styles = struct {
	title lipgloss.Style
	head  lipgloss.Style
	cell  lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
}{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
	head:  lipgloss.NewStyle().Bold(true).PaddingRight(2),
	cell:  lipgloss.NewStyle().PaddingRight(2),
	muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
	ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
	err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
}

// renderSummary lists one line per processed dataset. pathOf maps a title to
// the chart file it was written to.
func renderSummary(outs []pipeline.Outcome, pathOf func(string) string) string {
	var b strings.Builder
	plotted := 0
	for _, o := range outs {
		if o.Plotted() {
			plotted++
		}
	}
	b.WriteString(styles.title.Render(fmt.Sprintf("plotpca: %d chart(s)", plotted)))
	b.WriteByte('\n')
	if len(outs) == 0 {
		return b.String()
	}

	header := []string{"dataset", "kept", "dropped", "PC1", "PC2", "file"}
	rows := [][]string{header}
	for _, o := range outs {
		var ev []float64
		if o.Result != nil {
			ev = o.Result.ExplainedVariance()
		}
		file := pathOf(o.Title)
		if !o.Plotted() {
			file = "skipped: " + o.Skipped
		}
		rows = append(rows, []string{
			o.Title,
			fmt.Sprint(o.Kept),
			fmt.Sprint(o.Dropped),
			percent(ev, 0),
			percent(ev, 1),
			file,
		})
	}

	widths := make([]int, len(header))
	for _, r := range rows {
		for j, c := range r {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, c := range r {
			st := styles.cell
			if i == 0 {
				st = styles.head
			}
			if j == len(r)-1 && i > 0 {
				st = styles.muted
				if !outs[i-1].Plotted() {
					st = styles.err
				}
			}
			cells[j] = st.Width(widths[j] + 2).Render(c)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteByte('\n')
	}

	return b.String()
}

func percent(ev []float64, i int) string {
	if i >= len(ev) || math.IsNaN(ev[i]) {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*ev[i])
}
