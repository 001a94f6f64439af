// Package report renders reconciliation results for terminal display.
// Everything here goes to stdout; diagnostics stay on the logger.
package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/typmgr/fontctl/internal/fontset"
	"github.com/typmgr/fontctl/internal/reconcile"
)

// ANSI color codes
const (
	colorReset       = "\033[0m"
	colorGreen       = "\033[32m"
	colorBrightGreen = "\033[92m"
	colorYellow      = "\033[33m"
	colorRed         = "\033[31m"
	colorBlue        = "\033[34m"
	colorCyan        = "\033[36m"
	colorBold        = "\033[1m"
)

// colorize returns colored text if colors are enabled
func colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + colorReset
}

// statusColor maps each font status to its display color.
func statusColor(s reconcile.Status) string {
	switch s {
	case reconcile.StatusEmbedded:
		return colorBrightGreen
	case reconcile.StatusRedundant:
		return colorBlue
	case reconcile.StatusRepairable:
		return colorYellow
	case reconcile.StatusUnrepairable:
		return colorRed
	default:
		return colorGreen
	}
}

// statusMark is the single-character marker shown before each font.
func statusMark(s reconcile.Status) string {
	switch s {
	case reconcile.StatusRepairable:
		return "!"
	case reconcile.StatusUnrepairable:
		return "✗"
	case reconcile.StatusRedundant:
		return "~"
	default:
		return "✓"
	}
}

// Options controls report rendering.
type Options struct {
	UseColor bool
	FontDir  string
	Library  string // human-readable library description, may be empty
}

// Render writes the full status report: header, per-font lines for every
// font in required ∪ current, a summary line, and a legend. Fonts appear in
// the font total order.
func Render(w io.Writer, sets reconcile.Sets, lib fontset.PathMap, opts Options) error {
	header := colorize("Font Status", colorBold+colorBlue, opts.UseColor)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	separator := colorize("==================================================", colorCyan, opts.UseColor)
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return fmt.Errorf("failed to write separator: %v", err)
	}
	if opts.FontDir != "" {
		if _, err := fmt.Fprintf(w, "Font directory: %s\n", opts.FontDir); err != nil {
			return fmt.Errorf("failed to write font directory: %v", err)
		}
	}
	if opts.Library != "" {
		if _, err := fmt.Fprintf(w, "Font library:   %s\n", opts.Library); err != nil {
			return fmt.Errorf("failed to write library line: %v", err)
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return fmt.Errorf("failed to write newline: %v", err)
	}

	all := union(sets.Required, sets.Current).Fonts()
	if len(all) == 0 {
		if _, err := fmt.Fprintln(w, "No fonts required and none present."); err != nil {
			return fmt.Errorf("failed to write empty notice: %v", err)
		}
		return nil
	}

	nameWidth := 0
	for _, f := range all {
		if fw := runewidth.StringWidth(f.String()); fw > nameWidth {
			nameWidth = fw
		}
	}

	counts := make(map[reconcile.Status]int)
	for _, f := range all {
		status := sets.Classify(f, lib)
		counts[status]++

		name := runewidth.FillRight(f.String(), nameWidth)
		line := fmt.Sprintf("%s %s  %s", statusMark(status), name, status)
		if _, err := fmt.Fprintln(w, colorize(line, statusColor(status), opts.UseColor)); err != nil {
			return fmt.Errorf("failed to write font line: %v", err)
		}
	}

	if _, err := fmt.Fprintln(w, ""); err != nil {
		return fmt.Errorf("failed to write newline: %v", err)
	}
	if err := renderLegend(w, opts.UseColor); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d required, %d missing (%d repairable), %d redundant",
		sets.Required.Len(),
		sets.Missing.Len(),
		counts[reconcile.StatusRepairable],
		counts[reconcile.StatusRedundant])
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return fmt.Errorf("failed to write summary: %v", err)
	}

	if counts[reconcile.StatusRepairable] > 0 {
		hint := colorize("Run 'fontctl update' to install repairable fonts.", colorYellow, opts.UseColor)
		if _, err := fmt.Fprintln(w, hint); err != nil {
			return fmt.Errorf("failed to write hint: %v", err)
		}
	}
	return nil
}

// renderLegend explains the status marks and colors.
func renderLegend(w io.Writer, useColor bool) error {
	entries := []struct {
		status reconcile.Status
		desc   string
	}{
		{reconcile.StatusPresent, "required and present in the project"},
		{reconcile.StatusEmbedded, "required and built into the engine"},
		{reconcile.StatusRedundant, "present but not required"},
		{reconcile.StatusRepairable, "missing, available in the library"},
		{reconcile.StatusUnrepairable, "missing, not in the library"},
	}

	if _, err := fmt.Fprintln(w, "Legend:"); err != nil {
		return fmt.Errorf("failed to write legend header: %v", err)
	}
	for _, e := range entries {
		name := runewidth.FillRight(e.status.String(), 12)
		line := fmt.Sprintf("  %s %s %s", statusMark(e.status), name, e.desc)
		if _, err := fmt.Fprintln(w, colorize(line, statusColor(e.status), useColor)); err != nil {
			return fmt.Errorf("failed to write legend line: %v", err)
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return fmt.Errorf("failed to write newline: %v", err)
	}
	return nil
}

// RenderLibrary writes the fonts a resolved library offers, one per line in
// the font total order, with the path each identity resolves to.
func RenderLibrary(w io.Writer, lib fontset.PathMap, opts Options) error {
	header := colorize("Font Library", colorBold+colorBlue, opts.UseColor)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	separator := colorize("==================================================", colorCyan, opts.UseColor)
	if _, err := fmt.Fprintln(w, separator); err != nil {
		return fmt.Errorf("failed to write separator: %v", err)
	}

	fonts := lib.Fonts()
	if len(fonts) == 0 {
		if _, err := fmt.Fprintln(w, "Library is empty."); err != nil {
			return fmt.Errorf("failed to write empty notice: %v", err)
		}
		return nil
	}

	nameWidth := 0
	for _, f := range fonts {
		if fw := runewidth.StringWidth(f.String()); fw > nameWidth {
			nameWidth = fw
		}
	}
	for _, f := range fonts {
		p, _ := lib.Lookup(f)
		name := runewidth.FillRight(f.String(), nameWidth)
		if _, err := fmt.Fprintf(w, "%s  %s\n", name, p); err != nil {
			return fmt.Errorf("failed to write library line: %v", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n%d font(s) available\n", len(fonts)); err != nil {
		return fmt.Errorf("failed to write summary: %v", err)
	}
	return nil
}

func union(a, b fontset.Set) fontset.Set {
	out := fontset.NewSet()
	for _, f := range a.Fonts() {
		out.Insert(f)
	}
	for _, f := range b.Fonts() {
		out.Insert(f)
	}
	return out
}
