package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 2

type LineOp int

const (
	LineEqual LineOp = iota
	LineDelete
	LineInsert
)

type DiffLine struct {
	Op   LineOp
	Text string
}

// DiffLines computes a line-level diff between before and after.
func DiffLines(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCleanupMerge(dmp.DiffCleanupSemanticLossless(diffs))
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var result []DiffLine
	for _, d := range diffs {
		op := LineEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = LineDelete
		case diffmatchpatch.DiffInsert:
			op = LineInsert
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			result = append(result, DiffLine{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return result
}

// Diff writes a coloured line diff of before and after to w. Runs of
// unchanged lines are shortened to the lines next to a change.
func Diff(w io.Writer, name, before, after string) error {
	lines := DiffLines(before, after)

	changed := false
	for _, l := range lines {
		if l.Op != LineEqual {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	bold := color.New(color.Bold)
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	hunk := color.New(color.FgCyan)

	if _, err := bold.Fprintf(w, "--- %s\n+++ %s\n", name, name); err != nil {
		return err
	}

	near := func(i int) bool {
		for j := i - diffContext; j <= i+diffContext; j++ {
			if j >= 0 && j < len(lines) && lines[j].Op != LineEqual {
				return true
			}
		}
		return false
	}

	oldLine, newLine := 1, 1
	skipping := true
	for i, l := range lines {
		if l.Op == LineEqual && !near(i) {
			skipping = true
			oldLine++
			newLine++
			continue
		}
		if skipping {
			if _, err := hunk.Fprintf(w, "@@ -%d +%d @@\n", oldLine, newLine); err != nil {
				return err
			}
			skipping = false
		}

		var err error
		switch l.Op {
		case LineDelete:
			_, err = removed.Fprintf(w, "-%s\n", l.Text)
			oldLine++
		case LineInsert:
			_, err = added.Fprintf(w, "+%s\n", l.Text)
			newLine++
		default:
			_, err = fmt.Fprintf(w, " %s\n", l.Text)
			oldLine++
			newLine++
		}
		if err != nil {
			return err
		}
	}
	return nil
}
