// Package diff renders line diffs of file content for previews.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind is the role of a line in a diff
type Kind byte

const (
	Equal  Kind = ' '
	Delete Kind = '-'
	Insert Kind = '+'
)

// DefaultContext is the number of unchanged lines shown around a change
const DefaultContext = 3

// Line is one line of a diff, without its terminator
type Line struct {
	Kind Kind
	Text string
	// NoEOL marks the last line of a file that has no terminator
	NoEOL bool
}

// Lines computes a line-level diff between before and after
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	for _, d := range diffs {
		kind := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = Delete
		case diffmatchpatch.DiffInsert:
			kind = Insert
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			lines = append(lines, Line{
				Kind:  kind,
				Text:  strings.TrimSuffix(text, "\n"),
				NoEOL: !strings.HasSuffix(text, "\n"),
			})
		}
	}
	return lines
}

// Hunk is a run of changed lines with the unchanged lines around it
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Header renders the @@ line of the hunk
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

// Hunks groups lines into hunks carrying up to context unchanged lines on
// each side. Changes closer than twice the context share a hunk.
func Hunks(lines []Line, context int) []Hunk {
	oldAt := make([]int, len(lines)+1)
	newAt := make([]int, len(lines)+1)
	oldNo, newNo := 1, 1
	for i, l := range lines {
		oldAt[i], newAt[i] = oldNo, newNo
		if l.Kind != Insert {
			oldNo++
		}
		if l.Kind != Delete {
			newNo++
		}
	}
	oldAt[len(lines)], newAt[len(lines)] = oldNo, newNo

	var hunks []Hunk
	for i := 0; i < len(lines); {
		if lines[i].Kind == Equal {
			i++
			continue
		}

		end := i
		for j := i; j < len(lines); {
			if lines[j].Kind != Equal {
				j++
				end = j
				continue
			}
			k := j
			for k < len(lines) && lines[k].Kind == Equal {
				k++
			}
			if k == len(lines) || k-j > 2*context {
				break
			}
			j = k
		}

		start := max(0, i-context)
		stop := min(len(lines), end+context)
		h := Hunk{OldStart: oldAt[start], NewStart: newAt[start], Lines: lines[start:stop]}
		for _, l := range h.Lines {
			if l.Kind != Insert {
				h.OldLines++
			}
			if l.Kind != Delete {
				h.NewLines++
			}
		}
		hunks = append(hunks, h)
		i = stop
	}
	return hunks
}

// Unified renders the change of the file at path in unified diff format.
// It returns an empty string when before and after are equal.
func Unified(path, before, after string) string {
	hunks := Hunks(Lines(before, after), DefaultContext)
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", path, path)
	for _, h := range hunks {
		b.WriteString(h.Header())
		b.WriteByte('\n')
		for _, l := range h.Lines {
			b.WriteByte(byte(l.Kind))
			b.WriteString(l.Text)
			b.WriteByte('\n')
			if l.NoEOL {
				b.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return b.String()
}
