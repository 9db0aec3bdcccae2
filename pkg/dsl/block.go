package dsl

import (
	"fmt"
	"strings"
)

// indentUnit is one level of indentation.
const indentUnit = "    "

// Writer accumulates lines at a tracked indentation depth.
// The zero value is ready to use.
type Writer struct {
	lines []string
	depth int
}

// Depth returns the current indentation depth.
func (w *Writer) Depth() int { return w.depth }

// Indent increases the depth by one.
func (w *Writer) Indent() { w.depth++ }

// Unindent decreases the depth by one. It never goes below zero.
func (w *Writer) Unindent() {
	if w.depth > 0 {
		w.depth--
	}
}

// AddLine appends text at the current depth.
func (w *Writer) AddLine(text string) {
	w.lines = append(w.lines, strings.Repeat(indentUnit, w.depth)+text)
}

// AddLinef formats and appends a line at the current depth.
func (w *Writer) AddLinef(format string, args ...any) {
	w.AddLine(fmt.Sprintf(format, args...))
}

// AddEmptyLine appends a blank line regardless of depth.
func (w *Writer) AddEmptyLine() {
	w.lines = append(w.lines, "")
}

// Open appends "<header> {" and indents.
func (w *Writer) Open(header string) {
	w.AddLine(header + " {")
	w.Indent()
}

// Close unindents and appends "}".
func (w *Writer) Close() {
	w.Unindent()
	w.AddLine("}")
}

// AddBlock appends an independently rendered fragment, re-deriving its
// indentation from brace depth relative to the current depth.
func (w *Writer) AddBlock(block string) {
	for _, l := range reindent(block) {
		if l.text == "" {
			w.AddEmptyLine()
			continue
		}
		w.lines = append(w.lines, strings.Repeat(indentUnit, w.depth+l.depth)+l.text)
	}
}

// Len returns the number of lines written.
func (w *Writer) Len() int { return len(w.lines) }

// String joins all lines with newlines. There is no trailing newline.
func (w *Writer) String() string {
	return strings.Join(w.lines, "\n")
}

// ReindentByBraceDepth discards the existing indentation of block and
// re-indents every line by the number of braces open before it. Leading and
// trailing blank lines are dropped.
func ReindentByBraceDepth(block string) string {
	var w Writer
	w.AddBlock(block)
	return w.String()
}

type depthLine struct {
	text  string
	depth int
}

func reindent(block string) []depthLine {
	raw := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	for len(raw) > 0 && strings.TrimSpace(raw[0]) == "" {
		raw = raw[1:]
	}
	for len(raw) > 0 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		raw = raw[:len(raw)-1]
	}

	out := make([]depthLine, 0, len(raw))
	depth := 0
	for _, line := range raw {
		text := strings.TrimSpace(line)
		if text == "" {
			out = append(out, depthLine{})
			continue
		}
		opens, closes, leading := countBraces(text)
		d := depth - leading
		if d < 0 {
			d = 0
		}
		out = append(out, depthLine{text: text, depth: d})
		depth += opens - closes
		if depth < 0 {
			depth = 0
		}
	}
	return out
}

// countBraces counts braces outside string literals. leading is the number
// of closing braces before any other token, which dedent the line itself.
func countBraces(line string) (opens, closes, leading int) {
	inString, escaped, atStart := false, false, true
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
			atStart = false
		case inString:
		case r == '{':
			opens++
			atStart = false
		case r == '}':
			closes++
			if atStart {
				leading++
			}
		case r == ' ' || r == '\t':
		default:
			atStart = false
		}
	}
	return opens, closes, leading
}
