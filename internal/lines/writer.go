package lines

import "strings"

// Options controls how indentation is rendered.
type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// Writer accumulates generated lines and tracks the indentation depth that
// block openers and closers move.
type Writer struct {
	opt         Options
	lines       []string
	indentLevel int
}

// NewWriter creates an empty line sink.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:   opt.withDefaults(),
		lines: make([]string, 0, 64),
	}
}

// AddLine appends a line. unindentBefore drops one level before the line is
// written (block closers); indentAfter raises one level once it is written
// (block openers). Empty lines carry no indentation.
func (w *Writer) AddLine(text string, unindentBefore, indentAfter bool) {
	if unindentBefore && w.indentLevel > 0 {
		w.indentLevel--
	}
	if text == "" {
		w.lines = append(w.lines, "")
	} else {
		w.lines = append(w.lines, w.indent()+text)
	}
	if indentAfter {
		w.indentLevel++
	}
}

func (w *Writer) indent() string {
	if w.indentLevel == 0 {
		return ""
	}
	if w.opt.UseTabs {
		return strings.Repeat("\t", w.indentLevel)
	}
	return strings.Repeat(" ", w.indentLevel*w.opt.IndentWidth)
}

// Depth returns the current indentation level.
func (w *Writer) Depth() int { return w.indentLevel }

// Len returns the number of lines written so far.
func (w *Writer) Len() int { return len(w.lines) }

// Lines returns the written lines. Do not modify the returned slice.
func (w *Writer) Lines() []string { return w.lines }

// String joins all lines with a trailing newline.
func (w *Writer) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte { return []byte(w.String()) }

// Reset drops all lines and returns to depth zero.
func (w *Writer) Reset() {
	w.lines = w.lines[:0]
	w.indentLevel = 0
}
