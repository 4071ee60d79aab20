// Package directive writes build-tool directives to the directive channel.
//
// The channel is the build script's standard output. Once any
// rerun-if-changed line is printed, the build tool stops watching the whole
// package and only watches the emitted paths.
package directive

import (
	"fmt"
	"io"
)

const (
	prefix         = "cargo:"
	rerunIfChanged = "rerun-if-changed"
)

// Emitter writes directive lines to an output stream.
type Emitter struct {
	out io.Writer
}

// NewEmitter creates an Emitter writing to out.
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{out: out}
}

// RerunIfChanged restricts change detection to path.
// Every call writes its own line; repeated calls accumulate.
func (e *Emitter) RerunIfChanged(path string) {
	e.emit(Line(path))
}

// emit writes a single directive line. Write errors are ignored: the build
// tool owns the stream and there is nothing useful to do on failure.
func (e *Emitter) emit(line string) {
	_, _ = fmt.Fprintln(e.out, line)
}

// Line formats a rerun-if-changed directive for path without the newline.
func Line(path string) string {
	return formatDirective(rerunIfChanged, path)
}

func formatDirective(key, value string) string {
	return prefix + key + "=" + value
}
