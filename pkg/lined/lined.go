// Package lined implements a line editor for terminal REPLs.
//
// The editor replaces the terminal's native line discipline: it puts the
// terminal in raw mode for the duration of a Read call, decodes the raw input
// into key events, maintains an in-memory buffer of the line being edited,
// and keeps the terminal display in sync with an incremental renderer.
// Prompts, syntax highlighting, completion and history are pluggable.
package lined

import "src.lined.sh/pkg/logutil"

var logger = logutil.GetLogger("[lined] ")
