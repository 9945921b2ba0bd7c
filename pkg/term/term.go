// Package term provides functionality for working with terminals: reading
// and decoding input events, building and delta-rendering screen buffers,
// and setting up and restoring terminal attributes.
package term

import "src.lined.sh/pkg/logutil"

var logger = logutil.GetLogger("[term] ")
