package term

import (
	"os"
)

// Setup sets up the terminal so that it is suitable for the Reader and Writer
// to use. It returns a function that can be used to restore the original
// terminal config.
func Setup(in, out *os.File) (func() error, error) {
	return setup(in, out)
}

// Sanitize sanitizes the terminal after an external command has executed, in
// case it has messed up the terminal configuration.
func Sanitize(in, out *os.File) {
	sanitize(in, out)
}
