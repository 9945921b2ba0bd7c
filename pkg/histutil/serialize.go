package histutil

import (
	"bufio"
	"io"
	"strings"

	"src.lined.sh/pkg/store/storedefs"
)

// WriteAll writes all commands to w in the newline-delimited text format, one
// command per line. Commands containing newlines are rejected at insertion
// time (see ErrIllegalCmd), so every stored command occupies exactly one
// record.
func WriteAll(w io.Writer, cmds []storedefs.Cmd) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range cmds {
		bw.WriteString(cmd.Text)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadAll reads commands from r in the newline-delimited text format. An
// unterminated trailing record is regarded as the leftover of an interrupted
// write and skipped; the records read so far are still returned.
func ReadAll(r io.Reader) ([]storedefs.Cmd, error) {
	br := bufio.NewReader(r)
	var cmds []storedefs.Cmd
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			return cmds, nil
		}
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds,
			storedefs.Cmd{Text: strings.TrimSuffix(line, "\n"), Seq: len(cmds)})
	}
}
