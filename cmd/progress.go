package cmd

import (
	"fmt"
	"heckel.io/miniupload/util"
	"io"
	"strings"
	"sync/atomic"
)

// progressLineLen is the length of the progress line currently drawn on the terminal, or 0 if none is drawn
var progressLineLen uint32

// progressOutput draws the transfer progress on a single, repeatedly overwritten line. Once the transfer is
// done, the line is finalized with a newline, but only if a progress line was drawn before.
func progressOutput(w io.Writer, processed int64, total int64, done bool) {
	drawn := int(atomic.LoadUint32(&progressLineLen))
	if done && drawn == 0 {
		return
	}
	line := progressLine(processed, total, done)
	padded := line
	if len(line) < drawn {
		padded += strings.Repeat(" ", drawn-len(line))
	}
	if done {
		fmt.Fprintf(w, "\r%s\r\n", padded)
		atomic.StoreUint32(&progressLineLen, 0)
		return
	}
	fmt.Fprintf(w, "\r%s", padded)
	atomic.StoreUint32(&progressLineLen, uint32(len(line)))
}

// progressLine formats e.g. "512 B / 1.0 kB (50%)". If the total is unknown, only the processed bytes are
// shown, plus "(100%)" once the transfer is done.
func progressLine(processed int64, total int64, done bool) string {
	if total <= 0 {
		if done {
			return fmt.Sprintf("%s (100%%)", util.BytesToHuman(processed))
		}
		return util.BytesToHuman(processed)
	}
	percent := float64(processed) / float64(total) * 100
	if done {
		percent = 100
	}
	return fmt.Sprintf("%s / %s (%.f%%)", util.BytesToHuman(processed), util.BytesToHuman(total), percent)
}
