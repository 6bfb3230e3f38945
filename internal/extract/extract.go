package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Markers emitted by the converter around path geometry.
const (
	pathStartMarker  = "<path"
	groupCloseMarker = "</g>"
)

// Copy streams the marker-delimited path regions of src to dst and
// reports how many lines were written.
//
// Both markers are evaluated before the write check, in order: a line
// containing the path-start marker is always copied, while a line
// containing the group-close marker is never copied, even when it also
// starts a path. Lines between the two are copied verbatim, line
// endings included. A region left open at end of input is copied to the
// end; input without markers yields no output.
func Copy(dst io.Writer, src io.Reader) (int, error) {
	// Path data attributes routinely exceed bufio.Scanner's default
	// token limit, so read lines through a plain reader instead.
	reader := bufio.NewReader(src)
	lines := 0
	copying := false
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if strings.Contains(line, pathStartMarker) {
				copying = true
			}
			if strings.Contains(line, groupCloseMarker) {
				copying = false
			}
			if copying {
				if _, werr := io.WriteString(dst, line); werr != nil {
					return lines, fmt.Errorf("write path line: %w", werr)
				}
				lines++
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, fmt.Errorf("read converted document: %w", err)
		}
	}
}
