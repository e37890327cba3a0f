package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// readNumber reads a line, trims it, and parses it as a signed decimal
// integer in invariant format (spec.md 4.4.5). A parse failure is fatal by
// design: the user is trusted to supply well-formed input, matching the
// source behavior this spec preserves.
func (l *Loop) readNumber() (int64, error) {
	line, err := l.console.ReadLine()
	if err != nil {
		return 0, err
	}

	trimmed := strings.TrimSpace(line)
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedNumber, trimmed, err)
	}
	return v, nil
}
