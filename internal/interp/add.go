package interp

import "strconv"

// add reads two integer lines and writes their sum as a decimal integer
// (spec.md 4.4.1).
func (l *Loop) add() error {
	a, err := l.readNumber()
	if err != nil {
		return err
	}
	b, err := l.readNumber()
	if err != nil {
		return err
	}
	return l.console.WriteLine(strconv.FormatInt(a+b, 10))
}
