package interp

import "strconv"

// parkMillerA and parkMillerM are the Park-Miller minimal-standard LCG
// parameters spec.md 4.4.3 names: x <- (a*x) mod m.
const (
	parkMillerA int64 = 16807
	parkMillerM int64 = 2147483647
)

// rand reads a count and writes that many lines of the Park-Miller LCG
// stream seeded from last_random_number, updating last_random_number to
// the stream's final state (spec.md 4.4.3).
func (l *Loop) rand() error {
	count, err := l.readNumber()
	if err != nil {
		return err
	}

	x := *l.state.LastRandomNumber
	for i := int64(0); i < count; i++ {
		if err := l.console.WriteLine(strconv.FormatInt(x, 10)); err != nil {
			return err
		}
		x = (parkMillerA * x) % parkMillerM
	}
	l.state.LastRandomNumber = &x

	return nil
}
