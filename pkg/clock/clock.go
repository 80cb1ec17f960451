package clock

import "time"

// Layout is both lexicographically and chronologically sortable at
// second granularity.
const Layout = "2006-01-02 15:04:05"

// Clock produces the timestamp recorded on a message at send time.
type Clock interface {
	Now() string
}

// System reads the wall clock.
type System struct{}

func (System) Now() string {
	return time.Now().Format(Layout)
}

// Fixed always returns the same timestamp. Tests use it to make
// message rows deterministic.
type Fixed string

func (f Fixed) Now() string {
	return string(f)
}
