package clock

import "time"

// Clock is injected into every component that needs the current time; the
// core never reads the system clock directly.
type Clock interface {
	Now() time.Time
}

type Real struct {
	loc *time.Location
}

// NewReal builds a wall clock pinned to the marketplace timezone. An
// unknown zone falls back to UTC.
func NewReal(tz string) Real {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		loc = time.UTC
	}
	return Real{loc: loc}
}

func (r Real) Now() time.Time {
	return time.Now().In(r.loc)
}

// Frozen always reports the same instant. Test use only.
type Frozen struct {
	T time.Time
}

func (f Frozen) Now() time.Time {
	return f.T
}
