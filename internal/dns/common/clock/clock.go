package clock

import "time"

// Clock abstracts time access so zone timers can be tested without sleeping.
type Clock interface {
	Now() time.Time

	// Serial returns the current UNIX timestamp truncated to 32 bits, the
	// value a zone's SOA serial takes when an operator specifies "now"
	// (see utils.ResolveSerial). RFC 1912 recommends a YYYYMMDDnn serial
	// form instead, but a monotonically increasing UNIX timestamp also
	// satisfies SOA's "serial numbers only need to increase" requirement
	// and avoids a second clock-dependent formatting concern here.
	Serial() uint32
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

func (c RealClock) Serial() uint32 {
	return uint32(c.Now().Unix())
}

type MockClock struct {
	CurrentTime time.Time
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

func (c *MockClock) Serial() uint32 {
	return uint32(c.CurrentTime.Unix())
}

func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
