package codec

import (
	"fmt"
	"math"
	"time"
)

// Time is a tIME chunk: the last modification time, in UTC.
type Time struct {
	Year   uint16
	Month  uint8 // 1-12
	Day    uint8 // 1-31
	Hour   uint8 // 0-23
	Minute uint8 // 0-59
	Second uint8 // 0-60, 60 for leap seconds
}

const timeLen = 7

// FromTime converts t to a tIME value. Years outside 0..65535 cannot be
// represented.
func FromTime(t time.Time) (*Time, error) {
	t = t.UTC()
	if t.Year() < 0 || t.Year() > math.MaxUint16 {
		return nil, fmt.Errorf("chunk: tIME year %d outside 0..%d", t.Year(), math.MaxUint16)
	}
	return &Time{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
	}, nil
}

// AsTime converts the value to a time.Time in UTC.
func (t *Time) AsTime() time.Time {
	return time.Date(int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second), 0, time.UTC)
}

func (*Time) ChunkType() ChunkType { return TypeTIME }

func (t *Time) valid() error {
	if t.Month < 1 || t.Month > 12 || t.Day < 1 || int(t.Day) > daysIn(t.Year, t.Month) ||
		t.Hour > 23 || t.Minute > 59 || t.Second > 60 {
		return fmt.Errorf("chunk: tIME %04d-%02d-%02d %02d:%02d:%02d out of range",
			t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	}
	return nil
}

// daysIn returns the number of days in month m of year y.
func daysIn(y uint16, m uint8) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(int(y), time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseTime(p *Parser) (Chunk, error) {
	if p.Len() != timeLen {
		return nil, &LengthError{Type: TypeTIME, Got: p.Len(), Want: timeLen}
	}
	var t Time
	t.Year, _ = p.U16()
	t.Month, _ = p.U8()
	t.Day, _ = p.U8()
	t.Hour, _ = p.U8()
	t.Minute, _ = p.U8()
	t.Second, _ = p.U8()
	if err := t.valid(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Time) write(e *Enc) error {
	if err := t.valid(); err != nil {
		return err
	}
	if err := e.Prepare(timeLen, TypeTIME); err != nil {
		return err
	}
	e.U16(t.Year)
	e.U8(t.Month)
	e.U8(t.Day)
	e.U8(t.Hour)
	e.U8(t.Minute)
	e.U8(t.Second)
	return e.WriteCRC()
}
