package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// CustomDate chỉ lưu ngày (không giờ), dạng "YYYY-MM-DD"
type CustomDate struct {
	time.Time
}

func ParseDate(s string) (CustomDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
	}
	return CustomDate{t}, nil
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
