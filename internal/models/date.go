package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmvillota/product-console/pkg/dates"
)

// Date is used to seamlessly convert between time.Time and the API's
// YYYY-MM-DD wire format.
//
//nolint:recvcheck // pointer receiver required by json.Unmarshaler
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate builds a Date from a form-input string.
func ParseDate(value string) (Date, bool) {
	t, ok := dates.Parse(value)
	if !ok {
		return Date{}, false
	}
	return Date{Time: t}, true
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", dates.FormatForInput(d.Time))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	t, ok := dates.Parse(s)
	if !ok {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return dates.FormatForInput(d.Time)
}
