package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// Date is a calendar date sent as "2006-01-02". RFC 3339 timestamps are accepted
// and truncated to their date. An empty string decodes to the zero Date, which
// clears optional dates on update.
type Date struct {
	time.Time
}

// NewDate wraps t, dropping its clock part.
func NewDate(t time.Time) Date {
	return Date{Time: domain.TruncateToDate(t)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(domain.DateLayout))
}

// Ptr returns the wrapped time as a pointer, or nil for a nil or zero Date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// ParseDate parses "2006-01-02" or RFC 3339 into a UTC date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return domain.TruncateToDate(t), nil
}

func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}
