package contract

import (
	"encoding/json"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// dateLayouts are tried in order when coercing a string date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// coerceInt converts a JSON-decoded value to an int64, rejecting fractional
// numbers. encoding/json decodes numbers as float64 unless UseNumber is set,
// so both representations are handled.
func coerceInt(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %s", n.String())
		}
		return i, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

// coerceDate normalizes ISO 8601 strings and numeric epoch timestamps to a
// UTC time.Time. Numeric values above 1e12 are treated as milliseconds.
func coerceDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid date: %q", d)
	case time.Time:
		return d.UTC(), nil
	default:
		epoch, err := coerceInt(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date: %v", v)
		}
		if epoch > 1e12 {
			return time.UnixMilli(epoch).UTC(), nil
		}
		return time.Unix(epoch, 0).UTC(), nil
	}
}

// validEmail reports whether s is an addr-spec style email address.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms like `Name <a@b.c>`; the wire value is bare.
	return addr.Address == s
}

// validURL reports whether s is an absolute URL with a scheme and host.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// validUUID reports whether s is a canonical UUID string.
func validUUID(s string) bool {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return parsed.String() == s
}
