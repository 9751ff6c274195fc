package utils

import (
	"reflect"
	"strings"
	"time"
)

const (
	DateLayout       = "2006-01-02"
	displayDate      = "02/01/2006"
	displayDateTime  = "02/01/2006 15:04"
	identifierDigits = 11
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

func FromEpoch(rfc string) (int64, error) {
	t, err := time.Parse(time.RFC3339, rfc)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// ParseDate parses a calendar date in the "YYYY-MM-DD" form used by the
// appointment form.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// FormatDate turns "2024-01-15" into "15/01/2024". Anything that is not a
// calendar date is returned untouched.
func FormatDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format(displayDate)
}

// FormatDateTime renders epoch millis as "dd/mm/yyyy hh:mm" in UTC.
func FormatDateTime(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(displayDateTime)
}

// OnlyDigits drops every rune that is not an ASCII digit.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsIdentifier reports whether s carries exactly 11 digits once
// punctuation is stripped ("111.222.333-44" is fine).
func IsIdentifier(s string) bool {
	return len(OnlyDigits(s)) == identifierDigits
}

// FormatIdentifier renders an 11 digit identifier as "111.222.333-44".
// Other inputs are returned as they are.
func FormatIdentifier(id string) string {
	if len(id) != identifierDigits || OnlyDigits(id) != id {
		return id
	}
	return id[0:3] + "." + id[3:6] + "." + id[6:9] + "-" + id[9:11]
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
