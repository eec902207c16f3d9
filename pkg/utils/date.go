package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DisplayDateLayout é o formato usado pelo front-end (DD-MM-YYYY)
	DisplayDateLayout = "02-01-2006"
	// APIDateLayout é o formato exigido pela Graph API (YYYY-MM-DD)
	APIDateLayout = time.DateOnly

	minYear = 1900
)

// DateParseError descreve por que uma data textual foi rejeitada
type DateParseError struct {
	Value  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// ParseDisplayDate converte uma data DD-MM-YYYY em uma data de calendário (meia-noite UTC).
// Apenas a forma canônica com zeros à esquerda é aceita, o que garante que
// FormatDisplayDate(ParseDisplayDate(s)) == s.
func ParseDisplayDate(value string) (time.Time, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, &DateParseError{Value: value, Reason: "expected DD-MM-YYYY"}
	}

	fields := make([]int, 3)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return time.Time{}, &DateParseError{Value: value, Reason: "date fields must be numeric"}
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, &DateParseError{Value: value, Reason: "date fields must be numeric"}
		}
		fields[i] = n
	}

	day, month, year := fields[0], fields[1], fields[2]

	if day < 1 || day > 31 {
		return time.Time{}, &DateParseError{Value: value, Reason: "day must be between 1 and 31"}
	}
	if month < 1 || month > 12 {
		return time.Time{}, &DateParseError{Value: value, Reason: "month must be between 1 and 12"}
	}
	if year < minYear {
		return time.Time{}, &DateParseError{Value: value, Reason: fmt.Sprintf("year must be %d or later", minYear)}
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return time.Time{}, &DateParseError{Value: value, Reason: "expected DD-MM-YYYY"}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return time.Time{}, &DateParseError{Value: value, Reason: "day does not exist in month"}
	}

	return date, nil
}

// FormatDisplayDate formata uma data como DD-MM-YYYY
func FormatDisplayDate(date time.Time) string {
	return date.Format(DisplayDateLayout)
}

// ParseAPIDate converte uma data YYYY-MM-DD da Graph API
func ParseAPIDate(value string) (time.Time, error) {
	date, err := time.Parse(APIDateLayout, value)
	if err != nil {
		return time.Time{}, &DateParseError{Value: value, Reason: "expected YYYY-MM-DD"}
	}

	return date, nil
}

// FormatAPIDate formata uma data como YYYY-MM-DD
func FormatAPIDate(date time.Time) string {
	return date.Format(APIDateLayout)
}

// CalendarDate descarta o horário e retorna a data à meia-noite UTC
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
