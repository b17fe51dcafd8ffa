// Package format provides the stateless input-shape predicates used by the
// validation engine. Every predicate is a pure string -> bool function with no
// locale awareness; callers needing localized messages attach them at the rule
// level.
package format

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// IsEmail reports whether the value looks like a mailbox address with a dotted
// domain and a TLD of at least two letters.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsURL reports whether the value is an absolute http or https URL. Other
// schemes (ftp, mailto) and schemeless strings fail.
func IsURL(value string) bool {
	return urlPattern.MatchString(value)
}

// IsPhone reports whether the value is at least ten characters drawn from
// digits, spaces, hyphens, and parentheses, with an optional leading '+'.
func IsPhone(value string) bool {
	return phonePattern.MatchString(value)
}

// IsDate reports whether the value is a calendar-valid YYYY-MM-DD date. The
// lexical shape is checked first, then month and day ranges including the
// Gregorian leap-year rule for February.
func IsDate(value string) bool {
	if !datePattern.MatchString(value) {
		return false
	}

	year, _ := strconv.Atoi(value[0:4])
	month, _ := strconv.Atoi(value[5:7])
	day, _ := strconv.Atoi(value[8:10])

	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(year, month)
}

// IsTime reports whether the value is a valid HH:MM or HH:MM:SS clock time.
// Seconds default to zero when omitted.
func IsTime(value string) bool {
	if !timePattern.MatchString(value) {
		return false
	}

	hour, _ := strconv.Atoi(value[0:2])
	minute, _ := strconv.Atoi(value[3:5])
	second := 0
	if len(value) == 8 {
		second, _ = strconv.Atoi(value[6:8])
	}

	return hour < 24 && minute < 60 && second < 60
}

// IsNumber reports whether the value parses as a 64-bit float. Negative and
// decimal values pass; empty strings, multiple dots, and thousands separators
// fail.
func IsNumber(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// IsInteger reports whether the value parses as a 64-bit signed integer.
// Decimals and empty strings fail; a leading '-' is accepted.
func IsInteger(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
