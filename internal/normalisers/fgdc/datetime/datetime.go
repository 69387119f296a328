// Package datetime detects the date and time encodings found in FGDC
// metadata and converts them to the catalog's canonical forms.
//
// Canonical dates are YYYY-MM-DD, YYYY-MM or YYYY. Canonical times are
// HH:MM:SS or HH:MM; fractional seconds and UTC offsets are dropped.
package datetime

import (
	"regexp"
	"strconv"
	"time"
)

// DateFormat identifies a recognised date encoding.
type DateFormat int

// Date formats, in detection priority order.
const (
	DateUnknown      DateFormat = iota
	DateYYYYMMDD                // 20230615
	DateMMDDYYYY                // 06152023
	DateYearMonthDay            // 2023-06-15, 2023-6-5
	DateYYYYMM                  // 202306
	DateMMYYYY                  // 062023
	DateYearMonth               // 2023-06, 2023-6
	DateYear                    // 2023
)

// String returns a short layout name for logging.
func (f DateFormat) String() string {
	switch f {
	case DateYYYYMMDD:
		return "YYYYMMDD"
	case DateMMDDYYYY:
		return "MMDDYYYY"
	case DateYearMonthDay:
		return "YYYY-MM-DD"
	case DateYYYYMM:
		return "YYYYMM"
	case DateMMYYYY:
		return "MMYYYY"
	case DateYearMonth:
		return "YYYY-MM"
	case DateYear:
		return "YYYY"
	default:
		return "unknown"
	}
}

// TimeFormat identifies a recognised time encoding.
type TimeFormat int

// Time formats, in enumeration order. Detection tests all of them and
// the last match wins.
const (
	TimeUnknown           TimeFormat = iota
	TimeCompactFracOffset            // 14300012-0500
	TimeColonFracOffset              // 14:30:00.12-0500
	TimeCompactFrac                  // 14300012
	TimeColonFrac                    // 14:30:00.12
	TimeCompactOffset                // 143000-0500
	TimeColonOffset                  // 14:30:00-0500
	TimeCompactSeconds               // 143000
	TimeColonSeconds                 // 14:30:00
	TimeCompactMinutes               // 1430
	TimeColonMinutes                 // 14:30
	TimeHour                         // 14
)

var (
	eightDigits     = regexp.MustCompile(`^\d{8}$`)
	delimitedDate   = regexp.MustCompile(`^\d{4}-(\d{2}|\d{1})-(\d{2}|\d{1})$`)
	sixDigits       = regexp.MustCompile(`^\d{6}$`)
	delimitedMonth  = regexp.MustCompile(`^\d{4}-(\d{2}|\d{1})$`)
	fourDigitYear   = regexp.MustCompile(`^\d{4}$`)
	timeLayoutRegex = []struct {
		format  TimeFormat
		pattern *regexp.Regexp
	}{
		{TimeCompactFracOffset, regexp.MustCompile(`^\d{8}-\d{4}$`)},
		{TimeColonFracOffset, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2}-\d{4}$`)},
		{TimeCompactFrac, regexp.MustCompile(`^\d{8}$`)},
		{TimeColonFrac, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2}$`)},
		{TimeCompactOffset, regexp.MustCompile(`^\d{6}-\d{4}$`)},
		{TimeColonOffset, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}-\d{4}$`)},
		{TimeCompactSeconds, regexp.MustCompile(`^\d{6}$`)},
		{TimeColonSeconds, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)},
		{TimeCompactMinutes, regexp.MustCompile(`^\d{4}$`)},
		{TimeColonMinutes, regexp.MustCompile(`^\d{2}:\d{2}$`)},
		{TimeHour, regexp.MustCompile(`^\d{2}$`)},
	}
)

// DetectDate reports which date encoding s uses.
//
// Compact 8- and 6-digit forms are ambiguous; a leading two-digit value of
// 13 or more cannot be a month, so the year leads, otherwise the month does.
func DetectDate(s string) (DateFormat, bool) {
	switch {
	case eightDigits.MatchString(s):
		if leadsWithYear(s) {
			return DateYYYYMMDD, true
		}
		return DateMMDDYYYY, true
	case delimitedDate.MatchString(s):
		return DateYearMonthDay, true
	case sixDigits.MatchString(s):
		if leadsWithYear(s) {
			return DateYYYYMM, true
		}
		return DateMMYYYY, true
	case delimitedMonth.MatchString(s):
		return DateYearMonth, true
	case fourDigitYear.MatchString(s):
		return DateYear, true
	}
	return DateUnknown, false
}

func leadsWithYear(s string) bool {
	lead, err := strconv.Atoi(s[:2])
	return err == nil && lead >= 13
}

// DetectTime reports which time encoding s uses.
func DetectTime(s string) (TimeFormat, bool) {
	format := TimeUnknown
	for _, layout := range timeLayoutRegex {
		if layout.pattern.MatchString(s) {
			format = layout.format
		}
	}
	return format, format != TimeUnknown
}

// ConvertDate converts s, detected as f, to its canonical form.
// Compact forms are checked against the calendar; an impossible date
// such as 20231345 returns false. Delimited forms are returned unchanged.
func ConvertDate(s string, f DateFormat) (string, bool) {
	var layout, canonical string
	switch f {
	case DateYYYYMMDD:
		layout, canonical = "20060102", "2006-01-02"
	case DateMMDDYYYY:
		layout, canonical = "01022006", "2006-01-02"
	case DateYYYYMM:
		layout, canonical = "200601", "2006-01"
	case DateMMYYYY:
		layout, canonical = "012006", "2006-01"
	case DateYearMonthDay, DateYearMonth, DateYear:
		return s, true
	default:
		return "", false
	}

	parsed, err := time.Parse(layout, s)
	if err != nil {
		return "", false
	}
	return parsed.Format(canonical), true
}

// ConvertTime converts s, detected as f, to its canonical form.
// Every form carrying seconds becomes HH:MM:SS; HHMM becomes HH:MM.
// HH:MM:SS, HH:MM and HH are returned unchanged. Out-of-range clock
// values return false.
func ConvertTime(s string, f TimeFormat) (string, bool) {
	var hh, mm, ss string
	switch f {
	case TimeCompactFracOffset, TimeCompactFrac, TimeCompactOffset, TimeCompactSeconds:
		hh, mm, ss = s[0:2], s[2:4], s[4:6]
	case TimeColonFracOffset, TimeColonFrac, TimeColonOffset, TimeColonSeconds:
		hh, mm, ss = s[0:2], s[3:5], s[6:8]
	case TimeCompactMinutes:
		hh, mm = s[0:2], s[2:4]
	case TimeColonMinutes:
		hh, mm = s[0:2], s[3:5]
	case TimeHour:
		hh = s[0:2]
	default:
		return "", false
	}

	if !inRange(hh, 23) || mm != "" && !inRange(mm, 59) || ss != "" && !inRange(ss, 61) {
		return "", false
	}

	switch f {
	case TimeColonSeconds, TimeColonMinutes, TimeHour:
		return s, true
	case TimeCompactMinutes:
		return hh + ":" + mm, true
	default:
		return hh + ":" + mm + ":" + ss, true
	}
}

func inRange(digits string, max int) bool {
	n, err := strconv.Atoi(digits)
	return err == nil && n >= 0 && n <= max
}

// NormalizeDate detects and converts s. It returns "" when s is not a
// recognised or valid date.
func NormalizeDate(s string) string {
	f, ok := DetectDate(s)
	if !ok {
		return ""
	}
	out, ok := ConvertDate(s, f)
	if !ok {
		return ""
	}
	return out
}

// NormalizeTime detects and converts s. It returns "" when s is not a
// recognised or valid time.
func NormalizeTime(s string) string {
	f, ok := DetectTime(s)
	if !ok {
		return ""
	}
	out, ok := ConvertTime(s, f)
	if !ok {
		return ""
	}
	return out
}
