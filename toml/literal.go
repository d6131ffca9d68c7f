package toml

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// =========================
// Numeric & datetime literal parsing
// =========================
//
// Shared by both key-name (INTEGER-as-key) and value contexts, since the
// grammar applies identical underscore/leading-zero validation to both:
// an integer used as a bare key is stringified with its underscores
// removed and the same leading-zero check applied as a value integer.

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// validateUnderscorePlacement rejects an underscore that isn't flanked by
// a digit on both sides, covering leading ("_42"), trailing ("42_"), and
// internal ("4__2" handled digit-by-digit) misplacements.
func validateUnderscorePlacement(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 {
			return false
		}
		if !isDigitByte(s[i-1]) || !isDigitByte(s[i+1]) {
			return false
		}
	}
	return true
}

// splitSign peels an optional leading '+'/'-' off s.
func splitSign(s string) (sign string, body string) {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[:1], s[1:]
	}
	return "", s
}

// hasLeadingZero reports whether body (sign already removed) matches the
// forbidden `^0\d+` shape: a zero followed by at least one more digit.
func hasLeadingZero(body string) bool {
	return len(body) > 1 && body[0] == '0' && isDigitByte(body[1])
}

// normalizeIntegerKey validates and strips underscores from an INTEGER
// token used as a bare key name.
func normalizeIntegerKey(lexeme string, line int) (string, error) {
	if !validateUnderscorePlacement(lexeme) {
		return "", newParseErr(ErrSyntaxError, line, "misplaced underscore in key %q", lexeme)
	}
	stripped := strings.ReplaceAll(lexeme, "_", "")
	sign, body := splitSign(stripped)
	if hasLeadingZero(body) {
		return "", newParseErr(ErrSyntaxError, line, "leading zero in key %q", lexeme)
	}
	return sign + body, nil
}

// parseIntegerLiteral validates and parses an INTEGER token as a value.
func parseIntegerLiteral(lexeme string, line int) (*Value, error) {
	if !validateUnderscorePlacement(lexeme) {
		return nil, newParseErr(ErrSyntaxError, line, "misplaced underscore in integer %q", lexeme)
	}
	stripped := strings.ReplaceAll(lexeme, "_", "")
	sign, body := splitSign(stripped)
	if hasLeadingZero(body) {
		return nil, newParseErr(ErrSyntaxError, line, "leading zero in integer %q", lexeme)
	}
	i, err := strconv.ParseInt(sign+body, 10, 64)
	if err != nil {
		return nil, newParseErr(ErrSyntaxError, line, "invalid integer %q", lexeme)
	}
	return intValue(i), nil
}

var floatIntPartBreak = regexp.MustCompile(`[.eE]`)

// parseFloatLiteral validates and parses a FLOAT token as a value.
func parseFloatLiteral(lexeme string, line int) (*Value, error) {
	if !validateUnderscorePlacement(lexeme) {
		return nil, newParseErr(ErrSyntaxError, line, "misplaced underscore in float %q", lexeme)
	}
	stripped := strings.ReplaceAll(lexeme, "_", "")
	_, body := splitSign(stripped)
	intPart := body
	if loc := floatIntPartBreak.FindStringIndex(body); loc != nil {
		intPart = body[:loc[0]]
	}
	if hasLeadingZero(intPart) {
		return nil, newParseErr(ErrSyntaxError, line, "leading zero in float %q", lexeme)
	}
	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return nil, newParseErr(ErrSyntaxError, line, "invalid float %q", lexeme)
	}
	return floatValue(f), nil
}

var (
	dateOnlyRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	offsetSuffixRe = regexp.MustCompile(`(Z|[+-]\d{2}:\d{2})$`)
)

var offsetLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// parseDatetimeLiteral parses a DATETIME token, classifying it into one
// of the three shapes the scanner's single DATETIME pattern can produce:
// local date, offset date-time, or local date-time. The pattern always
// starts with a date, so DatetimeLocalTime is never produced here.
func parseDatetimeLiteral(lexeme string, line int) (*Value, error) {
	if dateOnlyRe.MatchString(lexeme) {
		t, err := time.Parse("2006-01-02", lexeme)
		if err != nil {
			return nil, newParseErr(ErrSyntaxError, line, "invalid date %q", lexeme)
		}
		return datetimeValue(t, DatetimeLocalDate), nil
	}
	if offsetSuffixRe.MatchString(lexeme) {
		for _, layout := range offsetLayouts {
			if t, err := time.Parse(layout, lexeme); err == nil {
				return datetimeValue(t, DatetimeOffset), nil
			}
		}
		return nil, newParseErr(ErrSyntaxError, line, "invalid offset datetime %q", lexeme)
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, lexeme); err == nil {
			return datetimeValue(t, DatetimeLocal), nil
		}
	}
	return nil, newParseErr(ErrSyntaxError, line, "invalid datetime %q", lexeme)
}
