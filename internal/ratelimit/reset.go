package ratelimit

import (
	"net/http"
	"strconv"
	"time"
)

// Headers the provider sets on 429 responses. The request-quota reset is the
// primary hint; the token-quota reset is consulted when the first is absent
// or does not parse.
const (
	HeaderResetRequests = "x-ratelimit-reset-requests"
	HeaderResetTokens   = "x-ratelimit-reset-tokens"
)

// ResetAfter extracts a retry hint from a rate-limited response's headers.
// ok is false when neither header yields a usable duration.
func ResetAfter(h http.Header) (time.Duration, bool) {
	if d, ok := Parse(h.Get(HeaderResetRequests)); ok {
		return d, true
	}
	return Parse(h.Get(HeaderResetTokens))
}

// Parse reads the provider's reset-duration format: concatenated value/unit
// pairs such as "6m10s", "500ms", "2h". Units are h, m, s, and ms; "m" means
// minutes only when not immediately followed by "s". Values may be
// fractional. An unknown unit drops its value without failing the rest of
// the string; a value that is not a number fails the whole parse. A trailing
// value with no unit counts as seconds. ok is false when no positive
// duration can be determined.
func Parse(s string) (time.Duration, bool) {
	var total time.Duration
	var num []byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			num = append(num, c)
		case isLetter(c):
			var unit time.Duration
			switch {
			case c == 'm' && i+1 < len(s) && s[i+1] == 's':
				unit = time.Millisecond
				i++
			case c == 'h':
				unit = time.Hour
			case c == 'm':
				unit = time.Minute
			case c == 's':
				unit = time.Second
			}
			if unit == 0 {
				// Unknown unit: drop the pending value, keep scanning.
				num = num[:0]
				continue
			}
			n, err := strconv.ParseFloat(string(num), 64)
			if err != nil {
				return 0, false
			}
			total += time.Duration(n * float64(unit))
			num = num[:0]
		default:
			// Whitespace and other separators carry no meaning.
		}
	}

	if len(num) > 0 {
		n, err := strconv.ParseFloat(string(num), 64)
		if err != nil {
			return 0, false
		}
		total += time.Duration(n * float64(time.Second))
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
