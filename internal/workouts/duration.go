package workouts

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingFloat reads the longest valid decimal number at the start of s
// and ignores whatever follows it, so "30min" gives 30 and "1,200" gives 1.
// Leading white space is skipped. consumed is the byte offset in s right
// after the number. ok is false when s has no numeric prefix at all, or when
// the prefix does not fit into a finite float64.
func ParseLeadingFloat(s string) (value float64, consumed int, ok bool) {
	start := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))

	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		// a lone "." is not a number, "5." is
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, 0, false
	}

	// exponent counts only when it carries digits: "2e" is just 2
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}

	value, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, 0, false
	}

	return value, i, true
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
