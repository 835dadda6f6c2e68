// Package credits implements the credits balance display and the package
// selection used by the purchase page.
//
// The balance and user name live in the visitor's own Store. The server never
// reconciles them; only the visitor can clear them.
package credits

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Store keys.
const (
	CreditsKey  = "px_credits"
	UsernameKey = "px_username"
)

// DefaultUsername is shown when no name is stored.
const DefaultUsername = "Username"

// Balance returns the stored balance, or 0 when it is absent or not a number.
func Balance(s Store) int {
	v, ok := s.Get(CreditsKey)
	if !ok {
		return 0
	}
	return ParseInt(v)
}

// SetBalance stores n as the balance.
func SetBalance(s Store, n int) {
	s.Set(CreditsKey, strconv.Itoa(n))
}

// ParseInt reads an optionally signed base-10 integer from the start of v,
// ignoring leading white space and anything after the digits. It returns 0
// when no digits are found or the value does not fit in an int.
func ParseInt(v string) int {
	v = strings.TrimLeftFunc(v, unicode.IsSpace)
	neg := false
	if v != "" && (v[0] == '-' || v[0] == '+') {
		neg = v[0] == '-'
		v = v[1:]
	}
	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(v[:end], 10, 64)
	if err != nil || n > math.MaxInt {
		return 0
	}
	if neg {
		return -int(n)
	}
	return int(n)
}

// Username returns the stored name upper-cased, or DefaultUsername.
func Username(s Store) string {
	v, _ := s.Get(UsernameKey)
	if strings.TrimSpace(v) == "" {
		return DefaultUsername
	}
	return strings.ToUpper(v)
}

// Greeting returns the topbar greeting for name.
func Greeting(name string) string {
	return "Hi," + capitalize(name)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
