package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"dropsmob/internal/domain"
)

var (
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reOrderID = regexp.MustCompile(`^[A-Za-z0-9]{1,16}$`)
)

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// OrderID normalizes an operator-typed order id to the upper-case form orders use.
func OrderID(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reOrderID.MatchString(s)
}

// MaxDelta bounds a single quantity adjustment in either direction.
const MaxDelta = 1000

// Delta parses a quantity adjustment such as "1", "-1" or "+3".
func Delta(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if err != nil || n > MaxDelta || n < -MaxDelta {
		return 0, false
	}
	return n, true
}

// Q trims a catalog search and caps its length.
func Q(s string) string {
	s = strings.TrimSpace(s)
	for utf8.RuneCountInString(s) > 50 {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}

// Category accepts one of the catalog categories or "Todos"; empty means all.
func Category(s string) (domain.Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(domain.CategoryAll) {
		return domain.CategoryAll, true
	}
	for _, c := range domain.Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

func Status(s string) (domain.OrderStatus, bool) {
	st := domain.OrderStatus(strings.TrimSpace(s))
	return st, st.Valid()
}

func View(s string) (domain.AppView, bool) {
	v := domain.AppView(strings.ToLower(strings.TrimSpace(s)))
	return v, v.Valid()
}
