// types/sort.go
package types

import (
	"fmt"
	"strings"
)

// SortMode selects the field the derived view is ordered by.
type SortMode int

const (
	SortNone SortMode = iota // keep filtered order
	SortName
	SortLast
	SortCountry
)

// SortModes lists every mode in declaration order.
var SortModes = []SortMode{SortNone, SortName, SortLast, SortCountry}

func (m SortMode) String() string {
	switch m {
	case SortNone:
		return "none"
	case SortName:
		return "name"
	case SortLast:
		return "last"
	case SortCountry:
		return "country"
	}
	return fmt.Sprintf("SortMode(%d)", int(m))
}

// Key returns the field of u that m orders by. SortNone has no key.
func (m SortMode) Key(u User) string {
	switch m {
	case SortName:
		return u.Name.First
	case SortLast:
		return u.Name.Last
	case SortCountry:
		return u.Location.Country
	}
	return ""
}

// ParseSortMode accepts the String form of a mode, case-insensitively.
// An empty string is SortNone.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "name", "first":
		return SortName, nil
	case "last", "lastname":
		return SortLast, nil
	case "country":
		return SortCountry, nil
	}
	return SortNone, fmt.Errorf("unknown sort mode '%s'. Use none, name, last or country", s)
}
