// internal/listctl/derive.go
package listctl

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yackko/userlist/types"
)

// Filter keeps the users whose country contains text, ignoring case. An
// empty text returns users unchanged. The input is never modified.
func Filter(users []types.User, text string, tag language.Tag) []types.User {
	if text == "" {
		return users
	}
	lower := cases.Lower(tag)
	needle := lower.String(text)
	out := make([]types.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(lower.String(u.Location.Country), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Sort orders users ascending by the field mode selects, comparing with the
// collation rules of tag. Equal keys keep their input order. SortNone
// returns users unchanged; otherwise a new slice is returned.
func Sort(users []types.User, mode types.SortMode, tag language.Tag) []types.User {
	if mode == types.SortNone {
		return users
	}
	col := collate.New(tag)
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b types.User) int {
		return col.CompareString(mode.Key(a), mode.Key(b))
	})
	return sorted
}

// Derive is Filter followed by Sort.
func Derive(users []types.User, filter string, mode types.SortMode, tag language.Tag) []types.User {
	return Sort(Filter(users, filter, tag), mode, tag)
}
