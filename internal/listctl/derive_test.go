package listctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/yackko/userlist/internal/testutil"
	"github.com/yackko/userlist/types"
)

func TestFilter_EmptyIsIdentity(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru", "Bruno Soto/Chile")
	got := Filter(users, "", language.Und)
	assert.Equal(t, testutil.IDs(users), testutil.IDs(got))
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	users := testutil.Users(
		"Ana Quispe/Peru",
		"Bruno Soto/Chile",
		"Carla Ruiz/Spain",
		"Dario Paz/PERU",
		"Emre Kaya/Türkiye",
	)
	cases := []struct {
		filter string
		want   []int
	}{
		{"per", []int{0, 3}},
		{"ERU", []int{0, 3}},
		{"i", []int{1, 2, 4}},
		{"ain", []int{2}},
		{"TÜR", []int{4}},
		{"zz", nil},
	}
	for _, tc := range cases {
		t.Run(tc.filter, func(t *testing.T) {
			got := Filter(users, tc.filter, language.Und)
			var want []string
			for _, i := range tc.want {
				want = append(want, users[i].ID())
			}
			if want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, want, testutil.IDs(got))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru", "Bruno Soto/Chile", "Carla Ruiz/Peru")
	before := testutil.IDs(users)
	_ = Filter(users, "chile", language.Und)
	assert.Equal(t, before, testutil.IDs(users))
}

func TestSort_NoneIsIdentity(t *testing.T) {
	users := testutil.Users("Bob A/X", "Ana B/Y")
	got := Sort(users, types.SortNone, language.Und)
	assert.Equal(t, testutil.IDs(users), testutil.IDs(got))
}

func TestSort_ByEachField(t *testing.T) {
	users := testutil.Users(
		"Carla Ruiz/Spain",
		"Ana Soto/Chile",
		"Bruno Alba/Peru",
	)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, testutil.Firsts(Sort(users, types.SortName, language.Und)))
	assert.Equal(t, []string{"Bruno", "Carla", "Ana"}, testutil.Firsts(Sort(users, types.SortLast, language.Und)))
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, testutil.Firsts(Sort(users, types.SortCountry, language.Und)))
	// the input keeps its order
	assert.Equal(t, []string{"Carla", "Ana", "Bruno"}, testutil.Firsts(users))
}

func TestSort_IsStable(t *testing.T) {
	users := testutil.Users(
		"Zoe A/Peru",
		"Yan B/Chile",
		"Xia C/Peru",
		"Wes D/Chile",
		"Val E/Peru",
	)
	got := Sort(users, types.SortCountry, language.Und)
	assert.Equal(t, []string{"Yan", "Wes", "Zoe", "Xia", "Val"}, testutil.Firsts(got))
}

func TestSort_IsPermutation(t *testing.T) {
	users := testutil.Users("Carla Ruiz/Spain", "Ana Soto/Chile", "Bruno Alba/Peru", "Ana Paz/Peru")
	for _, mode := range types.SortModes {
		got := Sort(users, mode, language.Und)
		assert.ElementsMatch(t, testutil.IDs(users), testutil.IDs(got), mode.String())
	}
}

func TestSort_LocaleAware(t *testing.T) {
	users := testutil.Users("Zoe A/X", "Émile B/X", "alice C/X", "Bob D/X")
	got := Sort(users, types.SortName, language.Und)
	assert.Equal(t, []string{"alice", "Bob", "Émile", "Zoe"}, testutil.Firsts(got))
}

func TestSort_AscendingProperty(t *testing.T) {
	users := testutil.Users(
		"Noah Lee/Canada", "Emma Roy/France", "Liam Kim/Korea",
		"Olivia Diaz/Mexico", "Ava Berg/Norway", "Lucas Silva/Brazil",
	)
	for _, mode := range []types.SortMode{types.SortName, types.SortLast, types.SortCountry} {
		got := Sort(users, mode, language.Und)
		require.Len(t, got, len(users))
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, mode.Key(got[i-1]), mode.Key(got[i]), mode.String())
		}
	}
}

func TestDerive_FiltersThenSorts(t *testing.T) {
	users := testutil.Users("Dario Paz/Peru", "Bruno Soto/Chile", "Ana Quispe/Peru")
	got := Derive(users, "peru", types.SortName, language.Und)
	assert.Equal(t, []string{"Ana", "Dario"}, testutil.Firsts(got))
}
