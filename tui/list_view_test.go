package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yackko/userlist/internal/testutil"
	"github.com/yackko/userlist/types"
)

// x positions inside each column, derived from the column widths.
func columnX(t *testing.T, index int) int {
	t.Helper()
	x := cursorWidth
	for i := 0; i < index; i++ {
		x += columns[i].width + columnGap
	}
	require.Equal(t, index, columnAt(x))
	return x
}

func TestClassFor(t *testing.T) {
	for i := 0; i < 6; i++ {
		assert.Equal(t, RowPlain, ClassFor(i, false))
	}
	assert.Equal(t, RowEven, ClassFor(0, true))
	assert.Equal(t, RowOdd, ClassFor(1, true))
	assert.Equal(t, RowEven, ClassFor(2, true))
	assert.Equal(t, RowOdd, ClassFor(7, true))
}

func TestView_RendersEveryRowInOrder(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru", "Bruno Soto/Chile")
	out := ListView{Users: users, Cursor: -1}.View()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, headerLines+2)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Last name")
	assert.Contains(t, lines[0], "Country")
	assert.Contains(t, lines[2], "Ana")
	assert.Contains(t, lines[2], "Quispe")
	assert.Contains(t, lines[2], "Peru")
	assert.Contains(t, lines[2], deleteLabel)
	assert.Contains(t, lines[3], "Bruno")
}

func TestView_ColorsDoNotChangeContentOrOrder(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru", "Bruno Soto/Chile", "Carla Ruiz/Spain")
	plain := ListView{Users: users, Cursor: -1}
	colored := plain
	colored.ShowColors = true

	strip := func(s string) []string {
		var rows []string
		for _, line := range strings.Split(s, "\n")[headerLines:] {
			rows = append(rows, strings.Join(strings.Fields(line), " "))
		}
		return rows
	}
	assert.Equal(t, strip(plain.View()), strip(colored.View()))
}

func TestView_Empty(t *testing.T) {
	out := ListView{Empty: "No users."}.View()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "No users.")

	out = ListView{}.View()
	assert.Len(t, strings.Split(out, "\n"), headerLines)
}

func TestView_Viewport(t *testing.T) {
	users := testutil.Users("A A/X", "B B/X", "C C/X", "D D/X", "E E/X")
	out := ListView{Users: users, Offset: 2, Height: 2, Cursor: 3}.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, headerLines+2)
	assert.Contains(t, lines[2], " C ")
	assert.Contains(t, lines[3], "▸")
}

func TestHitTest(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru", "Bruno Soto/Chile", "Carla Ruiz/Spain")
	v := ListView{Users: users, Offset: 1, Height: 1}

	assert.Equal(t, Hit{Kind: HitHeader, Sort: types.SortName}, v.HitTest(columnX(t, 1), 0))
	assert.Equal(t, Hit{Kind: HitHeader, Sort: types.SortLast}, v.HitTest(columnX(t, 2), 0))
	assert.Equal(t, Hit{Kind: HitHeader, Sort: types.SortCountry}, v.HitTest(columnX(t, 3), 0))
	assert.Equal(t, Hit{}, v.HitTest(columnX(t, 0), 0), "photo header is not sortable")
	assert.Equal(t, Hit{}, v.HitTest(0, 0))
	assert.Equal(t, Hit{}, v.HitTest(columnX(t, 1), 1), "separator")

	assert.Equal(t, Hit{Kind: HitRow, Row: 1}, v.HitTest(columnX(t, 1), headerLines))
	assert.Equal(t, Hit{Kind: HitDelete, Row: 1}, v.HitTest(columnX(t, deleteColumn), headerLines))
	assert.Equal(t, Hit{}, v.HitTest(columnX(t, 1), headerLines+1), "below the viewport")
}

func TestClick_FiresCallbacks(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru", "Bruno Soto/Chile")
	var sorted []types.SortMode
	var deleted []string
	v := ListView{
		Users:    users,
		OnSort:   func(m types.SortMode) { sorted = append(sorted, m) },
		OnDelete: func(id string) { deleted = append(deleted, id) },
	}

	v.Click(columnX(t, 3), 0)
	v.Click(columnX(t, 3), 0)
	v.Click(columnX(t, deleteColumn), headerLines+1)
	v.Click(columnX(t, 1), headerLines)

	assert.Equal(t, []types.SortMode{types.SortCountry, types.SortCountry}, sorted)
	assert.Equal(t, []string{users[1].ID()}, deleted)
}

func TestDeleteAt(t *testing.T) {
	users := testutil.Users("Ana Quispe/Peru")
	var deleted []string
	v := ListView{Users: users, OnDelete: func(id string) { deleted = append(deleted, id) }}
	v.DeleteAt(-1)
	v.DeleteAt(1)
	v.DeleteAt(0)
	assert.Equal(t, []string{users[0].ID()}, deleted)
}

func TestThumbLabel(t *testing.T) {
	assert.Equal(t, "men/32.jpg", thumbLabel("https://randomuser.me/api/portraits/thumb/men/32.jpg"))
	assert.Equal(t, "a.jpg", thumbLabel("a.jpg"))
	assert.Equal(t, "-", thumbLabel(""))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5))
}
