// tui/list_view.go
package tui

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yackko/userlist/types"
)

// RowClass is the background a row is drawn with.
type RowClass int

const (
	RowPlain RowClass = iota
	RowEven
	RowOdd
)

// ClassFor returns the class of the row at zero-based index. Rows are only
// colored when showColors is set.
func ClassFor(index int, showColors bool) RowClass {
	if !showColors {
		return RowPlain
	}
	if index%2 == 0 {
		return RowEven
	}
	return RowOdd
}

// Render draws s with the background of the class.
func (c RowClass) Render(s string) string {
	return c.style().Render(s)
}

func (c RowClass) style() lipgloss.Style {
	switch c {
	case RowEven:
		return EvenRowStyle
	case RowOdd:
		return OddRowStyle
	}
	return CellStyle
}

// column is one table column. Sortable columns are header click targets.
type column struct {
	title    string
	width    int
	sortable bool
	sort     types.SortMode
}

const (
	cursorWidth = 2 // "▸ "
	columnGap   = 1
	deleteLabel = "[ x ]"
)

var columns = []column{
	{title: "Photo", width: 14},
	{title: "Name", width: 14, sortable: true, sort: types.SortName},
	{title: "Last name", width: 16, sortable: true, sort: types.SortLast},
	{title: "Country", width: 18, sortable: true, sort: types.SortCountry},
	{title: "", width: len(deleteLabel)},
}

const deleteColumn = 4

// HitKind says what a click landed on.
type HitKind int

const (
	HitNothing HitKind = iota
	HitHeader
	HitRow
	HitDelete
)

// Hit is the result of hit-testing a point in the table.
type Hit struct {
	Kind HitKind
	Sort types.SortMode // HitHeader
	Row  int            // HitRow and HitDelete, index into Users
}

// ListView renders a user table. It keeps no state of its own: every frame is
// drawn from these fields, and user intents go out through the callbacks.
type ListView struct {
	Users      []types.User
	ShowColors bool
	Cursor     int // index into Users, -1 for none
	Offset     int // first row drawn
	Height     int // rows drawn; 0 draws all
	Empty      string

	OnSort   func(types.SortMode)
	OnDelete func(uuid string)
}

// headerLines is the number of lines above the first row.
const headerLines = 2

// columnAt returns the column under x, or -1.
func columnAt(x int) int {
	start := cursorWidth
	for i, col := range columns {
		if x >= start && x < start+col.width {
			return i
		}
		start += col.width + columnGap
	}
	return -1
}

// Width is the rendered width of a row.
func (v ListView) Width() int {
	w := cursorWidth
	for _, col := range columns {
		w += col.width
	}
	return w + columnGap*(len(columns)-1)
}

func (v ListView) visible() (start, end int) {
	start = max(0, min(v.Offset, len(v.Users)))
	end = len(v.Users)
	if v.Height > 0 {
		end = min(end, start+v.Height)
	}
	return start, end
}

// HitTest maps a point, relative to the top-left of the view, to what is
// drawn there.
func (v ListView) HitTest(x, y int) Hit {
	col := columnAt(x)
	if y == 0 {
		if col >= 0 && columns[col].sortable {
			return Hit{Kind: HitHeader, Sort: columns[col].sort}
		}
		return Hit{}
	}
	if y < headerLines {
		return Hit{}
	}
	start, end := v.visible()
	row := start + y - headerLines
	if row >= end {
		return Hit{}
	}
	if col == deleteColumn {
		return Hit{Kind: HitDelete, Row: row}
	}
	return Hit{Kind: HitRow, Row: row}
}

// Click hit-tests the point and fires OnSort or OnDelete for header and
// delete hits.
func (v ListView) Click(x, y int) Hit {
	hit := v.HitTest(x, y)
	switch hit.Kind {
	case HitHeader:
		if v.OnSort != nil {
			v.OnSort(hit.Sort)
		}
	case HitDelete:
		if v.OnDelete != nil {
			v.OnDelete(v.Users[hit.Row].ID())
		}
	}
	return hit
}

// DeleteAt fires OnDelete for the row at index; out-of-range is ignored.
func (v ListView) DeleteAt(index int) {
	if index < 0 || index >= len(v.Users) || v.OnDelete == nil {
		return
	}
	v.OnDelete(v.Users[index].ID())
}

func fit(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

// thumbLabel shortens a portrait URL to its last two path elements,
// e.g. "men/32.jpg".
func thumbLabel(url string) string {
	if url == "" {
		return "-"
	}
	dir, file := path.Split(strings.TrimRight(url, "/"))
	parent := path.Base(strings.TrimRight(dir, "/"))
	if parent == "." || parent == "/" || parent == "" {
		return file
	}
	return parent + "/" + file
}

func (v ListView) header() string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = HeaderStyle.Render(fit(col.title, col.width))
	}
	return strings.Repeat(" ", cursorWidth) + strings.Join(cells, strings.Repeat(" ", columnGap))
}

func (v ListView) separator() string {
	return SeparatorStyle.Render(strings.Repeat("─", v.Width()))
}

func (v ListView) row(index int) string {
	u := v.Users[index]
	style := ClassFor(index, v.ShowColors).style()

	prefix := strings.Repeat(" ", cursorWidth)
	if index == v.Cursor {
		prefix = CursorStyle.Render("▸ ")
	}
	values := []string{thumbLabel(u.Picture.Thumbnail), u.Name.First, u.Name.Last, u.Location.Country}
	cells := make([]string, 0, len(columns))
	for i, val := range values {
		cells = append(cells, fit(val, columns[i].width))
	}
	text := style.Render(strings.Join(cells, strings.Repeat(" ", columnGap)) + strings.Repeat(" ", columnGap))
	return prefix + text + DeleteStyle.Render(deleteLabel)
}

// View renders the header, a separator and the visible rows.
func (v ListView) View() string {
	var b strings.Builder
	b.WriteString(v.header())
	b.WriteString("\n")
	b.WriteString(v.separator())
	if len(v.Users) == 0 {
		if v.Empty != "" {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", cursorWidth) + EmptyStyle.Render(v.Empty))
		}
		return b.String()
	}
	start, end := v.visible()
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(v.row(i))
	}
	return b.String()
}
