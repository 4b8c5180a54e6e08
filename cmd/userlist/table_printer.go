// cmd/userlist/table_printer.go
package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yackko/userlist/tui"
	"github.com/yackko/userlist/types"
)

// printUsersTable writes users as an aligned table. With colors set, data
// rows alternate backgrounds the same way the TUI does.
func printUsersTable(out io.Writer, users []types.User, colors bool) error {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHOTO\tNAME\tLAST NAME\tCOUNTRY\tUUID")
	fmt.Fprintln(w, "-----\t----\t---------\t-------\t----")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			u.Picture.Thumbnail, u.Name.First, u.Name.Last, u.Location.Country, u.ID())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i >= 2 {
			line = tui.ClassFor(i-2, colors).Render(line)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
