// internal/listctl/controller.go
package listctl

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/text/language"

	"github.com/yackko/userlist/internal/datastore"
	"github.com/yackko/userlist/internal/fetch"
	"github.com/yackko/userlist/types"
)

// ChangeKind says which part of the controller state changed.
type ChangeKind int

const (
	ChangeLoaded ChangeKind = iota
	ChangeColors
	ChangeSort
	ChangeFilter
	ChangeDelete
	ChangeReset
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLoaded:
		return "loaded"
	case ChangeColors:
		return "colors"
	case ChangeSort:
		return "sort"
	case ChangeFilter:
		return "filter"
	case ChangeDelete:
		return "delete"
	case ChangeReset:
		return "reset"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change is sent to observers after every state mutation.
type Change struct {
	Kind   ChangeKind
	Detail string
}

// Controller owns the user list and the selections applied to it. It is
// meant to be driven from a single goroutine (the UI loop); observers run
// synchronously on that goroutine.
type Controller struct {
	store  *datastore.Store
	logger *log.Logger
	tag    language.Tag

	showColors bool
	sort       types.SortMode
	filter     string

	observers map[int]func(Change)
	nextObs   int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic logger fetch failures are reported to.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithLocale sets the language used for case folding and collation.
func WithLocale(tag language.Tag) Option {
	return func(c *Controller) {
		c.tag = tag
	}
}

// WithColors sets the initial row-color flag.
func WithColors(on bool) Option {
	return func(c *Controller) {
		c.showColors = on
	}
}

// New returns a controller with an empty list, no filter and SortNone.
func New(opts ...Option) *Controller {
	c := &Controller{
		logger:    log.Default(),
		tag:       language.Und,
		observers: make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.store = datastore.New(c.logger)
	return c
}

// ParseLocale turns a BCP 47 string into a tag, falling back to Und.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

// Subscribe registers fn to be called after every change. The returned
// func removes it.
func (c *Controller) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Controller) notify(kind ChangeKind, format string, args ...any) {
	ch := Change{Kind: kind, Detail: fmt.Sprintf(format, args...)}
	for _, fn := range c.observers {
		fn(ch)
	}
}

// Load fetches users from src and populates the list. On failure the list
// stays empty, the error is logged and returned; there is no retry.
func (c *Controller) Load(ctx context.Context, src fetch.Source) error {
	return c.Apply(src.Fetch(ctx))
}

// Apply takes the result of a fetch that ran elsewhere (the UI runs it on a
// background command) and applies it like Load does.
func (c *Controller) Apply(users []types.User, err error) error {
	if err != nil {
		c.logger.Printf("[FETCH] Failed to load users: %v", err)
		return err
	}
	c.Populate(users)
	return nil
}

// Populate sets both the working set and the original snapshot to users.
func (c *Controller) Populate(users []types.User) {
	dropped := c.store.Populate(users)
	c.logger.Printf("[FETCH] Loaded %d users (%d duplicates dropped)", c.store.Total(), dropped)
	c.notify(ChangeLoaded, "%d users loaded", c.store.Total())
}

// ToggleColors flips alternating row colors.
func (c *Controller) ToggleColors() {
	c.showColors = !c.showColors
	if c.showColors {
		c.notify(ChangeColors, "row colors on")
		return
	}
	c.notify(ChangeColors, "row colors off")
}

// ToggleSortByCountry switches between SortCountry and SortNone. Any other
// mode is replaced by SortCountry.
func (c *Controller) ToggleSortByCountry() {
	if c.sort == types.SortCountry {
		c.SetSort(types.SortNone)
		return
	}
	c.SetSort(types.SortCountry)
}

// SetSort makes mode the active sort. Setting the current mode again keeps
// it active.
func (c *Controller) SetSort(mode types.SortMode) {
	c.sort = mode
	c.notify(ChangeSort, "sort by %s", mode)
}

// SetCountryFilter sets the country substring; "" clears the filter.
func (c *Controller) SetCountryFilter(text string) {
	c.filter = text
	if text == "" {
		c.notify(ChangeFilter, "filter cleared")
		return
	}
	c.notify(ChangeFilter, "filter %q", text)
}

// DeleteUser removes uuid from the working set. Unknown uuids are ignored
// and do not notify.
func (c *Controller) DeleteUser(uuid string) {
	if !c.store.Delete(uuid) {
		return
	}
	c.notify(ChangeDelete, "deleted %s", uuid)
}

// Reset brings back every deleted user. Sort, filter and colors are kept.
func (c *Controller) Reset() {
	c.store.Reset()
	c.notify(ChangeReset, "%d users restored", c.store.Total())
}

// View is the working set filtered by country and then sorted. It is
// recomputed on every call.
func (c *Controller) View() []types.User {
	return Derive(c.store.Users(), c.filter, c.sort, c.tag)
}

// Users returns a copy of the working set.
func (c *Controller) Users() []types.User { return c.store.Users() }

// Snapshot returns a copy of the list as it was loaded.
func (c *Controller) Snapshot() []types.User { return c.store.Snapshot() }

// ShowColors reports whether alternating row colors are on.
func (c *Controller) ShowColors() bool { return c.showColors }

// Sort is the active sort mode.
func (c *Controller) Sort() types.SortMode { return c.sort }

// CountryFilter is the current filter text; empty means no filter.
func (c *Controller) CountryFilter() string { return c.filter }

// Len is the size of the working set.
func (c *Controller) Len() int { return c.store.Len() }

// Total is the size of the loaded snapshot.
func (c *Controller) Total() int { return c.store.Total() }

// Locale is the language used for case folding and collation.
func (c *Controller) Locale() language.Tag { return c.tag }
