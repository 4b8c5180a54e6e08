// Package testutil builds user fixtures for tests.
package testutil

import (
	"strings"

	"github.com/google/uuid"

	"github.com/yackko/userlist/types"
)

// User returns a user with a fresh uuid.
func User(first, last, country string) types.User {
	id := uuid.NewString()
	return types.User{
		Login:    types.Login{UUID: id},
		Name:     types.Name{First: first, Last: last},
		Location: types.Location{Country: country},
		Picture:  types.Picture{Thumbnail: "https://randomuser.me/api/portraits/thumb/men/" + id[:2] + ".jpg"},
	}
}

// Users builds one user per "First Last/Country" entry.
func Users(entries ...string) []types.User {
	out := make([]types.User, 0, len(entries))
	for _, e := range entries {
		name, country, _ := strings.Cut(e, "/")
		first, last, _ := strings.Cut(name, " ")
		out = append(out, User(first, last, country))
	}
	return out
}

// IDs returns the uuids of users in order.
func IDs(users []types.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID()
	}
	return ids
}

// Firsts returns the first names of users in order.
func Firsts(users []types.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name.First
	}
	return names
}
