// types/user.go
package types

// User is one record of the random-user API. Only Login.UUID, Name.First,
// Name.Last, Location.Country and Picture.Thumbnail are required; the rest is
// decoded when the endpoint sends it.
type User struct {
	Login    Login    `json:"login"`
	Name     Name     `json:"name"`
	Location Location `json:"location"`
	Picture  Picture  `json:"picture"`
	Email    string   `json:"email,omitempty"`
	Nat      string   `json:"nat,omitempty"`
}

// Login carries the uuid that identifies a user.
type Login struct {
	UUID string `json:"uuid"`
}

// Name is the user's display name.
type Name struct {
	Title string `json:"title,omitempty"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Location is where the user lives; only Country is used for filtering.
type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country"`
}

// Picture holds portrait URLs in three sizes.
type Picture struct {
	Large     string `json:"large,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Thumbnail string `json:"thumbnail"`
}

// ID returns the login uuid that identifies the user.
func (u User) ID() string { return u.Login.UUID }

// FullName is "First Last".
func (u User) FullName() string {
	switch {
	case u.Name.First == "":
		return u.Name.Last
	case u.Name.Last == "":
		return u.Name.First
	}
	return u.Name.First + " " + u.Name.Last
}
