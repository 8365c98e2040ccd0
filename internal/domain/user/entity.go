// Package user models the transport identity the chat gateway resolves for
// every caller. The numeric ID is the gateway's stable user id; the owner
// handle links a user to catalog items they own.
package user

type User struct {
	id          int64
	username    string
	firstName   string
	lastName    string
	ownerHandle string
}

func New(id int64, username, firstName, lastName, ownerHandle string) *User {
	return &User{
		id:          id,
		username:    username,
		firstName:   firstName,
		lastName:    lastName,
		ownerHandle: ownerHandle,
	}
}

func (u *User) ID() int64           { return u.id }
func (u *User) Username() string    { return u.username }
func (u *User) FirstName() string   { return u.firstName }
func (u *User) LastName() string    { return u.lastName }
func (u *User) OwnerHandle() string { return u.ownerHandle }

// Handle is how the user is addressed in outgoing notifications.
func (u *User) Handle() string {
	if u.username != "" {
		return "@" + u.username
	}
	return ""
}
