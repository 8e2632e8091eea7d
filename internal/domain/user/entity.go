package user

import (
	"strings"

	"library-ledger/internal/pkg/validation"
)

type Fields struct {
	Name       string `validate:"required,max=200"`
	Membership Membership
	Address    string `validate:"max=500"`
	FaceID     string `validate:"max=200"`
}

// User is a borrower. The ledger only references users; it never mutates them.
type User struct {
	id     int64
	fields Fields
}

func New(id int64, f Fields) (*User, error) {
	check := f
	check.Name = strings.TrimSpace(check.Name)
	if err := validation.Struct(check); err != nil {
		return nil, err
	}
	f.Membership = ParseMembership(string(f.Membership))
	return &User{id: id, fields: f}, nil
}

func Reconstruct(id int64, f Fields) *User {
	return &User{id: id, fields: f}
}

func (u *User) ID() int64              { return u.id }
func (u *User) Name() string           { return u.fields.Name }
func (u *User) Membership() Membership { return u.fields.Membership }
func (u *User) Address() string        { return u.fields.Address }
func (u *User) FaceID() string         { return u.fields.FaceID }

func NextID(users []*User) int64 {
	var maxID int64
	for _, u := range users {
		if u.id > maxID {
			maxID = u.id
		}
	}
	return maxID + 1
}
