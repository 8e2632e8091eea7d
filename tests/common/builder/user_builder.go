//go:build unit || e2e

package builder

import (
	"library-ledger/internal/domain/user"
	reqdto "library-ledger/internal/handler/dto/request"
)

type UserBuilder struct {
	ID         int64
	Name       string
	Membership string
	Address    string
	FaceID     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         1,
		Name:       "Gerald Venico",
		Membership: "Student",
		Address:    "Manila",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.New(u.ID, u.fields())
}

func (u *UserBuilder) BuildRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Name:       u.Name,
		Membership: u.Membership,
		Address:    u.Address,
		FaceID:     u.FaceID,
	}
}

func (u *UserBuilder) fields() user.Fields {
	return user.Fields{
		Name:       u.Name,
		Membership: user.Membership(u.Membership),
		Address:    u.Address,
		FaceID:     u.FaceID,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithMembership(membership string) *UserBuilder {
	u.Membership = membership
	return u
}

func (u *UserBuilder) WithFaceID(faceID string) *UserBuilder {
	u.FaceID = faceID
	return u
}
