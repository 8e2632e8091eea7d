package response

import (
	"time"

	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/domain/user"
)

type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Membership string `json:"membership"`
	Address    string `json:"address,omitempty"`
	FaceID     string `json:"faceId,omitempty"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID(),
		Name:       u.Name(),
		Membership: u.Membership().String(),
		Address:    u.Address(),
		FaceID:     u.FaceID(),
	}
}

func FromUsers(users []*user.User) []*UserResponse {
	res := make([]*UserResponse, len(users))
	for i, u := range users {
		res[i] = FromUser(u)
	}
	return res
}

type LogResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Action    string    `json:"action"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func FromLogEntry(e *attendance.Entry) *LogResponse {
	return &LogResponse{
		ID:        e.ID(),
		Name:      e.Name(),
		Status:    e.Status(),
		Action:    e.Action(),
		Note:      e.Note(),
		Timestamp: e.Timestamp(),
	}
}

func FromLogEntries(entries []*attendance.Entry) []*LogResponse {
	res := make([]*LogResponse, len(entries))
	for i, e := range entries {
		res[i] = FromLogEntry(e)
	}
	return res
}
