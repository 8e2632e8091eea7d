package request

import (
	"library-ledger/internal/domain/attendance"
	"library-ledger/internal/domain/user"
)

type RegisterUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Membership string `json:"membership,omitempty"`
	Address    string `json:"address,omitempty"`
	FaceID     string `json:"faceId,omitempty"`
}

func (r RegisterUserRequest) ToFields() user.Fields {
	return user.Fields{
		Name:       r.Name,
		Membership: user.Membership(r.Membership),
		Address:    r.Address,
		FaceID:     r.FaceID,
	}
}

type SaveLogRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status,omitempty"`
	Action string `json:"action,omitempty"`
	Note   string `json:"note,omitempty"`
}

func (r SaveLogRequest) ToFields() attendance.Fields {
	return attendance.Fields{
		Name:   r.Name,
		Status: r.Status,
		Action: r.Action,
		Note:   r.Note,
	}
}
