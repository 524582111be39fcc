package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	UnknownPlayerName  = "Unknown Player"
	UnknownPlayerEmail = "No email"
	UnknownPlayerPhone = "No phone"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Owner struct {
	ID              string         `json:"id"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
}

type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OwnerFromDocument reads a users document. Anything but an explicit
// "approved" or "rejected" counts as pending.
func OwnerFromDocument(raw bson.M) *Owner {
	o := &Owner{
		ID:              DocumentID(raw["_id"]),
		ApprovalStatus:  ApprovalPending,
		RejectionReason: stringField(raw, "rejectionReason"),
	}
	switch ApprovalStatus(strings.ToLower(stringField(raw, "approvalStatus"))) {
	case ApprovalApproved:
		o.ApprovalStatus = ApprovalApproved
	case ApprovalRejected:
		o.ApprovalStatus = ApprovalRejected
	}
	return o
}

func PlayerFromDocument(raw bson.M) *Player {
	return &Player{
		ID:    DocumentID(raw["_id"]),
		Name:  firstString(raw, "name", "displayName"),
		Email: stringField(raw, "email"),
		Phone: firstString(raw, "phoneNumber", "phone"),
	}
}

// AccessState is the owner-approval gate in front of the booking controller.
// Grounds is only meaningful when Status is approved.
type AccessState struct {
	Status  ApprovalStatus `json:"status"`
	Grounds []string       `json:"grounds,omitempty"`
	Reason  string         `json:"reason,omitempty"`
}

func NewAccessState(owner *Owner, grounds []string) AccessState {
	if owner == nil {
		return AccessState{Status: ApprovalPending}
	}
	switch owner.ApprovalStatus {
	case ApprovalApproved:
		return AccessState{Status: ApprovalApproved, Grounds: grounds}
	case ApprovalRejected:
		return AccessState{Status: ApprovalRejected, Reason: owner.RejectionReason}
	default:
		return AccessState{Status: ApprovalPending}
	}
}

func (a AccessState) IsApproved() bool {
	return a.Status == ApprovalApproved
}
