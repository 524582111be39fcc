package models

import (
	"fmt"
	"slices"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDelayed   BookingStatus = "delayed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingDelayed, BookingRejected, BookingCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// IsWriteTarget reports whether an owner may move a booking into s.
// pending is only ever an initial value.
func (s BookingStatus) IsWriteTarget() bool {
	switch s {
	case BookingConfirmed, BookingDelayed, BookingRejected, BookingCancelled:
		return true
	}
	return false
}

type BookingAction string

const (
	ActionConfirm BookingAction = "confirm"
	ActionReject  BookingAction = "reject"
)

func (a BookingAction) Target() BookingStatus {
	switch a {
	case ActionConfirm:
		return BookingConfirmed
	case ActionReject:
		return BookingRejected
	}
	return ""
}

var offeredActions = map[BookingStatus][]BookingAction{
	BookingPending:   {ActionConfirm, ActionReject},
	BookingDelayed:   {ActionConfirm, ActionReject},
	BookingRejected:  {ActionConfirm},
	BookingConfirmed: {},
	BookingCancelled: {},
}

// AvailableActions lists the actions the owner screen offers for a booking in status s.
func AvailableActions(s BookingStatus) []BookingAction {
	return slices.Clone(offeredActions[s])
}

func IsActionOffered(s BookingStatus, a BookingAction) bool {
	return slices.Contains(offeredActions[s], a)
}

type Booking struct {
	ID            string        `json:"id"`
	GroundID      string        `json:"ground_id"`
	GroundName    string        `json:"ground_name"`
	PlayerID      string        `json:"player_id"`
	PlayerName    string        `json:"player_name"`
	PlayerEmail   string        `json:"player_email"`
	PlayerPhone   string        `json:"player_phone,omitempty"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Time          string        `json:"time"` // e.g. "14:00-15:00"
	Duration      float64       `json:"duration"`
	PricePerHour  float64       `json:"price_per_hour"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus string        `json:"payment_status"` // eg "pending", "paid"
	Reason        string        `json:"reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
}

// WithPlayer fills the player fields, substituting placeholders for anything missing.
func (b *Booking) WithPlayer(p *Player) {
	if p == nil {
		p = &Player{}
	}
	b.PlayerName = orDefault(p.Name, UnknownPlayerName)
	b.PlayerEmail = orDefault(p.Email, UnknownPlayerEmail)
	b.PlayerPhone = orDefault(p.Phone, UnknownPlayerPhone)
}

func dateKey(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// SortByDateDesc orders bookings by reservation date, most recent first.
// Unparseable dates go last. Equal dates keep no particular order.
func SortByDateDesc(bookings []Booking) {
	slices.SortFunc(bookings, func(a, b Booking) int {
		ta, okA := dateKey(a.Date)
		tb, okB := dateKey(b.Date)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return tb.Compare(ta)
	})
}

func FilterByStatus(bookings []Booking, status BookingStatus) []Booking {
	if status == "" {
		return slices.Clone(bookings)
	}
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
