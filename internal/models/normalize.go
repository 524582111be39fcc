package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field-name fallback chains. Older app builds wrote the alternates.
var (
	durationKeys = []string{"duration", "hours"}
	priceKeys    = []string{"pricePerHour", "groundPrice", "price"}
	totalKeys    = []string{"totalAmount", "totalPrice"}
	statusKeys   = []string{"status", "bookingStatus"}
)

// NormalizeBooking maps a raw bookings document onto a Booking. Missing or
// oddly typed fields are defaulted, never reported.
func NormalizeBooking(id string, raw bson.M) Booking {
	b := Booking{
		ID:            id,
		GroundID:      stringField(raw, "groundId"),
		GroundName:    stringField(raw, "groundName"),
		PlayerID:      stringField(raw, "userId"),
		Date:          stringField(raw, "date"),
		Time:          stringField(raw, "time"),
		PaymentStatus: stringField(raw, "paymentStatus"),
		Reason:        stringField(raw, "reason"),
		CreatedAt:     timeField(raw, "createdAt"),
	}
	if b.ID == "" {
		b.ID = DocumentID(raw["_id"])
	}

	b.Duration = 1
	if d, ok := firstNumber(raw, durationKeys...); ok && d > 0 {
		b.Duration = d
	}
	if p, ok := firstNumber(raw, priceKeys...); ok && p >= 0 {
		b.PricePerHour = p
	}
	if t, ok := firstNumber(raw, totalKeys...); ok && t >= 0 {
		b.TotalAmount = t
	} else {
		b.TotalAmount = b.Duration * b.PricePerHour
	}

	b.Status = BookingPending
	for _, k := range statusKeys {
		if s, err := ParseBookingStatus(strings.ToLower(stringField(raw, k))); err == nil {
			b.Status = s
			break
		}
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = "pending"
	}
	return b
}

// DocumentID renders a document _id, string or ObjectID, as a string.
func DocumentID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func stringField(raw bson.M, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	case primitive.DateTime:
		return v.Time().UTC().Format("2006-01-02")
	case time.Time:
		return v.UTC().Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

func firstString(raw bson.M, keys ...string) string {
	for _, k := range keys {
		if s := stringField(raw, k); s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(raw bson.M, keys ...string) (float64, bool) {
	for _, k := range keys {
		if n, ok := toFloat(raw[k]); ok {
			return n, true
		}
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func timeField(raw bson.M, key string) time.Time {
	switch v := raw[key].(type) {
	case primitive.DateTime:
		return v.Time().UTC()
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
