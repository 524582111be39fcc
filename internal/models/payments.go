package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

type Payment struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Status        string `json:"status"`
}

// PaymentID derives the payments document id the app writes at checkout.
func PaymentID(playerID, groundID, date, slot string) string {
	return strings.Join([]string{playerID, groundID, date, slot}, "_")
}

func PaymentFromDocument(raw bson.M) *Payment {
	return &Payment{
		ID:            DocumentID(raw["_id"]),
		TransactionID: stringField(raw, "transactionId"),
		PaymentMethod: stringField(raw, "paymentMethod"),
		Status:        orDefault(stringField(raw, "status"), "pending"),
	}
}

// StringOrList accepts either "x" or ["x", ...]. Navigation params reach us in both shapes.
type StringOrList []string

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringOrList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = StringOrList{num.String()}
		return nil
	}
	return fmt.Errorf("expected string or list of strings, got %s", string(data))
}

func (s StringOrList) First() string {
	if len(s) == 0 {
		return ""
	}
	return strings.TrimSpace(s[0])
}

type ConfirmationParams struct {
	GroundID StringOrList `json:"groundId" form:"groundId"`
	Date     StringOrList `json:"date" form:"date"`
	Time     StringOrList `json:"time" form:"time"`
	Price    StringOrList `json:"price" form:"price"`
	Address  StringOrList `json:"address" form:"address"`
	Status   StringOrList `json:"status" form:"status"`
}

type BookingConfirmation struct {
	GroundID   string   `json:"ground_id"`
	GroundName string   `json:"ground_name"`
	Address    string   `json:"address"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Price      float64  `json:"price"`
	Status     string   `json:"status"`
	Payment    *Payment `json:"payment,omitempty"`
}
