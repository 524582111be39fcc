package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

type Ground struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"owner_id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
}

func GroundFromDocument(raw bson.M) *Ground {
	g := &Ground{
		ID:      DocumentID(raw["_id"]),
		OwnerID: stringField(raw, "ownerId"),
		Name:    stringField(raw, "name"),
		Address: stringField(raw, "address"),
	}
	if p, ok := firstNumber(raw, "price", "pricePerHour"); ok {
		g.Price = p
	}
	return g
}

func GroundIDs(grounds []*Ground) []string {
	ids := make([]string, 0, len(grounds))
	for _, g := range grounds {
		ids = append(ids, g.ID)
	}
	return ids
}
