package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OwnerRepo interface {
	GetOwner(ctx context.Context, ownerId string) (*Owner, error)
	ListGroundsByOwner(ctx context.Context, ownerId string) ([]*Ground, error)
}

type BookingRepo interface {
	ListBookingsByGrounds(ctx context.Context, groundIds []string) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingId string, status BookingStatus, reason string) error
}

type PlayerRepo interface {
	GetPlayer(ctx context.Context, playerId string) (*Player, error)
}

// BookingStore is everything the owner booking controller reads and writes.
type BookingStore interface {
	OwnerRepo
	BookingRepo
	PlayerRepo
}

type ConfirmationRepo interface {
	GetGround(ctx context.Context, groundId string) (*Ground, error)
	GetPayment(ctx context.Context, paymentId string) (*Payment, error)
}

func (mdb *MongodbRepo) GetOwner(ctx context.Context, ownerId string) (*Owner, error) {
	raw, err := mdb.findByID(ctx, UsersColName, ownerId)
	if err != nil {
		return nil, err
	}
	owner := OwnerFromDocument(raw)
	if owner.ID == "" {
		owner.ID = ownerId
	}
	return owner, nil
}

func (mdb *MongodbRepo) GetPlayer(ctx context.Context, playerId string) (*Player, error) {
	if playerId == "" {
		return nil, ErrNotFound
	}
	raw, err := mdb.findByID(ctx, UsersColName, playerId)
	if err != nil {
		return nil, err
	}
	return PlayerFromDocument(raw), nil
}

func (mdb *MongodbRepo) GetGround(ctx context.Context, groundId string) (*Ground, error) {
	raw, err := mdb.findByID(ctx, GroundsColName, groundId)
	if err != nil {
		return nil, err
	}
	return GroundFromDocument(raw), nil
}

func (mdb *MongodbRepo) GetPayment(ctx context.Context, paymentId string) (*Payment, error) {
	raw, err := mdb.findByID(ctx, PaymentsColName, paymentId)
	if err != nil {
		return nil, err
	}
	return PaymentFromDocument(raw), nil
}

func (mdb *MongodbRepo) ListGroundsByOwner(ctx context.Context, ownerId string) ([]*Ground, error) {
	col, err := mdb.GetCollection(GroundsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	cursor, err := col.Find(ctx, bson.M{"ownerId": ownerId})
	if err != nil {
		return nil, fmt.Errorf("error finding grounds: %w", err)
	}
	defer cursor.Close(ctx)

	grounds := []*Ground{}
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("error decoding ground: %w", err)
		}
		grounds = append(grounds, GroundFromDocument(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return grounds, nil
}

// ListBookingsByGrounds returns normalized bookings without player details.
func (mdb *MongodbRepo) ListBookingsByGrounds(ctx context.Context, groundIds []string) ([]Booking, error) {
	if len(groundIds) == 0 {
		return []Booking{}, nil
	}
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	cursor, err := col.Find(ctx, bson.M{"groundId": bson.M{"$in": groundIds}})
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	bookings := make([]Booking, 0, len(raws))
	for _, raw := range raws {
		bookings = append(bookings, NormalizeBooking(DocumentID(raw["_id"]), raw))
	}
	return bookings, nil
}

// UpdateBookingStatus sets status, and reason when given, and nothing else.
func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, bookingId string, status BookingStatus, reason string) error {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	set := bson.M{"status": string(status)}
	if reason != "" {
		set["reason"] = reason
	}

	res, err := col.UpdateOne(ctx, idFilter(bookingId), bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingId, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	grounds, err := mdb.GetCollection(GroundsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	if _, err := grounds.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}},
		Options: options.Index().SetName("owner_id_idx"),
	}); err != nil {
		return fmt.Errorf("error creating grounds index: %w", err)
	}

	bookings, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	if _, err := bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "groundId", Value: 1}},
		Options: options.Index().SetName("ground_id_idx"),
	}); err != nil {
		return fmt.Errorf("error creating bookings index: %w", err)
	}
	return nil
}
