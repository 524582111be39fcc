package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongodbRepo_GetOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("approved owner", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "playspot.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "owner-1"},
			{Key: "approvalStatus", Value: "approved"},
		}))

		owner, err := repo.GetOwner(context.Background(), "owner-1")
		require.NoError(mt, err)
		assert.Equal(mt, "owner-1", owner.ID)
		assert.Equal(mt, ApprovalApproved, owner.ApprovalStatus)
	})

	mt.Run("missing owner", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "playspot.users", mtest.FirstBatch))

		owner, err := repo.GetOwner(context.Background(), "owner-2")
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.Nil(mt, owner)
	})
}

func TestMongodbRepo_ListGroundsByOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns grounds", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "playspot.grounds", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "g1"}, {Key: "ownerId", Value: "owner-1"}, {Key: "name", Value: "Arena One"}},
			bson.D{{Key: "_id", Value: "g2"}, {Key: "ownerId", Value: "owner-1"}, {Key: "name", Value: "Arena Two"}, {Key: "price", Value: 800}},
		))

		grounds, err := repo.ListGroundsByOwner(context.Background(), "owner-1")
		require.NoError(mt, err)
		require.Len(mt, grounds, 2)
		assert.Equal(mt, []string{"g1", "g2"}, GroundIDs(grounds))
		assert.Equal(mt, 800.0, grounds[1].Price)
	})

	mt.Run("query error", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))

		_, err := repo.ListGroundsByOwner(context.Background(), "owner-1")
		assert.Error(mt, err)
	})
}

func TestMongodbRepo_ListBookingsByGrounds(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("normalizes documents", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "playspot.bookings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "b1"},
				{Key: "groundId", Value: "g1"},
				{Key: "userId", Value: "p1"},
				{Key: "date", Value: "2024-03-01"},
				{Key: "duration", Value: 2},
				{Key: "pricePerHour", Value: 500},
			},
			bson.D{
				{Key: "_id", Value: "b2"},
				{Key: "groundId", Value: "g2"},
				{Key: "bookingStatus", Value: "confirmed"},
				{Key: "totalPrice", Value: 900},
			},
		))

		bookings, err := repo.ListBookingsByGrounds(context.Background(), []string{"g1", "g2"})
		require.NoError(mt, err)
		require.Len(mt, bookings, 2)
		assert.Equal(mt, "b1", bookings[0].ID)
		assert.Equal(mt, 1000.0, bookings[0].TotalAmount)
		assert.Equal(mt, BookingPending, bookings[0].Status)
		assert.Equal(mt, BookingConfirmed, bookings[1].Status)
		assert.Equal(mt, 900.0, bookings[1].TotalAmount)
	})

	mt.Run("no grounds skips the query", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")

		bookings, err := repo.ListBookingsByGrounds(context.Background(), nil)
		require.NoError(mt, err)
		assert.Empty(mt, bookings)
	})
}

func TestMongodbRepo_UpdateBookingStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.UpdateBookingStatus(context.Background(), "b1", BookingRejected, "Ground closed")
		require.NoError(mt, err)
	})

	mt.Run("no such booking", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.UpdateBookingStatus(context.Background(), "missing", BookingConfirmed, "")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongodbRepo_GetPayment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("defaults status", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "playspot")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "playspot.payments", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1_g1_2024-03-01_18:00"},
			{Key: "transactionId", Value: "tx-9"},
		}))

		payment, err := repo.GetPayment(context.Background(), "p1_g1_2024-03-01_18:00")
		require.NoError(mt, err)
		assert.Equal(mt, "tx-9", payment.TransactionID)
		assert.Equal(mt, "pending", payment.Status)
	})
}
