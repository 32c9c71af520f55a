package database

import (
	"context"
	"fmt"

	"car-doctor-server/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking model.Booking) (model.InsertResult, error)
	// ListBookings filters on customerEmail; an empty email returns all bookings.
	ListBookings(ctx context.Context, email string) ([]model.Booking, error)
	DeleteBooking(ctx context.Context, id string) (model.DeleteResult, error)
	// UpdateBookingStatus sets the status field and nothing else.
	UpdateBookingStatus(ctx context.Context, id string, status string) (model.UpdateResult, error)
}

type MongoBookingRepository struct {
	collection *mongo.Collection
}

func NewMongoBookingRepository(collection *mongo.Collection) *MongoBookingRepository {
	return &MongoBookingRepository{collection: collection}
}

func (r *MongoBookingRepository) CreateBooking(ctx context.Context, booking model.Booking) (model.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return model.InsertResult{Acknowledged: true, InsertedId: res.InsertedID}, nil
}

func (r *MongoBookingRepository) ListBookings(ctx context.Context, email string) ([]model.Booking, error) {
	cur, err := r.collection.Find(ctx, bookingsFilter(email))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	bookings := []model.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *MongoBookingRepository) DeleteBooking(ctx context.Context, id string) (model.DeleteResult, error) {
	objId, err := objectID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete booking %v: %w", id, err)
	}

	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *MongoBookingRepository) UpdateBookingStatus(ctx context.Context, id string, status string) (model.UpdateResult, error) {
	objId, err := objectID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	update := bson.M{
		"$set": bson.M{
			model.BookingStatusField: status,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objId}, update)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update booking %v: %w", id, err)
	}

	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedId:    res.UpsertedID,
	}, nil
}

func bookingsFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{model.BookingCustomerEmailField: email}
}
