package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"car-doctor-server/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRepository interface {
	// ListServices returns every service whose title contains search,
	// ignoring case, ordered by price.
	ListServices(ctx context.Context, search string, ascending bool) ([]model.Service, error)
	// GetService returns a nil Service without error when no service has the id.
	GetService(ctx context.Context, id string) (model.Service, error)
}

type MongoServiceRepository struct {
	collection *mongo.Collection
}

func NewMongoServiceRepository(collection *mongo.Collection) *MongoServiceRepository {
	return &MongoServiceRepository{collection: collection}
}

func (r *MongoServiceRepository) ListServices(ctx context.Context, search string, ascending bool) ([]model.Service, error) {
	cur, err := r.collection.Find(ctx, servicesFilter(search), servicesFindOptions(ascending))
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}

	services := []model.Service{}
	if err := cur.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	return services, nil
}

func (r *MongoServiceRepository) GetService(ctx context.Context, id string) (model.Service, error) {
	objId, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(serviceProjection)

	service := model.Service{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objId}, opts).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service %v: %w", id, err)
	}

	return service, nil
}

var serviceProjection = bson.D{
	{Key: "title", Value: 1},
	{Key: "service_id", Value: 1},
	{Key: "price", Value: 1},
	{Key: "img", Value: 1},
}

// servicesFilter matches search literally; regex metacharacters in the
// query are escaped.
func servicesFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{
		model.ServiceTitleField: primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"},
	}
}

func servicesFindOptions(ascending bool) *options.FindOptions {
	order := -1
	if ascending {
		order = 1
	}
	return options.Find().SetSort(bson.D{{Key: model.ServicePriceField, Value: order}})
}
