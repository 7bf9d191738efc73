package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/umalmyha/salescrm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "salescrm"

const (
	customersCollection = "customers"
	leadsCollection     = "leads"
)

type mongoCustomerRepository struct {
	customers *mongo.Collection
}

// NewMongoCustomerRepository builds mongodb CustomerRepository
func NewMongoCustomerRepository(client *mongo.Client) CustomerRepository {
	return &mongoCustomerRepository{
		customers: client.Database(databaseName).Collection(customersCollection),
	}
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if _, err := r.customers.InsertOne(ctx, c); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := r.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) FindByOwner(ctx context.Context, ownerID, search string, offset, limit int) ([]*model.Customer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.customers.Find(ctx, ownerScopedFilter(ownerID, search), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]*model.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) CountByOwner(ctx context.Context, ownerID, search string) (int, error) {
	count, err := r.customers.CountDocuments(ctx, ownerScopedFilter(ownerID, search))
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *mongoCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	if _, err := r.customers.ReplaceOne(ctx, bson.M{"_id": c.ID}, c); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.customers.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return nil
}

func ownerScopedFilter(ownerID, search string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{
		"ownerId": ownerID,
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		},
	}
}
