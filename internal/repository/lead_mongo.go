package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/salescrm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoLeadRepository struct {
	leads     *mongo.Collection
	customers *mongo.Collection
}

// NewMongoLeadRepository builds mongodb LeadRepository
func NewMongoLeadRepository(client *mongo.Client) LeadRepository {
	db := client.Database(databaseName)
	return &mongoLeadRepository{
		leads:     db.Collection(leadsCollection),
		customers: db.Collection(customersCollection),
	}
}

func (r *mongoLeadRepository) Create(ctx context.Context, l *model.Lead) error {
	if _, err := r.leads.InsertOne(ctx, l); err != nil {
		return err
	}
	return nil
}

func (r *mongoLeadRepository) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	var l model.Lead
	if err := r.leads.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *mongoLeadRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*model.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.leads.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := make([]*model.Lead, 0)
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// FindByOwnerID resolves ownership in bulk - first all customer ids
// belonging to the owner, then every lead under them
func (r *mongoLeadRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*model.Lead, error) {
	customerIDs, err := r.customers.Distinct(ctx, "_id", bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}

	cursor, err := r.leads.Find(ctx, bson.M{"customerId": bson.M{"$in": customerIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := make([]*model.Lead, 0)
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *mongoLeadRepository) Update(ctx context.Context, l *model.Lead) error {
	if _, err := r.leads.ReplaceOne(ctx, bson.M{"_id": l.ID}, l); err != nil {
		return err
	}
	return nil
}

func (r *mongoLeadRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.leads.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return nil
}

func (r *mongoLeadRepository) DeleteByCustomerID(ctx context.Context, customerID string) error {
	if _, err := r.leads.DeleteMany(ctx, bson.M{"customerId": customerID}); err != nil {
		return err
	}
	return nil
}
