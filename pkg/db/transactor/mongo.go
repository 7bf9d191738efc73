package transactor

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactor struct {
	client *mongo.Client
}

// NewMongoTransactor builds Transactor running logic within mongo session transaction.
// Collection operations receiving the callback context join the transaction automatically.
func NewMongoTransactor(client *mongo.Client) Transactor {
	return &mongoTransactor{client: client}
}

func (t *mongoTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, txFunc(sessCtx)
	})
	return err
}
