package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

// CartsRepository persists carts as one document per cart id.
// Abandoned carts expire through a TTL index on updated_at.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a new carts repository.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{
		collection: db.Carts,
	}
}

// Get returns the cart with the given id, or nil when none exists.
func (r *CartsRepository) Get(ctx context.Context, id string) (*model.Cart, error) {
	var cart model.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the full cart snapshot.
func (r *CartsRepository) Save(ctx context.Context, cart *model.Cart) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": cart.ID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the cart document. Deleting a missing cart is not an error.
func (r *CartsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
