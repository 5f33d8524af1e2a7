// Package repository provides data access for the combo catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

// ComboDefinition pairs a combo with the menu items selectable inside it.
type ComboDefinition struct {
	model.Combo `bson:",inline"`
	// Items is the full pool; entree and base-choice candidates are
	// partitioned by MenuItem.IsEntree
	Items []model.MenuItem `bson:"items" json:"items"`
}

// CatalogConfig represents a combo catalog configuration document.
// Exactly one document is active at a time; writes create a new version.
type CatalogConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Combos    []ComboDefinition      `bson:"combos" json:"combos"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Find returns the definition with the given combo id, or nil.
func (c *CatalogConfig) Find(comboID int) *ComboDefinition {
	for i := range c.Combos {
		if c.Combos[i].ID == comboID {
			return &c.Combos[i]
		}
	}
	return nil
}

// CatalogRepository provides methods for catalog operations.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Catalog,
	}
}

// GetActive returns the active catalog configuration.
func (r *CatalogRepository) GetActive(ctx context.Context) (*CatalogConfig, error) {
	var config CatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active catalog found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates the current catalog and inserts the next active version.
// Versions are monotonic across full replacements and item updates.
func (r *CatalogRepository) Create(ctx context.Context, combos []ComboDefinition, createdBy string) (*CatalogConfig, error) {
	version := 1
	var prev CatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&prev)
	switch {
	case err == mongo.ErrNoDocuments:
	case err != nil:
		return nil, err
	default:
		version = prev.Version + 1
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := CatalogConfig{
		ID:        primitive.NewObjectID(),
		Combos:    combos,
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// ReplaceItems swaps the item pool of one combo inside the active catalog.
func (r *CatalogRepository) ReplaceItems(ctx context.Context, comboID int, items []model.MenuItem, updatedBy string) (*CatalogConfig, error) {
	update := bson.M{
		"$set": bson.M{
			"combos.$[combo].items": items,
			"updated_at":            time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{bson.M{"combo.id": comboID}},
	}

	var config CatalogConfig
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"active": true},
		update,
		options.FindOneAndUpdate().
			SetArrayFilters(arrayFilters).
			SetReturnDocument(options.After),
	).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns catalog versions, newest first.
func (r *CatalogRepository) List(ctx context.Context, limit int) ([]CatalogConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []CatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
