// Package repository provides data access for catalog products.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductDocument represents a catalog product document.
// Prices are stored as decimal strings so no precision is lost in BSON.
type ProductDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code      string             `bson:"code" json:"code"`
	Name      string             `bson:"name" json:"name"`
	Price     string             `bson:"price" json:"price"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToItem converts the document into a domain item.
func (d ProductDocument) ToItem() (model.Item, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return model.Item{}, fmt.Errorf("product %s: invalid price %q: %w", d.Code, d.Price, err)
	}
	if price.IsNegative() {
		return model.Item{}, fmt.Errorf("product %s: negative price %s", d.Code, d.Price)
	}
	return model.NewItem(d.Code, d.Name, price), nil
}

// ProductsRepository provides methods for catalog product operations.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// List returns every product sorted by code.
func (r *ProductsRepository) List(ctx context.Context) ([]model.Item, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"code": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.ToItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Upsert creates or replaces the products keyed by code.
func (r *ProductsRepository) Upsert(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(items))
	for _, item := range items {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"code": item.Code}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"name":       item.Name,
					"price":      item.Price.String(),
					"updated_at": now,
				},
				"$setOnInsert": bson.M{"created_at": now},
			}).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}

// Count returns the number of stored products.
func (r *ProductsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
