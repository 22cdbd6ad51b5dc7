package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

const cartsCollection = "carts"

type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection(cartsCollection)}
}

// EnsureIndexes enforces one cart document per user.
func (r *MongoCartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type mongoCartItem struct {
	ProductID string `bson:"product_id"`
	Qty       int    `bson:"qty"`
}

type mongoCart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Items     []mongoCartItem    `bson:"items"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoCartRepository) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var mc mongoCart
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	cart := &domain.Cart{
		ID:        mc.ID.Hex(),
		UserID:    mc.UserID,
		Items:     make([]domain.CartItem, 0, len(mc.Items)),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
	for _, it := range mc.Items {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: it.ProductID, Qty: it.Qty})
	}
	return cart, nil
}

// Save upserts the whole cart document keyed by user id.
func (r *MongoCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	items := make([]mongoCartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, mongoCartItem{ProductID: it.ProductID, Qty: it.Qty})
	}

	update := bson.M{"$set": bson.M{
		"user_id":    cart.UserID,
		"items":      items,
		"updated_at": cart.UpdatedAt.Unix(),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"user_id": cart.UserID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
