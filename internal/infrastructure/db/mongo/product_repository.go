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

const productsCollection = "products"

type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productsCollection)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Owner       string             `bson:"owner,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

// List returns the whole catalog, newest first.
func (r *MongoProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := mongoProduct{
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Owner:       product.Owner,
		CreatedAt:   product.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"price":       product.Price,
		"description": product.Description,
		"image_url":   product.ImageURL,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (mp *mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Price:       mp.Price,
		Description: mp.Description,
		ImageURL:    mp.ImageURL,
		Owner:       mp.Owner,
		CreatedAt:   unixToTime(mp.CreatedAt),
	}
}
