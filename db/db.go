package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	ProductsCollection        = "products"
	UsersCollection           = "users"
	CartCollection            = "cart"
	OrdersCollection          = "orders"
	ContactMessagesCollection = "contact_messages"
)

// Database holds the client and one handle per collection.
type Database struct {
	Client          *mongo.Client
	DB              *mongo.Database
	Products        *mongo.Collection
	Users           *mongo.Collection
	Cart            *mongo.Collection
	Orders          *mongo.Collection
	ContactMessages *mongo.Collection
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, database string) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	d := client.Database(database)
	return &Database{
		Client:          client,
		DB:              d,
		Products:        d.Collection(ProductsCollection),
		Users:           d.Collection(UsersCollection),
		Cart:            d.Collection(CartCollection),
		Orders:          d.Collection(OrdersCollection),
		ContactMessages: d.Collection(ContactMessagesCollection),
	}, nil
}

// EnsureCollections creates missing collections and the indexes the stores
// rely on.
func (d *Database) EnsureCollections(ctx context.Context) error {
	existing, err := d.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range []string{
		ProductsCollection,
		UsersCollection,
		CartCollection,
		OrdersCollection,
		ContactMessagesCollection,
	} {
		if have[name] {
			continue
		}
		log.Printf("Creating %s collection...", name)
		if err := d.DB.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}

	// one line per (user, product); the cart upsert depends on it
	_, err = d.Cart.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_product_unique"),
	})
	if err != nil {
		return fmt.Errorf("create cart index: %w", err)
	}
	_, err = d.Orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create orders index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
