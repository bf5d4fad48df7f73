package store

import (
	"context"
	"errors"

	"freshbasket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure interfaces
var (
	_ Products = (*MongoProducts)(nil)
	_ Accounts = (*MongoAccounts)(nil)
	_ Carts    = (*MongoCarts)(nil)
	_ Orders   = (*MongoOrders)(nil)
	_ Contacts = (*MongoContacts)(nil)
)

// MongoProducts stores products keyed by _id = product_id.
type MongoProducts struct{ Coll *mongo.Collection }

func (s *MongoProducts) ListActive(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.Coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, unavailable("list products", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, unavailable("decode products", err)
	}
	for i := range products {
		products[i].ID = NumericID(products[i].ProductID)
	}
	if products == nil {
		products = []models.Product{}
	}
	// ids are strings in the store, so order numerically here
	SortProducts(products)
	return products, nil
}

func (s *MongoProducts) Get(ctx context.Context, productID string) (models.Product, error) {
	var p models.Product
	err := s.Coll.FindOne(ctx, bson.M{"_id": productID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, unavailable("get product", err)
	}
	p.ID = NumericID(p.ProductID)
	return p, nil
}

func (s *MongoProducts) Count(ctx context.Context) (int, int, error) {
	total, err := s.Coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, unavailable("count products", err)
	}
	active, err := s.Coll.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return 0, 0, unavailable("count active products", err)
	}
	return int(total), int(active), nil
}

func (s *MongoProducts) SeedIfEmpty(ctx context.Context, products []models.Product) (bool, error) {
	n, err := s.Coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, unavailable("probe products", err)
	}
	if n > 0 {
		return false, nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	_, err = s.Coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if mongo.IsDuplicateKeyError(err) {
		// another instance seeded concurrently
		return false, nil
	}
	if err != nil {
		return false, unavailable("seed products", err)
	}
	return true, nil
}

// MongoAccounts stores accounts keyed by _id = email, which makes InsertOne a
// conditional insert.
type MongoAccounts struct{ Coll *mongo.Collection }

func (s *MongoAccounts) Create(ctx context.Context, a models.Account) error {
	_, err := s.Coll.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return unavailable("create account", err)
	}
	return nil
}

func (s *MongoAccounts) Get(ctx context.Context, email string) (models.Account, error) {
	var a models.Account
	err := s.Coll.FindOne(ctx, bson.M{"_id": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, unavailable("get account", err)
	}
	return a, nil
}

func (s *MongoAccounts) UpdateProfile(ctx context.Context, email, name, phone, address string) error {
	res, err := s.Coll.UpdateOne(ctx,
		bson.M{"_id": email},
		bson.M{"$set": bson.M{
			"name":    name,
			"phone":   phone,
			"address": address,
		}},
	)
	if err != nil {
		return unavailable("update profile", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoAccounts) Count(ctx context.Context) (int, error) {
	n, err := s.Coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, unavailable("count accounts", err)
	}
	return int(n), nil
}

// MongoCarts stores one document per (user_email, product_id), backed by a
// unique compound index.
type MongoCarts struct{ Coll *mongo.Collection }

func (s *MongoCarts) List(ctx context.Context, email string) ([]models.CartLine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}, {Key: "product_id", Value: 1}})
	cursor, err := s.Coll.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, unavailable("list cart", err)
	}
	defer cursor.Close(ctx)

	lines := []models.CartLine{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, unavailable("decode cart", err)
	}
	for i := range lines {
		lines[i].ID = NumericID(lines[i].ProductID)
	}
	return lines, nil
}

// Add matches the line only while the increment keeps it within limit. A line
// past that bound misses the filter, and the upsert then collides with the
// unique (user_email, product_id) index. The collision is retried once, since
// two first adds racing on one line collide the same way.
func (s *MongoCarts) Add(ctx context.Context, line models.CartLine, limit int) error {
	if line.Quantity > limit {
		return ErrLimitExceeded
	}
	filter := bson.M{
		"user_email": line.UserEmail,
		"product_id": line.ProductID,
		"quantity":   bson.M{"$lte": limit - line.Quantity},
	}
	update := bson.M{
		"$inc": bson.M{"quantity": line.Quantity},
		"$setOnInsert": bson.M{
			"name":     line.Name,
			"price":    line.Price,
			"unit":     line.Unit,
			"image":    line.Image,
			"added_at": line.AddedAt,
		},
	}
	opts := options.Update().SetUpsert(true)

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if _, err = s.Coll.UpdateOne(ctx, filter, update, opts); !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrLimitExceeded
	}
	if err != nil {
		return unavailable("add cart line", err)
	}
	return nil
}

func (s *MongoCarts) Remove(ctx context.Context, email, productID string) error {
	_, err := s.Coll.DeleteOne(ctx, bson.M{"user_email": email, "product_id": productID})
	if err != nil {
		return unavailable("remove cart line", err)
	}
	return nil
}

// MongoOrders reads the order history.
type MongoOrders struct{ Coll *mongo.Collection }

func (s *MongoOrders) ListByUser(ctx context.Context, email string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Coll.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, unavailable("list orders", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, unavailable("decode orders", err)
	}
	return orders, nil
}

// MongoContacts appends contact messages keyed by _id = message_id.
type MongoContacts struct{ Coll *mongo.Collection }

func (s *MongoContacts) Insert(ctx context.Context, m models.ContactMessage) error {
	_, err := s.Coll.InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return unavailable("insert contact message", err)
	}
	return nil
}

func (s *MongoContacts) Recent(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, unavailable("list contact messages", err)
	}
	defer cursor.Close(ctx)

	msgs := []models.ContactMessage{}
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, unavailable("decode contact messages", err)
	}
	return msgs, nil
}

func (s *MongoContacts) Count(ctx context.Context) (int, error) {
	n, err := s.Coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, unavailable("count contact messages", err)
	}
	return int(n), nil
}
