// Package source implements extraction from the operational MongoDB store.
// It resolves the active logical database when the configured name is absent
// and tolerates naming-casing variance for the line-items collection.
package source

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dukaforge/salesmart/pkg/types"
)

// Databases never selected by auto-detection.
var reservedDatabases = map[string]bool{
	"admin":  true,
	"config": true,
	"local":  true,
}

// Collection names probed for order line items, in order. MERN scaffolds
// disagree on the casing.
var orderItemCollections = []string{"orderitems", "orderItems"}

// Extractor pulls the four raw entity collections from MongoDB. It performs
// no filtering or projection; every run is a full extraction.
type Extractor struct {
	client *mongo.Client
	cfg    types.Config
	logger *log.Logger
}

// Connect dials the configured MongoDB deployment.
func Connect(ctx context.Context, cfg types.Config, logger *log.Logger) (*Extractor, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	return &Extractor{client: client, cfg: cfg, logger: logger}, nil
}

// Close disconnects from the source deployment.
func (e *Extractor) Close(ctx context.Context) error {
	return e.client.Disconnect(ctx)
}

// Extract pulls users, products, orders, and order line items. A missing
// line-items collection is a warning, not a failure: the extraction proceeds
// with an empty set and the fact table ends up empty.
func (e *Extractor) Extract(ctx context.Context) (*types.Extraction, error) {
	dbName, err := e.resolveDatabase(ctx)
	if err != nil {
		return nil, err
	}
	db := e.client.Database(dbName)

	users, err := e.findAll(ctx, db, "users")
	if err != nil {
		return nil, err
	}
	products, err := e.findAll(ctx, db, "products")
	if err != nil {
		return nil, err
	}
	orders, err := e.findAll(ctx, db, "orders")
	if err != nil {
		return nil, err
	}
	items, err := e.extractOrderItems(ctx, db)
	if err != nil {
		return nil, err
	}

	return &types.Extraction{
		Users:      users,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
	}, nil
}

// resolveDatabase returns the configured database name if it exists on the
// deployment; otherwise the first non-reserved database found. When nothing
// qualifies, the configured name is used as-is and yields empty collections.
func (e *Extractor) resolveDatabase(ctx context.Context) (string, error) {
	names, err := e.client.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		return "", fmt.Errorf("listing databases: %w", err)
	}

	for _, name := range names {
		if name == e.cfg.MongoDatabase {
			return name, nil
		}
	}
	for _, name := range names {
		if !reservedDatabases[name] {
			e.logger.Printf("Using found database: %q", name)
			return name, nil
		}
	}
	return e.cfg.MongoDatabase, nil
}

// extractOrderItems probes the known casing variants of the line-items
// collection and returns the first one that exists.
func (e *Extractor) extractOrderItems(ctx context.Context, db *mongo.Database) ([]types.Document, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	for _, candidate := range orderItemCollections {
		if existing[candidate] {
			return e.findAll(ctx, db, candidate)
		}
	}

	e.logger.Printf("WARNING: 'orderitems' collection not found. Fact table might be empty.")
	return nil, nil
}

// findAll fetches every document of a collection and normalizes natural keys
// to canonical string form.
func (e *Extractor) findAll(ctx context.Context, db *mongo.Database, collection string) ([]types.Document, error) {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", collection, err)
	}

	docs := make([]types.Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, normalizeDocument(r))
	}
	return docs, nil
}
