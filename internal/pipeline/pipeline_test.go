package pipeline

import (
	"context"
	"database/sql"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/salesmart/pkg/types"
)

// stubSource serves a canned extraction, standing in for the MongoDB
// extractor.
type stubSource struct {
	ext *types.Extraction
}

func (s *stubSource) Extract(ctx context.Context) (*types.Extraction, error) {
	return s.ext, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func sampleExtraction() *types.Extraction {
	return &types.Extraction{
		Users: []types.Document{
			{"_id": "u1", "username": "alice", "email": "alice@example.com"},
		},
		Products: []types.Document{
			{"_id": "p1", "name": "Laptop", "price": 10.0},
		},
		Orders: []types.Document{
			{"_id": "o1", "user": "u1", "items": []any{"oi1"}, "createdAt": "2023-06-15"},
		},
		OrderItems: []types.Document{
			{"_id": "oi1", "order": "o1", "product": "p1", "qty": 3, "price": 10.0},
		},
	}
}

func runPipeline(t *testing.T, ext *types.Extraction, path string) error {
	t.Helper()
	cfg := types.Config{
		MongoURI:      types.DefaultMongoURI,
		MongoDatabase: types.DefaultMongoDatabase,
		WarehousePath: path,
	}
	return New(cfg, &stubSource{ext: ext}, testLogger()).Run(context.Background())
}

func openWarehouse(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableCount(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestRunEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")

	require.NoError(t, runPipeline(t, sampleExtraction(), path))

	db := openWarehouse(t, path)
	assert.Equal(t, 1, tableCount(t, db, types.TableDimCustomer))
	assert.Equal(t, 1, tableCount(t, db, types.TableDimProduct))
	assert.Equal(t, 731, tableCount(t, db, types.TableDimTime))
	assert.Equal(t, 1, tableCount(t, db, types.TableFactSales))

	var (
		orderID     string
		dateID      int
		quantity    int
		totalAmount float64
		customerKey sql.NullInt64
		productKey  sql.NullInt64
	)
	err := db.QueryRow(
		"SELECT OrderOriginalID, DateID, Quantity, TotalAmount, CustomerKey, ProductKey FROM FactSales",
	).Scan(&orderID, &dateID, &quantity, &totalAmount, &customerKey, &productKey)
	require.NoError(t, err)

	assert.Equal(t, "o1", orderID)
	assert.Equal(t, 20230615, dateID)
	assert.Equal(t, 3, quantity)
	assert.Equal(t, 30.0, totalAmount)
	assert.True(t, customerKey.Valid)
	assert.True(t, productKey.Valid)
}

func TestRunAbortsOnEmptyUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	ext := sampleExtraction()
	ext.Users = nil

	err := runPipeline(t, ext, path)
	require.ErrorIs(t, err, ErrNoSourceData)

	// Schema exists but nothing was loaded.
	db := openWarehouse(t, path)
	assert.Equal(t, 0, tableCount(t, db, types.TableDimCustomer))
	assert.Equal(t, 0, tableCount(t, db, types.TableDimProduct))
	assert.Equal(t, 0, tableCount(t, db, types.TableDimTime))
	assert.Equal(t, 0, tableCount(t, db, types.TableFactSales))
}

func TestRunAbortsOnEmptyProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	ext := sampleExtraction()
	ext.Products = nil

	require.ErrorIs(t, runPipeline(t, ext, path), ErrNoSourceData)
}

func TestRunNoFactRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	ext := sampleExtraction()
	ext.OrderItems = nil

	// Missing line items degrade to an empty fact table, not a failure.
	require.NoError(t, runPipeline(t, ext, path))

	db := openWarehouse(t, path)
	assert.Equal(t, 1, tableCount(t, db, types.TableDimCustomer))
	assert.Equal(t, 0, tableCount(t, db, types.TableFactSales))
}

func TestRunUnmatchedCustomer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	ext := sampleExtraction()
	ext.Orders[0]["user"] = "stranger"

	require.NoError(t, runPipeline(t, ext, path))

	db := openWarehouse(t, path)
	var customerKey sql.NullInt64
	require.NoError(t, db.QueryRow("SELECT CustomerKey FROM FactSales").Scan(&customerKey))
	assert.False(t, customerKey.Valid, "unmatched natural key loads as NULL")
}

func TestRunIdempotentRebuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")

	require.NoError(t, runPipeline(t, sampleExtraction(), path))

	firstIDs := dimCustomerIDs(t, path)

	// Second run against an unchanged source rebuilds the same row sets.
	require.NoError(t, runPipeline(t, sampleExtraction(), path))

	db := openWarehouse(t, path)
	assert.Equal(t, 1, tableCount(t, db, types.TableDimCustomer))
	assert.Equal(t, 731, tableCount(t, db, types.TableDimTime))
	assert.Equal(t, 1, tableCount(t, db, types.TableFactSales))
	assert.Equal(t, firstIDs, dimCustomerIDs(t, path))
}

func dimCustomerIDs(t *testing.T, path string) []string {
	t.Helper()
	db := openWarehouse(t, path)
	rows, err := db.Query("SELECT OriginalID FROM DimCustomer ORDER BY OriginalID")
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}
