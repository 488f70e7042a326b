package warehouse

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/salesmart/pkg/types"
)

// Store is the SQLite warehouse file. Opening a Store discards any previous
// file at the same path: every run is a full rebuild, never an accumulation.
type Store struct {
	path string
	db   *sql.DB
}

// Open removes any existing warehouse file at path, opens a fresh database,
// and executes the star-schema DDL.
func Open(path string) (*Store, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous warehouse %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening warehouse %s: %w", path, err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating indexes: %w", err)
		}
	}

	return &Store{path: path, db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendCustomers bulk-inserts customer dimension rows. CustomerKey is
// assigned by SQLite; callers discover it afterwards via CustomerKeys.
func (s *Store) AppendCustomers(rows []types.DimCustomer) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning customer load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO DimCustomer (OriginalID, Name, Email, Role) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing customer insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.OriginalID, r.Name, r.Email, r.Role); err != nil {
			return fmt.Errorf("inserting customer %s: %w", r.OriginalID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing customer load: %w", err)
	}
	return nil
}

// AppendProducts bulk-inserts product dimension rows.
func (s *Store) AppendProducts(rows []types.DimProduct) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning product load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO DimProduct (OriginalID, Name, Category, Price, Brand, Rating) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing product insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.OriginalID, r.Name, r.Category, r.Price, r.Brand, r.Rating); err != nil {
			return fmt.Errorf("inserting product %s: %w", r.OriginalID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing product load: %w", err)
	}
	return nil
}

// AppendCalendar bulk-inserts the generated time dimension.
func (s *Store) AppendCalendar(rows []types.DimTime) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning calendar load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO DimTime (DateID, FullDate, Year, Month, Day, Quarter, DayOfWeek, MonthName, DayName) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing calendar insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.DateID, r.FullDate, r.Year, r.Month, r.Day, r.Quarter, r.DayOfWeek, r.MonthName, r.DayName); err != nil {
			return fmt.Errorf("inserting calendar day %d: %w", r.DateID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing calendar load: %w", err)
	}
	return nil
}

// AppendFacts bulk-inserts fact rows. Nil CustomerKey/ProductKey load as
// NULL foreign keys.
func (s *Store) AppendFacts(rows []types.FactSales) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning fact load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO FactSales (OrderOriginalID, DateID, ProductKey, CustomerKey, Quantity, TotalAmount, DiscountAmount, PaymentMethod, Status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing fact insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.OrderOriginalID, r.DateID, r.ProductKey, r.CustomerKey, r.Quantity, r.TotalAmount, r.DiscountAmount, r.PaymentMethod, r.Status); err != nil {
			return fmt.Errorf("inserting fact for order %s: %w", r.OrderOriginalID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing fact load: %w", err)
	}
	return nil
}

// CustomerKeys reads back the surrogate keys SQLite assigned during the
// customer load, keyed by natural key.
func (s *Store) CustomerKeys() (map[string]int64, error) {
	return s.keyMap("SELECT OriginalID, CustomerKey FROM DimCustomer")
}

// ProductKeys reads back the surrogate keys assigned during the product load.
func (s *Store) ProductKeys() (map[string]int64, error) {
	return s.keyMap("SELECT OriginalID, ProductKey FROM DimProduct")
}

func (s *Store) keyMap(query string) (map[string]int64, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("reading back surrogate keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]int64)
	for rows.Next() {
		var originalID string
		var key int64
		if err := rows.Scan(&originalID, &key); err != nil {
			return nil, fmt.Errorf("scanning surrogate key row: %w", err)
		}
		keys[originalID] = key
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating surrogate key rows: %w", err)
	}
	return keys, nil
}
