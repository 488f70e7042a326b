// Package pipeline orchestrates the one-shot batch run: schema
// initialization, extraction, dimension build, dimension load, surrogate-key
// read-back, fact assembly, fact load. Each stage fully materializes its
// output before the next begins; the key mapper in particular cannot run
// until the dimension rows are durably persisted, because the warehouse
// assigns the surrogate keys.
package pipeline

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/dukaforge/salesmart/internal/transform"
	"github.com/dukaforge/salesmart/internal/warehouse"
	"github.com/dukaforge/salesmart/pkg/types"
)

// ErrNoSourceData signals that the users or products extraction came back
// empty. The run aborts before any dimension or fact rows are written; the
// caller treats this as a clean exit, not a crash.
var ErrNoSourceData = errors.New("no source data in users or products")

// Source provides one full pull of the four raw entity collections.
type Source interface {
	Extract(ctx context.Context) (*types.Extraction, error)
}

// Pipeline runs the extraction-to-star-schema transformation. There is no
// retry logic anywhere: every I/O call is attempted exactly once, and any
// warehouse write failure terminates the run.
type Pipeline struct {
	cfg    types.Config
	source Source
	logger *log.Logger
}

// New constructs a Pipeline. The logger receives the per-stage progress
// lines (extraction counts, load counts, warnings).
func New(cfg types.Config, source Source, logger *log.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, source: source, logger: logger}
}

// Run executes the full rebuild against a fresh warehouse file.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.Must(uuid.NewV7())
	p.logger.Printf("Starting warehouse rebuild (run %s)", runID)

	p.logger.Printf("Initializing database schema at %s", p.cfg.WarehousePath)
	store, err := warehouse.Open(p.cfg.WarehousePath)
	if err != nil {
		return err
	}
	defer store.Close()

	p.logger.Printf("Extracting data...")
	ext, err := p.source.Extract(ctx)
	if err != nil {
		return err
	}
	p.logger.Printf("Extracted: %d users, %d products, %d orders, %d items.",
		len(ext.Users), len(ext.Products), len(ext.Orders), len(ext.OrderItems))

	if len(ext.Users) == 0 || len(ext.Products) == 0 {
		p.logger.Printf("No data found in Users or Products. Aborting.")
		return ErrNoSourceData
	}

	p.logger.Printf("Processing dimensions...")
	customers := transform.BuildCustomers(ext.Users)
	if err := store.AppendCustomers(customers); err != nil {
		return err
	}
	p.logger.Printf("Loaded %d customers.", len(customers))

	products := transform.BuildProducts(ext.Products)
	if err := store.AppendProducts(products); err != nil {
		return err
	}
	p.logger.Printf("Loaded %d products.", len(products))

	calendar := transform.BuildCalendar()
	if err := store.AppendCalendar(calendar); err != nil {
		return err
	}
	p.logger.Printf("Loaded %d dates.", len(calendar))

	p.logger.Printf("Mapping keys...")
	keys := transform.KeyMaps{}
	if keys.Customers, err = store.CustomerKeys(); err != nil {
		return err
	}
	if keys.Products, err = store.ProductKeys(); err != nil {
		return err
	}

	p.logger.Printf("Processing fact table...")
	facts := transform.BuildFacts(ext.Orders, ext.OrderItems, keys)
	if len(facts) == 0 {
		p.logger.Printf("No fact rows created. Check order-item linking.")
		return nil
	}
	if err := store.AppendFacts(facts); err != nil {
		return err
	}
	p.logger.Printf("Loaded %d sales records.", len(facts))

	return nil
}
