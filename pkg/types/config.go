package types

import "errors"

// Connection defaults used when neither the config file nor a flag supplies
// a value.
const (
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDatabase = "mern-project"
	DefaultWarehousePath = "data_warehouse.db"
)

// Config validation errors.
var (
	ErrMongoURIEmpty      = errors.New("mongo URI must not be empty")
	ErrMongoDatabaseEmpty = errors.New("mongo database must not be empty")
	ErrWarehousePathEmpty = errors.New("warehouse path must not be empty")
)

// Config holds the three connection settings for one pipeline run. A Config
// value is passed explicitly into each stage constructor; nothing reads
// process-wide state.
type Config struct {
	MongoURI      string `json:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase string `json:"mongo_database" yaml:"mongo_database"`
	WarehousePath string `json:"warehouse_path" yaml:"warehouse_path"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.MongoURI == "" {
		return ErrMongoURIEmpty
	}
	if c.MongoDatabase == "" {
		return ErrMongoDatabaseEmpty
	}
	if c.WarehousePath == "" {
		return ErrWarehousePathEmpty
	}
	return nil
}
