package types

// Warehouse table names.
const (
	TableDimCustomer = "DimCustomer"
	TableDimProduct  = "DimProduct"
	TableDimTime     = "DimTime"
	TableFactSales   = "FactSales"
)

// Attribute defaults substituted when a source field is missing.
const (
	DefaultRole     = "user"
	DefaultCategory = "Uncategorized"
	DefaultBrand    = "Unknown"
	DefaultRating   = 0
)

// DimCustomer is one customer dimension row. CustomerKey is assigned by the
// warehouse at insert time and is never set by the pipeline.
type DimCustomer struct {
	OriginalID string
	Name       string
	Email      string
	Role       string
}

// DimProduct is one product dimension row.
type DimProduct struct {
	OriginalID string
	Name       string
	Category   string
	Price      float64
	Brand      string
	Rating     float64
}

// DimTime is one calendar-day row. DateID is the day in YYYYMMDD form and
// doubles as the primary key, so the pipeline sets it directly.
type DimTime struct {
	DateID    int
	FullDate  string
	Year      int
	Month     int
	Day       int
	Quarter   int
	DayOfWeek int
	MonthName string
	DayName   string
}

// FactSales is one (order, line item) fact row. CustomerKey and ProductKey
// are nil when the natural key had no match in the dimension; the row is
// loaded with NULL foreign keys rather than dropped.
type FactSales struct {
	OrderOriginalID string
	DateID          int
	ProductKey      *int64
	CustomerKey     *int64
	Quantity        int
	TotalAmount     float64
	DiscountAmount  float64
	PaymentMethod   string
	Status          string
}
