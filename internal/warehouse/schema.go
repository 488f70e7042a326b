// Package warehouse implements the SQLite destination store for the star
// schema: schema initialization, bulk appends, and surrogate-key read-back.
package warehouse

// Schema DDL for the four star-schema tables. Surrogate keys on the two
// primary dimensions are AUTOINCREMENT columns assigned at insert time;
// DimTime uses the YYYYMMDD day number as its own key.
const (
	createDimCustomer = `CREATE TABLE DimCustomer (
    CustomerKey INTEGER PRIMARY KEY AUTOINCREMENT,
    OriginalID TEXT NOT NULL,
    Name TEXT,
    Email TEXT,
    Role TEXT
);`

	createDimProduct = `CREATE TABLE DimProduct (
    ProductKey INTEGER PRIMARY KEY AUTOINCREMENT,
    OriginalID TEXT NOT NULL,
    Name TEXT,
    Category TEXT,
    Price REAL,
    Brand TEXT,
    Rating REAL
);`

	createDimTime = `CREATE TABLE DimTime (
    DateID INTEGER PRIMARY KEY,
    FullDate TEXT NOT NULL,
    Year INTEGER NOT NULL,
    Month INTEGER NOT NULL,
    Day INTEGER NOT NULL,
    Quarter INTEGER NOT NULL,
    DayOfWeek INTEGER NOT NULL,
    MonthName TEXT NOT NULL,
    DayName TEXT NOT NULL
);`

	createFactSales = `CREATE TABLE FactSales (
    SalesKey INTEGER PRIMARY KEY AUTOINCREMENT,
    OrderOriginalID TEXT NOT NULL,
    DateID INTEGER,
    ProductKey INTEGER,
    CustomerKey INTEGER,
    Quantity INTEGER NOT NULL,
    TotalAmount REAL NOT NULL,
    DiscountAmount REAL NOT NULL,
    PaymentMethod TEXT,
    Status TEXT,
    FOREIGN KEY (DateID) REFERENCES DimTime(DateID),
    FOREIGN KEY (ProductKey) REFERENCES DimProduct(ProductKey),
    FOREIGN KEY (CustomerKey) REFERENCES DimCustomer(CustomerKey)
);`
)

// Index DDL for the key-mapper read-back and common fact filters.
const (
	idxDimCustomerOriginal = `CREATE INDEX idx_dimcustomer_original ON DimCustomer(OriginalID);`
	idxDimProductOriginal  = `CREATE INDEX idx_dimproduct_original ON DimProduct(OriginalID);`
	idxFactSalesDate       = `CREATE INDEX idx_factsales_date ON FactSales(DateID);`
	idxFactSalesCustomer   = `CREATE INDEX idx_factsales_customer ON FactSales(CustomerKey);`
	idxFactSalesProduct    = `CREATE INDEX idx_factsales_product ON FactSales(ProductKey);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createDimCustomer,
	createDimProduct,
	createDimTime,
	createFactSales,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxDimCustomerOriginal,
	idxDimProductOriginal,
	idxFactSalesDate,
	idxFactSalesCustomer,
	idxFactSalesProduct,
}
