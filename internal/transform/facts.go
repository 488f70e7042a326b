package transform

import (
	"time"

	"github.com/dukaforge/salesmart/pkg/types"
)

// timeNow is overridable in tests for orders without a parseable timestamp.
var timeNow = time.Now

// Timestamp layouts accepted for Order.createdAt, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// KeyMaps holds the natural-key to surrogate-key lookups read back from the
// warehouse after the dimension load. A lookup miss is not an error; it
// propagates as a NULL foreign key in the fact row.
type KeyMaps struct {
	Customers map[string]int64
	Products  map[string]int64
}

// CustomerKey resolves a customer natural key, or nil on a miss.
func (k KeyMaps) CustomerKey(originalID string) *int64 {
	return lookup(k.Customers, originalID)
}

// ProductKey resolves a product natural key, or nil on a miss.
func (k KeyMaps) ProductKey(originalID string) *int64 {
	return lookup(k.Products, originalID)
}

func lookup(m map[string]int64, id string) *int64 {
	key, ok := m[id]
	if !ok {
		return nil
	}
	return &key
}

// BuildFacts emits one FactSales row per (order, line item) pair. An order's
// line items are the members of its `items` ID list, looked up in the full
// extracted item set. The OrderItem `order` back-reference is extracted but
// never used for linking: the `items` list is the authoritative association
// in the source schema, and joining on the back-reference would change row
// counts.
func BuildFacts(orders, items []types.Document, keys KeyMaps) []types.FactSales {
	if len(items) == 0 {
		return nil
	}

	itemsByID := make(map[string]types.Document, len(items))
	for _, item := range items {
		if id, ok := item.ID(); ok {
			itemsByID[id] = item
		}
	}

	var facts []types.FactSales
	for _, order := range orders {
		orderID, ok := order.ID()
		if !ok {
			continue
		}

		dateID := DateID(resolveOrderTime(order))
		customerKey := keys.CustomerKey(order.Ref("user"))

		for _, itemID := range order.StringList("items") {
			item, ok := itemsByID[itemID]
			if !ok {
				continue
			}

			qty := item.IntOr("qty", 1)
			price := item.FloatOr("price", 0)

			facts = append(facts, types.FactSales{
				OrderOriginalID: orderID,
				DateID:          dateID,
				ProductKey:      keys.ProductKey(item.Ref("product")),
				CustomerKey:     customerKey,
				Quantity:        qty,
				TotalAmount:     float64(qty) * price,
				DiscountAmount:  0,
				PaymentMethod:   order.StringOr("paymentMethod", ""),
				Status:          order.StringOr("status", ""),
			})
		}
	}
	return facts
}

// resolveOrderTime parses a string-form createdAt. Absent, unparseable, and
// non-string values all fall back to the current wall clock.
func resolveOrderTime(order types.Document) time.Time {
	s, ok := order["createdAt"].(string)
	if !ok {
		return timeNow()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return timeNow()
}
