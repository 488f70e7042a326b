// Package transform maps raw source documents into star-schema rows:
// dimension construction with defaulted attributes, the generated calendar
// dimension, and fact assembly with surrogate-key resolution.
package transform

import "github.com/dukaforge/salesmart/pkg/types"

// BuildCustomers maps raw user documents to customer dimension rows in
// source order. Documents without a natural key are skipped; every other
// field falls back to its named default.
func BuildCustomers(users []types.Document) []types.DimCustomer {
	rows := make([]types.DimCustomer, 0, len(users))
	for _, u := range users {
		id, ok := u.ID()
		if !ok {
			continue
		}
		rows = append(rows, types.DimCustomer{
			OriginalID: id,
			Name:       u.StringOr("username", ""),
			Email:      u.StringOr("email", ""),
			Role:       u.StringOr("role", types.DefaultRole),
		})
	}
	return rows
}

// BuildProducts maps raw product documents to product dimension rows.
func BuildProducts(products []types.Document) []types.DimProduct {
	rows := make([]types.DimProduct, 0, len(products))
	for _, p := range products {
		id, ok := p.ID()
		if !ok {
			continue
		}
		rows = append(rows, types.DimProduct{
			OriginalID: id,
			Name:       p.StringOr("name", ""),
			Category:   p.StringOr("category", types.DefaultCategory),
			Price:      p.FloatOr("price", 0),
			Brand:      p.StringOr("brand", types.DefaultBrand),
			Rating:     p.FloatOr("rating", types.DefaultRating),
		})
	}
	return rows
}
