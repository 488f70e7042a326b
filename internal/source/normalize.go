package source

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dukaforge/salesmart/pkg/types"
)

// normalizeDocument converts a decoded BSON document into a Document whose
// identifiers are canonical strings. ObjectIDs are not value-comparable
// across collections once decoded, so every one of them, including those
// nested in arrays and subdocuments, becomes its hex form here at the
// extraction boundary. All downstream matching is done on these strings.
func normalizeDocument(raw bson.M) types.Document {
	doc := make(types.Document, len(raw))
	for k, v := range raw {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case bson.M:
		return map[string]any(normalizeDocument(val))
	case bson.A:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeValue(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}
