package mongodb

import (
	"regexp"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// deletedField is the reserved soft-delete flag. Clients cannot query or
// override it; the preset below always wins.
const deletedField = "isdeleted"

// queryableFields is the allow-list of post fields that can be matched from
// query-string parameters. Keys outside this set are dropped instead of being
// forwarded into the filter, which keeps arbitrary operator injection out of
// the store.
var queryableFields = map[string]bool{
	"title":    true,
	"text":     true,
	"type":     true,
	"postedby": true,
	"url":      true,
}

// BuildPostFilter converts inbound query parameters into a bson filter.
// Keys are lower-cased; values become case-insensitive regex matches with the
// pattern text quoted, so the value is always treated as a literal. The
// soft-delete preset is stripped and then unconditionally reapplied, so an
// empty parameter set still yields a filter selecting non-deleted documents.
func BuildPostFilter(params map[string]string) bson.D {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	filter := bson.D{}
	for _, k := range keys {
		field := strings.ToLower(k)
		if !queryableFields[field] {
			continue
		}
		filter = append(filter, bson.E{
			Key:   field,
			Value: primitive.Regex{Pattern: regexp.QuoteMeta(params[k]), Options: "i"},
		})
	}

	filter = stripFilterPresets(filter)
	return applyFilterPresets(filter)
}

// stripFilterPresets removes any occurrence of the reserved preset fields.
func stripFilterPresets(filter bson.D) bson.D {
	out := filter[:0]
	for _, e := range filter {
		if e.Key == deletedField {
			continue
		}
		out = append(out, e)
	}
	return out
}

// applyFilterPresets appends the platform defaults.
func applyFilterPresets(filter bson.D) bson.D {
	return append(filter, bson.E{Key: deletedField, Value: false})
}
