package model

import (
	"encoding/json"
	"strconv"
)

// Collection names backing the storefront content surface.
const (
	CollectionProducts      = "products"
	CollectionEventProducts = "event-products"
	CollectionEvents        = "events"
	CollectionTestimonials  = "testimonials"
)

// UploadURLPrefix is the public URL prefix under which stored media is served.
const UploadURLPrefix = "/uploads/products/"

// Record is a single schemaless entity inside a collection. Field shape is a
// convention agreed with the storefront UI, not an enforced schema; the store
// only cares about the "id" field.
type Record map[string]interface{}

// collectionLabels drive the human-readable not-found messages per collection.
var collectionLabels = map[string]string{
	CollectionProducts:      "Product",
	CollectionEventProducts: "Event product",
	CollectionEvents:        "Event",
	CollectionTestimonials:  "Testimonial",
}

// IsKnownCollection reports whether name is one of the storefront collections.
func IsKnownCollection(name string) bool {
	_, ok := collectionLabels[name]
	return ok
}

// CollectionLabel returns the display name used in error messages for a
// collection, e.g. "Event product" for "event-products".
func CollectionLabel(name string) string {
	if label, ok := collectionLabels[name]; ok {
		return label
	}
	return "Record"
}

// KnownCollections returns all storefront collection names.
func KnownCollections() []string {
	return []string{CollectionProducts, CollectionEventProducts, CollectionEvents, CollectionTestimonials}
}

// ID returns the record id coerced to its canonical string form.
func (r Record) ID() string {
	return CoerceID(r["id"])
}

// CoerceID converts an id value of any JSON-representable type to a string so
// that numeric and string ids compare equal. Legacy documents hold ids both as
// "3" and as 3.
func CoerceID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case nil:
		return ""
	default:
		b, err := json.Marshal(id)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// NextID assigns the id for a new record: max(existing numeric ids)+1, or "1"
// for an empty collection. Non-numeric ids count as 0.
func NextID(records []Record) string {
	if len(records) == 0 {
		return "1"
	}
	max := 0
	for _, rec := range records {
		n, err := strconv.Atoi(rec.ID())
		if err != nil {
			n = 0
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// Merge produces the updated record for a PUT: every field of old survives
// unless patch overwrites it, and id is always re-pinned to the path value.
// The merge is shallow; nested objects and arrays are replaced wholesale.
func Merge(old, patch Record, id string) Record {
	merged := make(Record, len(old)+len(patch))
	for k, v := range old {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	merged["id"] = id
	return merged
}
