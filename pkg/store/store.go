package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names used across the storefront.
const (
	Categories    = "categories"
	Products      = "products"
	Orders        = "orders"
	Notifications = "notifications"
	Media         = "media"
	Users         = "users"
)

// Store is the document database the storefront reads and seeds. Queries
// carry field predicates, a sort order, a result limit and a relationship
// expansion depth; documents come back as raw BSON maps.
type Store interface {
	Find(ctx context.Context, collection string, opts FindOptions) (*FindResult, error)
	Create(ctx context.Context, collection string, data bson.M) (bson.M, error)
	CreateWithFile(ctx context.Context, collection string, data bson.M, file *File) (bson.M, error)
}

type FindOptions struct {
	Where *Where
	Sort  string
	Limit int64
	// Depth controls how many levels of relationship references are
	// resolved into embedded documents. Zero leaves bare ids.
	Depth int
}

type FindResult struct {
	Docs      []bson.M
	TotalDocs int64
}

// File is the binary payload of an upload-style create.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Condition is a single-field predicate. Zero-value members are omitted
// from the generated filter.
type Condition struct {
	Equals      interface{}
	GreaterThan interface{}
	Exists      *bool
}

// Where combines per-field conditions (implicitly ANDed) with an optional
// top-level OR of sub-predicates.
type Where struct {
	Fields map[string]Condition
	Or     []Where
}

func (c Condition) toBSON() bson.M {
	m := bson.M{}
	if c.Equals != nil {
		m["$eq"] = c.Equals
	}
	if c.GreaterThan != nil {
		m["$gt"] = c.GreaterThan
	}
	if c.Exists != nil {
		m["$exists"] = *c.Exists
	}
	return m
}

// ToBSON translates the predicate into a MongoDB filter document.
func (w Where) ToBSON() bson.M {
	filter := bson.M{}
	for field, cond := range w.Fields {
		filter[fieldName(field)] = cond.toBSON()
	}
	if len(w.Or) > 0 {
		sub := make([]bson.M, 0, len(w.Or))
		for _, o := range w.Or {
			sub = append(sub, o.ToBSON())
		}
		filter["$or"] = sub
	}
	return filter
}

// ParseSort turns a sort expression like "-createdAt" or
// "-priority,-createdAt" into a BSON sort document. A leading dash means
// descending.
func ParseSort(sort string) bson.D {
	var out bson.D
	for _, key := range strings.Split(sort, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		dir := 1
		if strings.HasPrefix(key, "-") {
			dir = -1
			key = key[1:]
		}
		out = append(out, bson.E{Key: fieldName(key), Value: dir})
	}
	return out
}

func fieldName(field string) string {
	if field == "id" {
		return "_id"
	}
	return field
}

// DecodeDoc maps a raw document onto a typed model via a BSON round trip.
func DecodeDoc(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
