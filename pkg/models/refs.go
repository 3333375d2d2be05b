package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Relationship fields arrive in one of two shapes depending on the query's
// expansion depth: a bare ObjectID, or the referenced document embedded in
// place. The *Ref types accept both; Doc is nil when only the id is known.

type CategoryRef struct {
	ID  primitive.ObjectID
	Doc *Category
}

func (r *CategoryRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalRef(t, data, &r.ID, func(rv bson.RawValue) error {
		var doc Category
		if err := rv.Unmarshal(&doc); err != nil {
			return err
		}
		r.Doc = &doc
		r.ID = doc.ID
		return nil
	})
}

type MediaRef struct {
	ID  primitive.ObjectID
	Doc *Media
}

func (r *MediaRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalRef(t, data, &r.ID, func(rv bson.RawValue) error {
		var doc Media
		if err := rv.Unmarshal(&doc); err != nil {
			return err
		}
		r.Doc = &doc
		r.ID = doc.ID
		return nil
	})
}

type ProductRef struct {
	ID  primitive.ObjectID
	Doc *Product
}

func (r *ProductRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalRef(t, data, &r.ID, func(rv bson.RawValue) error {
		var doc Product
		if err := rv.Unmarshal(&doc); err != nil {
			return err
		}
		r.Doc = &doc
		r.ID = doc.ID
		return nil
	})
}

type UserRef struct {
	ID  primitive.ObjectID
	Doc *User
}

func (r *UserRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalRef(t, data, &r.ID, func(rv bson.RawValue) error {
		var doc User
		if err := rv.Unmarshal(&doc); err != nil {
			return err
		}
		r.Doc = &doc
		r.ID = doc.ID
		return nil
	})
}

func unmarshalRef(t bsontype.Type, data []byte, id *primitive.ObjectID, embedded func(bson.RawValue) error) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := rv.ObjectIDOK()
		if !ok {
			return fmt.Errorf("malformed object id reference")
		}
		*id = oid
		return nil
	case bsontype.EmbeddedDocument:
		return embedded(rv)
	case bsontype.Null, bsontype.Undefined:
		return nil
	default:
		return fmt.Errorf("unexpected BSON type %s for reference", t)
	}
}
