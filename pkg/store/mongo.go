package store

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/storefront/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of MongoDB. Depth expansion is done
// client-side by following the relationships declared in the schema map.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
	schemas  map[string][]Relationship
	media    *config.MediaConfig
}

func NewMongoStore(cfg *config.MongoDBConfig, media *config.MediaConfig) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &MongoStore{
		client:   client,
		database: client.Database(cfg.Database),
		schemas:  DefaultSchemas,
		media:    media,
	}, nil
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoStore) Find(ctx context.Context, collection string, opts FindOptions) (*FindResult, error) {
	filter := bson.M{}
	if opts.Where != nil {
		filter = opts.Where.ToBSON()
	}

	var sort bson.D
	if opts.Sort != "" {
		sort = ParseSort(opts.Sort)
	}

	docs, err := m.fetch(ctx, collection, filter, sort, opts.Limit, opts.Depth)
	if err != nil {
		return nil, err
	}

	total, err := m.database.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &FindResult{Docs: docs, TotalDocs: total}, nil
}

func (m *MongoStore) fetch(ctx context.Context, collection string, filter bson.M, sort bson.D, limit int64, depth int) ([]bson.M, error) {
	findOpts := options.Find()
	if sort != nil {
		findOpts.SetSort(sort)
	}
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := m.database.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	if err := m.expand(ctx, collection, docs, depth); err != nil {
		return nil, err
	}

	return docs, nil
}

// expand resolves relationship references into embedded documents, one
// schema relationship at a time. Ids without a matching document are left
// untouched.
func (m *MongoStore) expand(ctx context.Context, collection string, docs []bson.M, depth int) error {
	if depth <= 0 || len(docs) == 0 {
		return nil
	}

	for _, rel := range m.schemas[collection] {
		ids := collectRefIDs(docs, rel.Field)
		if len(ids) == 0 {
			continue
		}

		refs, err := m.fetch(ctx, rel.Collection, bson.M{"_id": bson.M{"$in": ids}}, nil, 0, depth-1)
		if err != nil {
			return err
		}

		embedRefs(docs, rel.Field, indexByID(refs))
	}

	return nil
}

func (m *MongoStore) Create(ctx context.Context, collection string, data bson.M) (bson.M, error) {
	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}

	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	res, err := m.database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc["_id"] = res.InsertedID
	return doc, nil
}

// CreateWithFile writes the binary to the media directory, derives the
// document's url from the filename and then creates the document.
func (m *MongoStore) CreateWithFile(ctx context.Context, collection string, data bson.M, file *File) (bson.M, error) {
	if err := os.MkdirAll(m.media.Dir, 0o755); err != nil {
		return nil, err
	}

	target := filepath.Join(m.media.Dir, filepath.Base(file.Name))
	if err := os.WriteFile(target, file.Data, 0o644); err != nil {
		return nil, err
	}

	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	doc["filename"] = filepath.Base(file.Name)
	doc["mimeType"] = file.MIME
	doc["filesize"] = int64(len(file.Data))
	doc["url"] = path.Join(m.media.BaseURL, filepath.Base(file.Name))

	return m.Create(ctx, collection, doc)
}

// walkRefs visits the container map and key holding each reference value
// for the given field, descending one level into arrays of subdocuments
// for dotted fields.
func walkRefs(docs []bson.M, field string, visit func(container bson.M, key string)) {
	parts := strings.SplitN(field, ".", 2)
	for _, doc := range docs {
		if len(parts) == 1 {
			visit(doc, field)
			continue
		}
		items, ok := doc[parts[0]].(primitive.A)
		if !ok {
			continue
		}
		for _, item := range items {
			if sub, ok := item.(bson.M); ok {
				visit(sub, parts[1])
			}
		}
	}
}

func collectRefIDs(docs []bson.M, field string) []primitive.ObjectID {
	var ids []primitive.ObjectID
	seen := map[primitive.ObjectID]bool{}

	add := func(v interface{}) {
		if id, ok := v.(primitive.ObjectID); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	walkRefs(docs, field, func(container bson.M, key string) {
		switch v := container[key].(type) {
		case primitive.ObjectID:
			add(v)
		case primitive.A:
			for _, item := range v {
				add(item)
			}
		}
	})

	return ids
}

func embedRefs(docs []bson.M, field string, byID map[primitive.ObjectID]bson.M) {
	walkRefs(docs, field, func(container bson.M, key string) {
		switch v := container[key].(type) {
		case primitive.ObjectID:
			if ref, ok := byID[v]; ok {
				container[key] = ref
			}
		case primitive.A:
			for i, item := range v {
				if id, ok := item.(primitive.ObjectID); ok {
					if ref, ok := byID[id]; ok {
						v[i] = ref
					}
				}
			}
		}
	})
}

func indexByID(docs []bson.M) map[primitive.ObjectID]bson.M {
	byID := make(map[primitive.ObjectID]bson.M, len(docs))
	for _, doc := range docs {
		if id, ok := doc["_id"].(primitive.ObjectID); ok {
			byID[id] = doc
		}
	}
	return byID
}
