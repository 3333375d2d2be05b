package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/example/storefront/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeStore keeps collections in memory and supports the equality
// predicates the seeder issues.
type fakeStore struct {
	collections map[string][]bson.M
	findErr     error
	failSlugs   map[string]bool
	created     []string // "collection:slug-or-filename", in call order
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: map[string][]bson.M{},
		failSlugs:   map[string]bool{},
	}
}

func (f *fakeStore) Find(ctx context.Context, collection string, opts store.FindOptions) (*store.FindResult, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var matched []bson.M
	for _, doc := range f.collections[collection] {
		if matches(doc, opts.Where) {
			matched = append(matched, doc)
		}
	}

	total := int64(len(matched))
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return &store.FindResult{Docs: matched, TotalDocs: total}, nil
}

func (f *fakeStore) Create(ctx context.Context, collection string, data bson.M) (bson.M, error) {
	name, _ := data["slug"].(string)
	if name == "" {
		name, _ = data["filename"].(string)
	}
	if f.failSlugs[name] {
		return nil, errors.New("create rejected")
	}

	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	doc["_id"] = primitive.NewObjectID()

	f.collections[collection] = append(f.collections[collection], doc)
	f.created = append(f.created, collection+":"+name)
	return doc, nil
}

func (f *fakeStore) CreateWithFile(ctx context.Context, collection string, data bson.M, file *store.File) (bson.M, error) {
	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	doc["filename"] = file.Name
	doc["url"] = "/media/" + file.Name
	return f.Create(ctx, collection, doc)
}

func matches(doc bson.M, where *store.Where) bool {
	if where == nil {
		return true
	}
	for field, cond := range where.Fields {
		if cond.Equals != nil && !reflect.DeepEqual(doc[field], cond.Equals) {
			return false
		}
	}
	return true
}

func newSeeder(st store.Store, assetDir string) *Seeder {
	return New(st, zap.NewNop(), assetDir)
}

func TestSeedCategoriesCreatesMissing(t *testing.T) {
	st := newFakeStore()
	s := newSeeder(st, t.TempDir())

	summary, err := s.SeedCategories(context.Background(), SampleCategories)
	require.NoError(t, err)

	assert.Equal(t, len(SampleCategories), summary.Created)
	assert.Equal(t, 0, summary.Existing)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, int64(len(SampleCategories)), summary.Total)
	assert.Len(t, st.collections[store.Categories], len(SampleCategories))
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	st := newFakeStore()
	s := newSeeder(st, t.TempDir())
	ctx := context.Background()

	first, err := s.SeedCategories(ctx, SampleCategories)
	require.NoError(t, err)
	require.Equal(t, len(SampleCategories), first.Created)

	second, err := s.SeedCategories(ctx, SampleCategories)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, len(SampleCategories), second.Existing)
	assert.Equal(t, first.Total, second.Total)
}

func TestSeedCategoriesNeverRecreatesExistingSlug(t *testing.T) {
	st := newFakeStore()
	st.collections[store.Categories] = []bson.M{
		{"_id": primitive.NewObjectID(), "title": "Electronics", "slug": "electronics"},
	}
	s := newSeeder(st, t.TempDir())

	summary, err := s.SeedCategories(context.Background(), SampleCategories)
	require.NoError(t, err)

	assert.Equal(t, len(SampleCategories)-1, summary.Created)
	assert.Equal(t, 1, summary.Existing)
	assert.NotContains(t, st.created, store.Categories+":electronics")
}

func TestSeedCategoriesExistenceCheckFailureIsFatal(t *testing.T) {
	st := newFakeStore()
	st.findErr = errors.New("store unreachable")
	s := newSeeder(st, t.TempDir())

	_, err := s.SeedCategories(context.Background(), SampleCategories)
	assert.Error(t, err)
	assert.Empty(t, st.created)
}

func TestSeedCategoriesIsolatesPerItemFailures(t *testing.T) {
	st := newFakeStore()
	st.failSlugs["clothing"] = true
	s := newSeeder(st, t.TempDir())

	summary, err := s.SeedCategories(context.Background(), SampleCategories)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, len(SampleCategories)-1, summary.Created)
	assert.Len(t, st.collections[store.Categories], len(SampleCategories)-1)
}

func TestSeedReusesUploadedImageByFilename(t *testing.T) {
	assetDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetDir, "cat.jpg"), []byte("\xff\xd8\xff fake jpeg"), 0o644))

	st := newFakeStore()
	s := newSeeder(st, assetDir)

	_, err := s.SeedCategories(context.Background(), SampleCategories)
	require.NoError(t, err)

	// Every sample references the same file; it is uploaded exactly once.
	assert.Len(t, st.collections[store.Media], 1)
	for _, doc := range st.collections[store.Categories] {
		assert.IsType(t, primitive.ObjectID{}, doc["image"])
	}
}

func TestSeedToleratesMissingImageFile(t *testing.T) {
	st := newFakeStore()
	s := newSeeder(st, filepath.Join(t.TempDir(), "nope"))

	summary, err := s.SeedCategories(context.Background(), SampleCategories)
	require.NoError(t, err)

	assert.Equal(t, len(SampleCategories), summary.Created)
	assert.Empty(t, st.collections[store.Media])
	for _, doc := range st.collections[store.Categories] {
		assert.NotContains(t, doc, "image")
	}
}

func TestSeedProductsResolvesCategoryBySlug(t *testing.T) {
	st := newFakeStore()
	s := newSeeder(st, t.TempDir())
	ctx := context.Background()

	_, err := s.SeedCategories(ctx, SampleCategories)
	require.NoError(t, err)

	summary, err := s.SeedProducts(ctx, SampleProducts)
	require.NoError(t, err)
	assert.Equal(t, len(SampleProducts), summary.Created)

	var electronics primitive.ObjectID
	for _, doc := range st.collections[store.Categories] {
		if doc["slug"] == "electronics" {
			electronics = doc["_id"].(primitive.ObjectID)
		}
	}
	require.False(t, electronics.IsZero())

	for _, doc := range st.collections[store.Products] {
		if doc["slug"] == "wireless-bluetooth-headphones" {
			assert.Equal(t, electronics, doc["category"])
		}
	}
}

func TestSeedProductsOmitsUnknownCategory(t *testing.T) {
	st := newFakeStore()
	s := newSeeder(st, t.TempDir())

	// No categories seeded; products are still created, just unlinked.
	summary, err := s.SeedProducts(context.Background(), SampleProducts)
	require.NoError(t, err)
	assert.Equal(t, len(SampleProducts), summary.Created)

	for _, doc := range st.collections[store.Products] {
		assert.NotContains(t, doc, "category")
	}
}

func TestSeedProductsIsIdempotent(t *testing.T) {
	st := newFakeStore()
	s := newSeeder(st, t.TempDir())
	ctx := context.Background()

	_, err := s.SeedProducts(ctx, SampleProducts)
	require.NoError(t, err)
	before := len(st.collections[store.Products])

	second, err := s.SeedProducts(ctx, SampleProducts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Len(t, st.collections[store.Products], before)
}
