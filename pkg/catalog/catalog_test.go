package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/storefront/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubStore struct {
	byCollection map[string][]bson.M
	err          error

	lastCollection string
	lastOpts       store.FindOptions
}

func (s *stubStore) Find(ctx context.Context, collection string, opts store.FindOptions) (*store.FindResult, error) {
	s.lastCollection = collection
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	docs := s.byCollection[collection]
	return &store.FindResult{Docs: docs, TotalDocs: int64(len(docs))}, nil
}

func (s *stubStore) Create(ctx context.Context, collection string, data bson.M) (bson.M, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStore) CreateWithFile(ctx context.Context, collection string, data bson.M, file *store.File) (bson.M, error) {
	return nil, errors.New("not implemented")
}

func productDoc(title, slug string) bson.M {
	return bson.M{
		"_id":       primitive.NewObjectID(),
		"title":     title,
		"slug":      slug,
		"price":     9.99,
		"status":    "active",
		"stock":     int32(3),
		"createdAt": time.Now(),
	}
}

func TestListProductsRestrictsToActive(t *testing.T) {
	st := &stubStore{byCollection: map[string][]bson.M{
		store.Products: {productDoc("Widget", "widget")},
	}}
	svc := New(st, nil, zap.NewNop())

	got := svc.ListProducts(context.Background(), ListOptions{})
	require.Len(t, got, 1)
	assert.Equal(t, "Widget", got[0].Title)

	require.NotNil(t, st.lastOpts.Where)
	assert.Equal(t, "active", st.lastOpts.Where.Fields["status"].Equals)
	assert.NotContains(t, st.lastOpts.Where.Fields, "category")
	assert.Equal(t, "-createdAt", st.lastOpts.Sort)
	assert.Equal(t, int64(100), st.lastOpts.Limit)
	assert.Equal(t, 2, st.lastOpts.Depth)
}

func TestListProductsAppliesCategoryFilter(t *testing.T) {
	st := &stubStore{byCollection: map[string][]bson.M{}}
	svc := New(st, nil, zap.NewNop())

	catID := primitive.NewObjectID()
	svc.ListProducts(context.Background(), ListOptions{CategoryID: catID})

	require.NotNil(t, st.lastOpts.Where)
	assert.Equal(t, catID, st.lastOpts.Where.Fields["category"].Equals)
	assert.Equal(t, "active", st.lastOpts.Where.Fields["status"].Equals)
}

func TestListProductsDegradesToEmptyOnError(t *testing.T) {
	st := &stubStore{err: errors.New("store down")}
	svc := New(st, nil, zap.NewNop())

	got := svc.ListProducts(context.Background(), ListOptions{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListProductsSkipsUndecodableDocs(t *testing.T) {
	st := &stubStore{byCollection: map[string][]bson.M{
		store.Products: {
			productDoc("Good", "good"),
			{"title": "Bad", "price": "not-a-number"},
		},
	}}
	svc := New(st, nil, zap.NewNop())

	got := svc.ListProducts(context.Background(), ListOptions{})
	require.Len(t, got, 1)
	assert.Equal(t, "Good", got[0].Title)
}

func TestGetProductUsesDetailDepth(t *testing.T) {
	st := &stubStore{byCollection: map[string][]bson.M{
		store.Products: {productDoc("Widget", "widget")},
	}}
	svc := New(st, nil, zap.NewNop())

	p := svc.GetProduct(context.Background(), "widget")
	require.NotNil(t, p)
	assert.Equal(t, "widget", p.Slug)

	require.NotNil(t, st.lastOpts.Where)
	assert.Equal(t, "widget", st.lastOpts.Where.Fields["slug"].Equals)
	assert.Equal(t, "active", st.lastOpts.Where.Fields["status"].Equals)
	assert.Equal(t, int64(1), st.lastOpts.Limit)
	assert.Equal(t, 3, st.lastOpts.Depth)
}

func TestGetProductMissingOrFailing(t *testing.T) {
	svc := New(&stubStore{byCollection: map[string][]bson.M{}}, nil, zap.NewNop())
	assert.Nil(t, svc.GetProduct(context.Background(), "ghost"))

	svc = New(&stubStore{err: errors.New("store down")}, nil, zap.NewNop())
	assert.Nil(t, svc.GetProduct(context.Background(), "ghost"))
}

func TestListCategoriesSortsByTitle(t *testing.T) {
	st := &stubStore{byCollection: map[string][]bson.M{
		store.Categories: {{
			"_id":   primitive.NewObjectID(),
			"title": "Electronics",
			"slug":  "electronics",
		}},
	}}
	svc := New(st, nil, zap.NewNop())

	got := svc.ListCategories(context.Background(), 20)
	require.Len(t, got, 1)
	assert.Equal(t, "Electronics", got[0].Title)

	assert.Equal(t, store.Categories, st.lastCollection)
	assert.Equal(t, "title", st.lastOpts.Sort)
	assert.Equal(t, int64(20), st.lastOpts.Limit)
	assert.Nil(t, st.lastOpts.Where)
}

func TestListCategoriesDegradesToEmptyOnError(t *testing.T) {
	svc := New(&stubStore{err: errors.New("store down")}, nil, zap.NewNop())
	assert.Empty(t, svc.ListCategories(context.Background(), 20))
}
