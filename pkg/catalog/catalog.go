package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/example/storefront/pkg/cache"
	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Expansion depth is fixed per page type: listings resolve one level of
// media/category plus their own references, detail pages one level deeper.
const (
	listDepth   = 2
	detailDepth = 3

	defaultListLimit = 100
	cacheTTL         = time.Minute
)

// Service answers the storefront's read queries. Failures on listing paths
// are logged and degrade to empty results so pages render with empty
// sections instead of erroring.
type Service struct {
	store  store.Store
	cache  *cache.Client
	logger *zap.Logger
}

// New builds the query layer. The cache may be nil.
func New(st store.Store, c *cache.Client, logger *zap.Logger) *Service {
	return &Service{store: st, cache: c, logger: logger}
}

type ListOptions struct {
	// CategoryID filters by the product's category reference when set.
	CategoryID primitive.ObjectID
	Limit      int64
}

// ListProducts returns publicly listable products, newest first. Public
// listings always restrict to active status.
func (s *Service) ListProducts(ctx context.Context, opts ListOptions) []models.Product {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	key := fmt.Sprintf("catalog:products:%s:%d", categoryKey(opts.CategoryID), limit)
	if cached, ok := s.cachedProducts(ctx, key); ok {
		return cached
	}

	where := store.Where{Fields: map[string]store.Condition{
		"status": {Equals: string(models.StatusActive)},
	}}
	if !opts.CategoryID.IsZero() {
		where.Fields["category"] = store.Condition{Equals: opts.CategoryID}
	}

	res, err := s.store.Find(ctx, store.Products, store.FindOptions{
		Where: &where,
		Sort:  "-createdAt",
		Limit: limit,
		Depth: listDepth,
	})
	if err != nil {
		s.logger.Error("product listing query failed", zap.Error(err))
		return []models.Product{}
	}

	products := s.decodeProducts(res.Docs)
	s.storeCached(ctx, key, products)
	return products
}

// FeaturedProducts is the home page selection: the n newest active
// products.
func (s *Service) FeaturedProducts(ctx context.Context, n int64) []models.Product {
	return s.ListProducts(ctx, ListOptions{Limit: n})
}

// GetProduct fetches one active product by slug with deep expansion, or
// nil when it does not exist or the query fails.
func (s *Service) GetProduct(ctx context.Context, slug string) *models.Product {
	where := store.Where{Fields: map[string]store.Condition{
		"slug":   {Equals: slug},
		"status": {Equals: string(models.StatusActive)},
	}}

	res, err := s.store.Find(ctx, store.Products, store.FindOptions{
		Where: &where,
		Limit: 1,
		Depth: detailDepth,
	})
	if err != nil {
		s.logger.Error("product detail query failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	if len(res.Docs) == 0 {
		return nil
	}

	var p models.Product
	if err := store.DecodeDoc(res.Docs[0], &p); err != nil {
		s.logger.Error("failed to decode product", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return &p
}

// ListCategories returns categories sorted by title.
func (s *Service) ListCategories(ctx context.Context, limit int64) []models.Category {
	res, err := s.store.Find(ctx, store.Categories, store.FindOptions{
		Sort:  "title",
		Limit: limit,
		Depth: listDepth,
	})
	if err != nil {
		s.logger.Error("category listing query failed", zap.Error(err))
		return []models.Category{}
	}

	categories := make([]models.Category, 0, len(res.Docs))
	for _, doc := range res.Docs {
		var c models.Category
		if err := store.DecodeDoc(doc, &c); err != nil {
			s.logger.Error("failed to decode category", zap.Error(err))
			continue
		}
		categories = append(categories, c)
	}
	return categories
}

func (s *Service) decodeProducts(docs []bson.M) []models.Product {
	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		var p models.Product
		if err := store.DecodeDoc(doc, &p); err != nil {
			s.logger.Error("failed to decode product", zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products
}

func (s *Service) cachedProducts(ctx context.Context, key string) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	var products []models.Product
	if err := s.cache.GetJSON(ctx, key, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *Service) storeCached(ctx context.Context, key string, products []models.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, products, cacheTTL); err != nil {
		s.logger.Warn("failed to cache product listing", zap.Error(err))
	}
}

func categoryKey(id primitive.ObjectID) string {
	if id.IsZero() {
		return "all"
	}
	return id.Hex()
}
