package seed

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Existence checks page through at most this many documents. Seed data is
// tens of records, well under the page.
const existingPageSize = 100

// Seeder creates the sample catalog entities that are not present yet.
// Re-running it against a populated store is a no-op: existing slugs are
// never created twice. Entity creation is strictly sequential; failures on
// one entity are logged and do not abort the rest.
type Seeder struct {
	store    store.Store
	logger   *zap.Logger
	assetDir string
}

// Summary is the operator-facing outcome of one collection's seeding run.
type Summary struct {
	Collection string
	Existing   int
	Created    int
	Failed     int
	Total      int64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d created, %d already present, %d failed, %d total in store",
		s.Collection, s.Created, s.Existing, s.Failed, s.Total)
}

func New(st store.Store, logger *zap.Logger, assetDir string) *Seeder {
	return &Seeder{store: st, logger: logger, assetDir: assetDir}
}

// SeedCategories brings the category collection up to the sample set.
// Errors from the initial existence check or the final count are fatal to
// the run; per-entity errors are not.
func (s *Seeder) SeedCategories(ctx context.Context, samples []CategorySeed) (*Summary, error) {
	existing, err := s.store.Find(ctx, store.Categories, store.FindOptions{Limit: existingPageSize})
	if err != nil {
		return nil, fmt.Errorf("fetch existing categories: %w", err)
	}
	have := existingSlugs(existing.Docs)

	summary := &Summary{Collection: store.Categories}
	var missing []CategorySeed
	for _, c := range samples {
		if have[c.Slug] {
			summary.Existing++
			continue
		}
		missing = append(missing, c)
	}

	if len(missing) == 0 {
		s.logger.Info("all categories already exist, nothing to do")
		summary.Total = existing.TotalDocs
		return summary, nil
	}

	s.logger.Info("creating categories", zap.Int("count", len(missing)))
	for _, c := range missing {
		data := bson.M{
			"title": c.Title,
			"slug":  c.Slug,
		}
		if c.Description != "" {
			data["description"] = c.Description
		}
		if c.ImagePath != "" {
			if id, ok := s.uploadImage(ctx, c.ImagePath); ok {
				data["image"] = id
			}
		}

		if _, err := s.store.Create(ctx, store.Categories, data); err != nil {
			s.logger.Error("failed to create category", zap.String("slug", c.Slug), zap.Error(err))
			summary.Failed++
			continue
		}
		s.logger.Info("created category", zap.String("title", c.Title), zap.String("slug", c.Slug))
		summary.Created++
	}

	final, err := s.store.Find(ctx, store.Categories, store.FindOptions{Limit: existingPageSize})
	if err != nil {
		return nil, fmt.Errorf("fetch final category count: %w", err)
	}
	summary.Total = final.TotalDocs
	return summary, nil
}

// SeedProducts brings the product collection up to the sample set. Each
// product's category slug is resolved against the store; an unresolved
// category is logged and the reference omitted.
func (s *Seeder) SeedProducts(ctx context.Context, samples []ProductSeed) (*Summary, error) {
	existing, err := s.store.Find(ctx, store.Products, store.FindOptions{Limit: existingPageSize})
	if err != nil {
		return nil, fmt.Errorf("fetch existing products: %w", err)
	}
	have := existingSlugs(existing.Docs)

	summary := &Summary{Collection: store.Products}
	var missing []ProductSeed
	for _, p := range samples {
		if have[p.Slug] {
			summary.Existing++
			continue
		}
		missing = append(missing, p)
	}

	if len(missing) == 0 {
		s.logger.Info("all products already exist, nothing to do")
		summary.Total = existing.TotalDocs
		return summary, nil
	}

	s.logger.Info("creating products", zap.Int("count", len(missing)))
	for _, p := range missing {
		data := bson.M{
			"title":  p.Title,
			"slug":   p.Slug,
			"price":  p.Price,
			"stock":  p.Stock,
			"status": string(p.Status),
		}
		if p.SalePrice > 0 {
			data["salePrice"] = p.SalePrice
		}
		if p.Description != "" {
			data["description"] = models.NewRichText(p.Description)
		}
		if p.CategorySlug != "" {
			if id, ok := s.categoryBySlug(ctx, p.CategorySlug); ok {
				data["category"] = id
			} else {
				s.logger.Warn("category not found, creating product without one",
					zap.String("product", p.Slug), zap.String("category", p.CategorySlug))
			}
		}

		var imageIDs []primitive.ObjectID
		for _, img := range p.ImagePaths {
			if id, ok := s.uploadImage(ctx, img); ok {
				imageIDs = append(imageIDs, id)
			}
		}
		if len(imageIDs) > 0 {
			data["images"] = imageIDs
		}

		if _, err := s.store.Create(ctx, store.Products, data); err != nil {
			s.logger.Error("failed to create product", zap.String("slug", p.Slug), zap.Error(err))
			summary.Failed++
			continue
		}
		s.logger.Info("created product", zap.String("title", p.Title), zap.String("slug", p.Slug))
		summary.Created++
	}

	final, err := s.store.Find(ctx, store.Products, store.FindOptions{Limit: existingPageSize})
	if err != nil {
		return nil, fmt.Errorf("fetch final product count: %w", err)
	}
	summary.Total = final.TotalDocs
	return summary, nil
}

// uploadImage resolves a local image to a media document id, reusing an
// existing upload with the same filename. Any failure, including a missing
// local file, is tolerated: the image is simply omitted.
func (s *Seeder) uploadImage(ctx context.Context, imagePath string) (primitive.ObjectID, bool) {
	base := filepath.Base(imagePath)

	found, err := s.store.Find(ctx, store.Media, store.FindOptions{
		Where: &store.Where{Fields: map[string]store.Condition{
			"filename": {Equals: base},
		}},
		Limit: 1,
	})
	if err != nil {
		s.logger.Error("media lookup failed", zap.String("filename", base), zap.Error(err))
		return primitive.NilObjectID, false
	}
	if len(found.Docs) > 0 {
		if id, ok := found.Docs[0]["_id"].(primitive.ObjectID); ok {
			s.logger.Info("using existing image", zap.String("filename", base))
			return id, true
		}
	}

	data, err := os.ReadFile(filepath.Join(s.assetDir, imagePath))
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("image not found, skipping upload", zap.String("path", imagePath))
		} else {
			s.logger.Error("failed to read image", zap.String("path", imagePath), zap.Error(err))
		}
		return primitive.NilObjectID, false
	}

	created, err := s.store.CreateWithFile(ctx, store.Media,
		bson.M{"alt": strings.TrimSuffix(base, filepath.Ext(base))},
		&store.File{Name: base, MIME: http.DetectContentType(data), Data: data})
	if err != nil {
		s.logger.Error("failed to upload image", zap.String("filename", base), zap.Error(err))
		return primitive.NilObjectID, false
	}

	id, ok := created["_id"].(primitive.ObjectID)
	if !ok {
		s.logger.Error("uploaded media has no id", zap.String("filename", base))
		return primitive.NilObjectID, false
	}
	s.logger.Info("uploaded image", zap.String("filename", base))
	return id, true
}

func (s *Seeder) categoryBySlug(ctx context.Context, slug string) (primitive.ObjectID, bool) {
	found, err := s.store.Find(ctx, store.Categories, store.FindOptions{
		Where: &store.Where{Fields: map[string]store.Condition{
			"slug": {Equals: slug},
		}},
		Limit: 1,
	})
	if err != nil || len(found.Docs) == 0 {
		return primitive.NilObjectID, false
	}
	id, ok := found.Docs[0]["_id"].(primitive.ObjectID)
	return id, ok
}

func existingSlugs(docs []bson.M) map[string]bool {
	have := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if slug, ok := doc["slug"].(string); ok {
			have[slug] = true
		}
	}
	return have
}
