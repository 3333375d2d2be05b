package web

import (
	"net/http"

	"github.com/example/storefront/pkg/catalog"
	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/notify"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	homeCategoryLimit = 20
	homeFeaturedCount = 6
	listCategoryLimit = 100
)

// View models keep the price/sale arithmetic out of the templates.

type productView struct {
	Title      string
	Slug       string
	Price      float64
	SalePrice  float64
	OnSale     bool
	Discount   int
	InStock    bool
	ImageURL   string
	ImageAlt   string
	Desc       string
	GalleryURL []string
}

type categoryView struct {
	ID          string
	Title       string
	Slug        string
	Description string
	ImageURL    string
}

type notificationView struct {
	Title   string
	Message string
	Type    string
	Icon    string
	Link    string
}

func (s *Server) homePage(c *gin.Context) {
	ctx := c.Request.Context()

	categories := s.catalog.ListCategories(ctx, homeCategoryLimit)
	featured := s.catalog.FeaturedProducts(ctx, homeFeaturedCount)
	marquee := notify.Marquee(s.notify.ActiveNotifications(ctx))

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Categories": categoryViews(categories),
		"Featured":   productViews(featured),
		"Marquee":    notificationViews(marquee),
	})
}

func (s *Server) productsPage(c *gin.Context) {
	ctx := c.Request.Context()

	opts := catalog.ListOptions{}
	var selected string
	if raw := c.Query("category"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			s.logger.Debug("ignoring malformed category filter", zap.String("category", raw))
		} else {
			opts.CategoryID = id
			selected = raw
		}
	}

	categories := s.catalog.ListCategories(ctx, listCategoryLimit)
	products := s.catalog.ListProducts(ctx, opts)

	var selectedTitle string
	for _, cat := range categories {
		if cat.ID.Hex() == selected {
			selectedTitle = cat.Title
		}
	}

	c.HTML(http.StatusOK, "products.tmpl", gin.H{
		"Categories":    categoryViews(categories),
		"Products":      productViews(products),
		"Selected":      selected,
		"SelectedTitle": selectedTitle,
	})
}

func (s *Server) productPage(c *gin.Context) {
	product := s.catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if product == nil {
		c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{})
		return
	}

	view := productViews([]models.Product{*product})[0]
	c.HTML(http.StatusOK, "product.tmpl", gin.H{
		"Product":  view,
		"Category": product.Category.Doc,
	})
}

type orderItemRequest struct {
	Product  string  `json:"product" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type orderRequest struct {
	User  string             `json:"user"`
	Items []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	Total float64            `json:"total" binding:"required,gt=0"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req orderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make(bson.A, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		items = append(items, bson.M{
			"product":  productID,
			"quantity": item.Quantity,
			"price":    item.Price,
		})
	}

	data := bson.M{
		"items":  items,
		"total":  req.Total,
		"status": string(models.OrderPending),
	}
	if req.User != "" {
		userID, err := primitive.ObjectIDFromHex(req.User)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		data["user"] = userID
	}

	created, err := s.store.Create(c.Request.Context(), store.Orders, data)
	if err != nil {
		s.logger.Error("failed to create order", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create order"})
		return
	}

	id, _ := created["_id"].(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{
		"id":     id.Hex(),
		"status": string(models.OrderPending),
	})
}

func productViews(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for i := range products {
		p := &products[i]
		v := productView{
			Title:    p.Title,
			Slug:     p.Slug,
			Price:    p.Price,
			OnSale:   p.IsOnSale(),
			Discount: p.DiscountPercent(),
			InStock:  p.InStock(),
			Desc:     p.Description.PlainText(),
		}
		if p.SalePrice != nil {
			v.SalePrice = *p.SalePrice
		}
		if img := p.MainImage(); img != nil {
			v.ImageURL = img.URL
			v.ImageAlt = img.Alt
		}
		for _, ref := range p.Images {
			if ref.Doc != nil {
				v.GalleryURL = append(v.GalleryURL, ref.Doc.URL)
			}
		}
		views = append(views, v)
	}
	return views
}

func categoryViews(categories []models.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		v := categoryView{
			ID:          cat.ID.Hex(),
			Title:       cat.Title,
			Slug:        cat.Slug,
			Description: cat.Description,
		}
		if cat.Image != nil && cat.Image.Doc != nil {
			v.ImageURL = cat.Image.Doc.URL
		}
		views = append(views, v)
	}
	return views
}

func notificationViews(list []models.Notification) []notificationView {
	views := make([]notificationView, 0, len(list))
	for _, n := range list {
		views = append(views, notificationView{
			Title:   n.Title,
			Message: n.Message,
			Type:    string(n.Type),
			Icon:    n.Icon,
			Link:    n.Link,
		})
	}
	return views
}
