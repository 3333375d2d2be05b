package web

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/example/storefront/pkg/catalog"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/notify"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server renders the storefront pages and exposes the order intake API.
type Server struct {
	config  *config.Config
	catalog *catalog.Service
	notify  *notify.Service
	store   store.Store
	logger  *zap.Logger
	router  *gin.Engine
}

func NewServer(cfg *config.Config, logger *zap.Logger, cat *catalog.Service, not *notify.Service, st store.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	router.SetFuncMap(template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	})
	router.LoadHTMLGlob("web/templates/*.tmpl")
	router.Static("/media", cfg.Media.Dir)

	return &Server{
		config:  cfg,
		catalog: cat,
		notify:  not,
		store:   st,
		logger:  logger,
		router:  router,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Storefront pages
	s.router.GET("/", s.homePage)
	s.router.GET("/products", s.productsPage)
	s.router.GET("/products/:slug", s.productPage)

	// JSON API
	api := s.router.Group("/api")
	{
		api.POST("/orders", s.createOrder)
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Storefront starting", zap.String("address", addr))
	return s.router.Run(addr)
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
