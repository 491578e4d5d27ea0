package httpserver

import (
	"context"
	"log"

	"jewelstore/internal/catalog"
	"jewelstore/internal/domain"
	"jewelstore/internal/inquiry"
	productrepo "jewelstore/internal/repository/product"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type catalogService interface {
	Query(ctx context.Context, q productrepo.Query) (catalog.Page, error)
	Get(ctx context.Context, slug string) (*domain.Product, []domain.Product, error)
}

type inquiryService interface {
	Submit(ctx context.Context, ip string, in inquiry.Submission) (*domain.Inquiry, error)
}

// Deps carries the services the routes depend on. SeedRepo is nil when no
// persistent store is configured; the seed endpoint then reports failure.
type Deps struct {
	Catalog    catalogService
	Inquiry    inquiryService
	SeedRepo   productrepo.Writer
	SeedSecret string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:slug", getProductHandler(deps.Catalog))
	router.POST("/contact", contactHandler(deps.Inquiry))
	router.POST("/seed", seedHandler(deps.SeedRepo, deps.SeedSecret, logger))

	return router
}
