package httpserver

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pos-catalog/internal/domain"
	cartsvc "pos-catalog/internal/service/cart"
	productsvc "pos-catalog/internal/service/product"
	"pos-catalog/internal/store"
)

// Deps are the services the handlers talk to.
type Deps struct {
	ProductSvc  productService
	CartSvc     cartService
	CategorySvc categoryService
}

type productService interface {
	All() []domain.Product
	List(query, category string) []productsvc.Listing
	Get(id string) (*productsvc.Listing, error)
	Create(fields store.ProductFields) (*domain.Product, error)
	Update(id string, fields store.ProductFields) (*domain.Product, error)
	Delete(id string) error
}

type cartService interface {
	Get() domain.CartSummary
	Update(in cartsvc.UpdateInput) (domain.CartSummary, error)
	Checkout() domain.Receipt
	Cancel() domain.CartSummary
}

type categoryService interface {
	List() []string
	Options() []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	corsMiddleware, err := newCORS(corsOrigins)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), corsMiddleware)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.ProductSvc))

	if deps.ProductSvc != nil {
		router.GET("/products", listProductsHandler(deps.ProductSvc))
		router.GET("/products/:id", getProductHandler(deps.ProductSvc))
		router.POST("/products", createProductHandler(deps.ProductSvc))
		router.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
		router.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))
		router.GET("/analytics", analyticsHandler(deps.ProductSvc))
	}
	if deps.CategorySvc != nil {
		router.GET("/categories", categoriesHandler(deps.CategorySvc))
	}
	if deps.CartSvc != nil {
		router.GET("/cart", getCartHandler(deps.CartSvc))
		router.POST("/cart/actions", updateCartHandler(deps.CartSvc))
		router.POST("/cart/checkout", checkoutHandler(deps.CartSvc))
		router.POST("/cart/cancel", cancelCartHandler(deps.CartSvc))
	}

	return router, nil
}

func newCORS(origins []string) (gin.HandlerFunc, error) {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}
	return cors.New(cfg), nil
}
