package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"pos-catalog/internal/domain"
	productsvc "pos-catalog/internal/service/product"
	"pos-catalog/internal/store"
)

// numberField accepts a JSON number or a numeric string and keeps the raw
// text; the store does the parsing and validation.
type numberField string

func (n *numberField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numberField(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = numberField(num.String())
	return nil
}

type productRequest struct {
	Name        string      `json:"name"`
	Price       numberField `json:"price"`
	Stock       numberField `json:"stock"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	UnitType    string      `json:"unitType"`
	Category    string      `json:"category"`
}

func (r productRequest) fields() store.ProductFields {
	return store.ProductFields{
		Name:        r.Name,
		Price:       string(r.Price),
		Stock:       string(r.Stock),
		Description: r.Description,
		Image:       r.Image,
		UnitType:    r.UnitType,
		Category:    r.Category,
	}
}

func listProductsHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings := svc.List(c.Query("q"), c.Query("category"))
		c.JSON(http.StatusOK, listResponse[productsvc.Listing]{Count: len(listings), Results: listings})
	}
}

func getProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := svc.Get(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listing)
	}
}

func createProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid product payload")
			return
		}
		product, err := svc.Create(req.fields())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid product payload")
			return
		}
		product, err := svc.Update(c.Param("id"), req.fields())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func categoriesHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": svc.List(),
			"options":    svc.Options(),
			"default":    domain.CategoryAll,
		})
	}
}
