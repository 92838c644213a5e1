package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos-catalog/internal/analytics"
)

type analyticsResponse struct {
	Options analytics.Options `json:"options"`
	Report  analytics.Report  `json:"report"`
}

func analyticsHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q analytics.Query
		if err := c.ShouldBindQuery(&q); err != nil {
			badRequest(c, "invalid analytics query")
			return
		}
		products := svc.All()
		report, err := analytics.Build(q, products)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, analyticsResponse{
			Options: analytics.BuildOptions(products),
			Report:  report,
		})
	}
}
