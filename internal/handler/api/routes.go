package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	router.GET("/generate-fake-data", h.GenerateFakeData)

	router.GET("/products", h.ListProducts)
	router.GET("/products/:product", h.GetProduct)
	router.POST("/products", h.CreateProduct)
	router.DELETE("/products/:product", h.RemoveProduct)

	router.GET("/reviews", h.ListReviews)
	router.POST("/:product/reviews", h.AddReview)
	router.DELETE("/reviews/:review", h.RemoveReview)

	router.GET("/search", h.Search)

	return router
}
