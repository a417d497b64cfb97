package api

import (
	"context"
	"net/http"
	"strconv"

	"go-product-reviews/internal/catalog"
	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/seeder"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	productAdded   = "Product was successfully added."
	productRemoved = "Product was successfully removed."
	reviewAdded    = "Review was successfully added."
	reviewRemoved  = "Review was successfully removed."
)

type Catalog interface {
	ListProducts(ctx context.Context, req catalog.ProductListRequest) (catalog.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListReviews(ctx context.Context, page int) (catalog.ReviewPage, error)
	SearchProducts(ctx context.Context, query string) (catalog.ProductPage, error)
	CreateProduct(ctx context.Context, data *model.Product) error
	RemoveProduct(ctx context.Context, id string) error
	AddReview(ctx context.Context, productId string, data *model.Review) error
	RemoveReview(ctx context.Context, reviewId string) error
}

type Seeder interface {
	Seed(ctx context.Context, n int) (seeder.Summary, error)
}

type Handler struct {
	catalog   Catalog
	seeder    Seeder
	seedCount int
}

func New(catalog Catalog, seeder Seeder, seedCount int) *Handler {
	return &Handler{catalog: catalog, seeder: seeder, seedCount: seedCount}
}

type createProductRequest struct {
	Category string           `json:"category" binding:"required"`
	Name     string           `json:"name" binding:"required"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Image    string           `json:"image" binding:"omitempty,url"`
}

type createReviewRequest struct {
	UserName string `json:"userName" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

func (h *Handler) GenerateFakeData(c *gin.Context) {
	summary, err := h.seeder.Seed(c.Request.Context(), h.seedCount)
	if err != nil {
		writeError(c, err, "GenerateFakeData")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) ListProducts(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		writeError(c, err, "ListProducts")
		return
	}

	res, err := h.catalog.ListProducts(c.Request.Context(), catalog.ProductListRequest{
		Category:   c.Query("category"),
		PriceOrder: catalog.PriceOrder(c.Query("price")),
		Page:       page,
	})
	if err != nil {
		writeError(c, err, "ListProducts")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("product"))
	if err != nil {
		writeError(c, err, "GetProduct")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListReviews(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		writeError(c, err, "ListReviews")
		return
	}

	res, err := h.catalog.ListReviews(c.Request.Context(), page)
	if err != nil {
		writeError(c, err, "ListReviews")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ierr.Invalidf("%v", err), "CreateProduct")
		return
	}

	p := model.Product{Category: req.Category, Name: req.Name, Price: *req.Price, Image: req.Image}
	if err := h.catalog.CreateProduct(c.Request.Context(), &p); err != nil {
		writeError(c, err, "CreateProduct")
		return
	}
	c.String(http.StatusCreated, productAdded)
}

func (h *Handler) AddReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ierr.Invalidf("%v", err), "AddReview")
		return
	}

	rw := model.Review{UserName: req.UserName, Text: req.Text}
	if err := h.catalog.AddReview(c.Request.Context(), c.Param("product"), &rw); err != nil {
		writeError(c, err, "AddReview")
		return
	}
	c.String(http.StatusCreated, reviewAdded)
}

func (h *Handler) RemoveProduct(c *gin.Context) {
	if err := h.catalog.RemoveProduct(c.Request.Context(), c.Param("product")); err != nil {
		writeError(c, err, "RemoveProduct")
		return
	}
	c.String(http.StatusOK, productRemoved)
}

func (h *Handler) RemoveReview(c *gin.Context) {
	if err := h.catalog.RemoveReview(c.Request.Context(), c.Param("review")); err != nil {
		writeError(c, err, "RemoveReview")
		return
	}
	c.String(http.StatusOK, reviewRemoved)
}

func (h *Handler) Search(c *gin.Context) {
	res, err := h.catalog.SearchProducts(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err, "Search")
		return
	}
	c.JSON(http.StatusOK, res)
}

// pageParam defaults to the first page when the parameter is absent.
func pageParam(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ierr.Invalidf("page must be an integer, got %q", raw)
	}
	return page, nil
}
