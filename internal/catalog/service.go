package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ierr "go-product-reviews/internal/errors"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/repository/product"
	"go-product-reviews/internal/repository/review"

	"github.com/rs/zerolog/log"
)

type Options struct {
	ProductsPageSize int
	ReviewsPageSize  int
	SearchLimit      int
}

var DefaultOptions = Options{
	ProductsPageSize: 9,
	ReviewsPageSize:  40,
	SearchLimit:      9,
}

type ProductPage struct {
	Products []model.Product `json:"products"`
	Count    int64           `json:"count"`
}

type ReviewPage struct {
	Reviews []model.Review `json:"reviews"`
	Count   int64          `json:"count"`
}

// Service lists and searches the catalog and keeps Product.Reviews in step with the reviews collection.
// The two collections are written independently; a failed second write is compensated, not rolled back.
type Service struct {
	products product.IRepository
	reviews  review.IRepository
	opts     Options
}

func New(products product.IRepository, reviews review.IRepository, opts Options) *Service {
	if opts.ProductsPageSize <= 0 {
		opts.ProductsPageSize = DefaultOptions.ProductsPageSize
	}
	if opts.ReviewsPageSize <= 0 {
		opts.ReviewsPageSize = DefaultOptions.ReviewsPageSize
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = DefaultOptions.SearchLimit
	}
	return &Service{products: products, reviews: reviews, opts: opts}
}

func (s *Service) ListProducts(ctx context.Context, req ProductListRequest) (ProductPage, error) {
	q, err := s.productListQuery(req)
	if err != nil {
		return ProductPage{}, err
	}

	products, count, err := s.products.FindAndCount(ctx, q)
	if err != nil {
		return ProductPage{}, err
	}

	return ProductPage{Products: products, Count: count}, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.products.GetById(ctx, id)
}

func (s *Service) ListReviews(ctx context.Context, page int) (ReviewPage, error) {
	q, err := s.reviewListQuery(page)
	if err != nil {
		return ReviewPage{}, err
	}

	reviews, err := s.reviews.Find(ctx, q)
	if err != nil {
		return ReviewPage{}, err
	}

	count, err := s.reviews.Count(ctx, q)
	if err != nil {
		return ReviewPage{}, err
	}

	return ReviewPage{Reviews: reviews, Count: count}, nil
}

// SearchProducts returns the first page of products whose name contains the query, ignoring case.
// Count covers every match.
func (s *Service) SearchProducts(ctx context.Context, query string) (ProductPage, error) {
	q, err := s.searchQuery(strings.TrimSpace(query))
	if err != nil {
		return ProductPage{}, err
	}

	products, count, err := s.products.FindAndCount(ctx, q)
	if err != nil {
		return ProductPage{}, err
	}

	return ProductPage{Products: products, Count: count}, nil
}

// CreateProduct stores the category capitalized so that category listing finds it.
func (s *Service) CreateProduct(ctx context.Context, data *model.Product) error {
	if err := validateProduct(data); err != nil {
		return err
	}

	data.Category = CapitalizeFirst(strings.TrimSpace(data.Category))
	data.Reviews = []string{}
	if err := s.products.Create(ctx, data); err != nil {
		return err
	}

	log.Debug().Msgf("created product %s", data.Id)
	return nil
}

// RemoveProduct deletes the product only. Its reviews stay in the reviews collection.
func (s *Service) RemoveProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// AddReview creates the review and links it to its product. When linking fails the review is deleted again.
func (s *Service) AddReview(ctx context.Context, productId string, data *model.Review) error {
	if err := validateReview(data); err != nil {
		return err
	}

	if _, err := s.products.GetById(ctx, productId); err != nil {
		return err
	}

	data.Product = productId
	if err := s.reviews.Create(ctx, data); err != nil {
		return err
	}

	if err := s.products.AddReview(ctx, productId, data.Id); err != nil {
		if cerr := s.reviews.Delete(context.WithoutCancel(ctx), data.Id); cerr != nil {
			log.Error().Err(cerr).Msgf("catalog: review %s left unlinked from product %s", data.Id, productId)
		}
		return fmt.Errorf("link review: %w", err)
	}

	return nil
}

// RemoveReview unlinks the review from its product and deletes it. When the delete fails the link is restored.
func (s *Service) RemoveReview(ctx context.Context, reviewId string) error {
	rw, err := s.reviews.GetById(ctx, reviewId)
	if err != nil {
		return err
	}

	if err := s.products.RemoveReview(ctx, rw.Product, rw.Id); err != nil {
		if errors.Is(err, ierr.NotFound) {
			return fmt.Errorf("owning product of review %s: %w", rw.Id, err)
		}
		return err
	}

	if err := s.reviews.Delete(ctx, rw.Id); err != nil {
		if errors.Is(err, ierr.NotFound) {
			return err
		}
		if cerr := s.products.AddReview(context.WithoutCancel(ctx), rw.Product, rw.Id); cerr != nil {
			log.Error().Err(cerr).Msgf("catalog: failed to relink review %s to product %s", rw.Id, rw.Product)
		}
		return err
	}

	return nil
}

func validateProduct(p *model.Product) error {
	switch {
	case strings.TrimSpace(p.Category) == "":
		return ierr.Invalidf("category is required")
	case strings.TrimSpace(p.Name) == "":
		return ierr.Invalidf("name is required")
	case p.Price.IsNegative():
		return ierr.Invalidf("price must not be negative")
	}
	return nil
}

func validateReview(r *model.Review) error {
	switch {
	case strings.TrimSpace(r.UserName) == "":
		return ierr.Invalidf("userName is required")
	case strings.TrimSpace(r.Text) == "":
		return ierr.Invalidf("text is required")
	}
	return nil
}
