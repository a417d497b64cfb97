package seeder

import (
	"context"
	"fmt"
	"sync"

	"go-product-reviews/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	ReviewText     = "This product is awesome!"
	ReviewUserName = "Karen Ryan"
	ProductImage   = "https://lallahoriye.com.tirzee.com/wp-content/uploads/2019/04/Product_Lg_Type.jpg"

	// at most this many failure messages are kept in a Summary
	maxReportedErrors = 20
)

// Catalog is the part of catalog.Service the seeder writes through.
type Catalog interface {
	CreateProduct(ctx context.Context, data *model.Product) error
	AddReview(ctx context.Context, productId string, data *model.Review) error
}

type Summary struct {
	Requested int      `json:"requested"`
	Created   int      `json:"created"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

type Seeder struct {
	catalog     Catalog
	concurrency int
	faker       *gofakeit.Faker
}

// New returns a seeder writing at most concurrency items at a time. A zero seed draws a random one.
func New(catalog Catalog, concurrency int, seed int64) *Seeder {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Seeder{
		catalog:     catalog,
		concurrency: concurrency,
		faker:       gofakeit.New(seed),
	}
}

// Seed creates n fake products with one review each. Item failures are collected in the summary;
// the returned error is only set when ctx stopped the run.
func (s *Seeder) Seed(ctx context.Context, n int) (Summary, error) {
	summary := Summary{Requested: n, Errors: []string{}}
	products := s.fakeProducts(n)

	var mu sync.Mutex
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			summary.Created++
			return
		}
		summary.Failed++
		if len(summary.Errors) < maxReportedErrors {
			summary.Errors = append(summary.Errors, err.Error())
		}
	}

	group := errgroup.Group{}
	group.SetLimit(s.concurrency)

	for i := range products {
		if ctx.Err() != nil {
			break
		}
		p := products[i]
		group.Go(func() error {
			record(s.seedOne(ctx, &p))
			return nil
		})
	}
	group.Wait()

	summary.Failed += n - summary.Created - summary.Failed
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	log.Info().Int("created", summary.Created).Int("failed", summary.Failed).Msg("seeded fake data")
	return summary, nil
}

func (s *Seeder) seedOne(ctx context.Context, p *model.Product) error {
	if err := s.catalog.CreateProduct(ctx, p); err != nil {
		return fmt.Errorf("create product %q: %w", p.Name, err)
	}

	rw := model.Review{UserName: ReviewUserName, Text: ReviewText}
	if err := s.catalog.AddReview(ctx, p.Id, &rw); err != nil {
		return fmt.Errorf("add review to product %s: %w", p.Id, err)
	}
	return nil
}

// fakeProducts runs on the caller's goroutine so a fixed seed yields the same products.
func (s *Seeder) fakeProducts(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, model.Product{
			Category: s.faker.ProductCategory(),
			Name:     s.faker.ProductName(),
			Price:    decimal.NewFromFloat(s.faker.Price(1, 1000)).Round(2),
			Image:    ProductImage,
		})
	}
	return products
}
