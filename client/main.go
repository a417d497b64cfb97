package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go-product-reviews/internal/catalog"
	"go-product-reviews/internal/config"
	"go-product-reviews/internal/logger"
	"go-product-reviews/internal/model"
	"go-product-reviews/internal/seeder"
	"go-product-reviews/internal/store"

	"github.com/rs/zerolog/log"
)

func main() {

	file := flag.String("file", "", "JSON file holding an array of products to import")
	seedCount := flag.Int("seed", 0, "number of fake products to generate, defaults to SEED_COUNT")
	flag.Parse()

	cnf := config.LoadConfigOrPanic()
	logger.Setup(cnf.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := store.Open(ctx, cnf)
	if err != nil {
		panic(err)
	}
	defer repos.Close()

	svc := catalog.New(repos.Products, repos.Reviews, catalog.DefaultOptions)

	if *file != "" {
		if err := importProducts(ctx, svc, *file); err != nil {
			panic(err)
		}
		return
	}

	n := *seedCount
	if n <= 0 {
		n = cnf.Seeder.Count
	}
	summary, err := seeder.New(svc, cnf.Seeder.Concurrency, 0).Seed(ctx, n)
	if err != nil {
		panic(err)
	}
	for _, e := range summary.Errors {
		log.Error().Msg(e)
	}
	fmt.Printf("Seeded %d of %d products (%d failed).\n", summary.Created, summary.Requested, summary.Failed)
}

func importProducts(ctx context.Context, svc *catalog.Service, filePath string) error {
	jsonFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer jsonFile.Close()

	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	var products []model.Product
	if err := json.Unmarshal(byteValue, &products); err != nil {
		return fmt.Errorf("unmarshal %s: %w", filePath, err)
	}

	imported := 0
	for i := range products {
		if err := svc.CreateProduct(ctx, &products[i]); err != nil {
			log.Error().Err(err).Msgf("skipping product %q", products[i].Name)
			continue
		}
		imported++
	}

	fmt.Printf("Imported %d of %d products.\n", imported, len(products))
	return nil
}
