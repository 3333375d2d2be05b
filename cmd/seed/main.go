package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/seed"
	"github.com/example/storefront/pkg/store"
	"go.uber.org/zap"
)

// Seeds the catalog with the sample categories and products. Safe to run
// repeatedly: entities whose slug already exists are never recreated.
func main() {
	env, missing, err := config.LoadSeedEnv(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}
	if len(missing) > 0 {
		fmt.Fprintln(os.Stderr, "missing required environment variables:")
		for _, name := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", name)
		}
		fmt.Fprintln(os.Stderr, "\nplease check your .env file and ensure all required variables are set")
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	st, err := store.NewMongoStore(
		&config.MongoDBConfig{URI: env.DatabaseURI, Database: env.Database},
		&config.MediaConfig{Dir: env.MediaDir, BaseURL: "/media"},
	)
	if err != nil {
		logger.Fatal("failed to connect to document store", zap.Error(err))
	}
	defer st.Close(ctx)

	if err := st.Ping(ctx); err != nil {
		logger.Fatal("document store unreachable", zap.Error(err))
	}

	seeder := seed.New(st, logger, "assets")

	categories, err := seeder.SeedCategories(ctx, seed.SampleCategories)
	if err != nil {
		logger.Fatal("category seeding failed", zap.Error(err))
	}

	products, err := seeder.SeedProducts(ctx, seed.SampleProducts)
	if err != nil {
		logger.Fatal("product seeding failed", zap.Error(err))
	}

	fmt.Println("seeding completed")
	fmt.Println("  " + categories.String())
	fmt.Println("  " + products.String())
}
