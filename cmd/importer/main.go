package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pos-catalog/internal/config"
	"pos-catalog/internal/importer"
	"pos-catalog/internal/store"
)

func main() {
	_ = godotenv.Load()

	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV (id,name,description,price,stock,unitType,category,image)")
	flag.Parse()

	cfg := config.FromEnv()
	if filePath == "" {
		filePath = cfg.CatalogFile
	}
	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	start := time.Now()
	imp := importer.NewCSVImporter(f, store.Options{PlaceholderImage: cfg.PlaceholderImage})
	products, err := imp.Run()
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	categories := store.Categories(products)
	fmt.Printf("Validated %d products in %d categories from %s in %s\n", len(products), len(categories), filePath, time.Since(start).Truncate(time.Millisecond))
	for _, c := range categories {
		fmt.Printf("  %s: %d\n", c, len(store.FilterProducts(products, "", c)))
	}
}
