package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nandemo-ya/sitewise/cmd/codegen/generator"
	"github.com/nandemo-ya/sitewise/cmd/codegen/parser"
)

func main() {
	var (
		modelPath   = flag.String("model", "api-models/iotsitewise.json", "Path to Smithy model JSON file")
		outputDir   = flag.String("output", "service/iotsitewise", "Output directory for generated code")
		packageName = flag.String("package", "", "Package name of the generated code (default: base name of -output)")
	)
	flag.Parse()

	api, err := parser.ParseSmithyJSON(*modelPath)
	if err != nil {
		log.Fatalf("Failed to parse model: %v", err)
	}

	dir, err := filepath.Abs(*outputDir)
	if err != nil {
		log.Fatalf("Failed to resolve output directory: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	pkg := *packageName
	if pkg == "" {
		pkg = filepath.Base(dir)
	}

	if err := generator.New(pkg, dir).Generate(api); err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	fmt.Printf("Generated %s package in %s from %s\n", pkg, dir, *modelPath)
}
