package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellchain/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const maxArityKey = "arity"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-expanded combine operators",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest number of sources to generate a combinator for",
				Value: 6,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for combine operators started !")
	defer func() {
		log.Printf("Codegen for combine operators finished in %v", time.Since(start))
	}()

	maxArity := cmd.Uint(maxArityKey)
	log.Printf("Max arity: %d", maxArity)

	contents := templates.CombineGen(int(maxArity))
	if err := os.WriteFile("chain/combine.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
