package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func GetPriceCmdOpts() *cli.Command {
	return &cli.Command{
		Name:   "price",
		Usage:  "Show the current SOL spot price",
		Action: ShowPrice,
	}
}

func ShowPrice(ctx context.Context, cmd *cli.Command) error {
	price, err := App.prices.SolPriceUSD(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch SOL price: %w", err)
	}
	fmt.Printf("Current SOL Price: $%.2f USD\n", price)
	return nil
}
