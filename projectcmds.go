package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/stakeseer/solstake/internal/lib/misc"
	"github.com/stakeseer/solstake/internal/staking"
)

func GetProjectCmdOpts() *cli.Command {
	return &cli.Command{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project compounded returns for an explicit amount/APY/horizon",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "amount",
				Aliases: []string{"a"},
				Usage:   "Amount of SOL to stake",
				Value:   10,
			},
			&cli.FloatFlag{
				Name:     "apy",
				Usage:    "APY percentage to compound at",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Time period in days",
				Value:   365,
			},
			&cli.FloatFlag{
				Name:  "price",
				Usage: "SOL price in USD (fetched from the price source when not set)",
			},
		},
		Action: ProjectReturns,
	}
}

func ProjectReturns(ctx context.Context, cmd *cli.Command) error {
	price := cmd.Float("price")
	if !cmd.IsSet("price") {
		fetched, err := App.prices.SolPriceUSD(ctx)
		if err != nil {
			misc.Warnf(App.logger, "price source unavailable, valuing at $0.00, error:%v", err)
		} else {
			price = fetched
		}
	}

	proj, err := staking.CalculateReturns(cmd.Float("amount"), cmd.Float("apy"), int(cmd.Int("days")), price)
	if err != nil {
		return err
	}

	out := new(strings.Builder)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Initial SOL\t%.4f\t\n", proj.InitialSOL)
	fmt.Fprintf(tw, "APY\t%.2f%%\t\n", proj.APYPercent)
	fmt.Fprintf(tw, "SOL after %d days\t%.4f\t\n", proj.Days, proj.FinalSOL)
	fmt.Fprintf(tw, "SOL earned\t%.4f\t\n", proj.EarnedSOL)
	fmt.Fprintf(tw, "Current Value\t$%.2f\t\n", proj.CurrentValueUSD)
	fmt.Fprintf(tw, "Projected Value\t$%.2f\t\n", proj.ProjectedValueUSD)
	fmt.Fprintf(tw, "ROI\t%.2f%%\t\n", proj.ROIPercent)
	tw.Flush()
	fmt.Print(out.String())
	return nil
}
