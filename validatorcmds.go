package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/stakeseer/solstake/internal/lib/misc"
	"github.com/stakeseer/solstake/internal/report"
	"github.com/stakeseer/solstake/internal/staking"
)

func GetValidatorCmdOpts() *cli.Command {
	return &cli.Command{
		Name:    "validators",
		Aliases: []string{"v"},
		Usage:   "Fetch, score and rank validator candidates",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "top",
				Usage: "Number of ranked validators to display",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of validators to fetch before ranking",
				Value: 200,
			},
		},
		Action: ListValidators,
	}
}

func ListValidators(ctx context.Context, cmd *cli.Command) error {
	records, err := App.chain.Validators(ctx, int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to fetch validators: %w", err)
	}

	scored := staking.RankValidators(records, int(cmd.Int("top")))
	if len(scored) == 0 {
		misc.Infof(App.logger, "no scorable validators returned (fetched:%d)", len(records))
		return nil
	}

	fmt.Print(report.ValidatorTable(scored))
	return nil
}
