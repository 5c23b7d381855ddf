package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/urfave/cli/v3"

	"github.com/stakeseer/solstake/internal/analyzer"
	"github.com/stakeseer/solstake/internal/lib/misc"
)

func GetReportCmdOpts() *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Generate a full staking analysis report (markdown + projection chart)",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "amount",
				Aliases: []string{"a"},
				Usage:   "Amount of SOL to stake",
				Value:   10,
			},
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Time period in days",
				Value:   365,
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Number of top validators to recommend",
				Value: 5,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Directory to write the report and chart into",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Fixed base name for the output files (default is timestamped names)",
			},
		},
		Action: GenerateReport,
	}
}

func GenerateReport(ctx context.Context, cmd *cli.Command) error {
	req := analyzer.ReportRequest{
		AmountSOL:     cmd.Float("amount"),
		Days:          int(cmd.Int("days")),
		TopValidators: int(cmd.Int("top")),
		OutDir:        cmd.String("out"),
		BaseName:      cmd.String("name"),
	}

	// Timestamped names never collide; only a fixed name can clobber a
	// previous run, so only then do we ask.
	if req.BaseName != "" {
		target := filepath.Join(req.OutDir, req.BaseName+".md")
		if _, err := os.Stat(target); err == nil {
			result, _ := yesNo(fmt.Sprintf("%s already exists, overwrite", target))
			if result != "y" {
				return nil
			}
		}
	}

	res, err := App.analyzer.GenerateReport(ctx, req)
	if err != nil {
		return err
	}
	misc.Infof(App.logger, "Analysis complete! Report saved to:%s", res.ReportPath)
	misc.Infof(App.logger, "Projection chart saved to:%s", res.ChartPath)
	return nil
}

func yesNo(prompt string) (string, error) {
	return (&promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}).Run()
}
