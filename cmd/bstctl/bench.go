package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-bst/internal/compare"
	"github.com/urfave/cli/v2"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "time the same workload on every map backend",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of keys",
			Value: 100_000,
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "insertion order of the keys: random, ascending or descending",
			Value: string(compare.Random),
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "seed of the random order",
			Value:   1,
			EnvVars: []string{"BSTCTL_SEED"},
		},
		&cli.StringFlag{
			Name:    "backends",
			Usage:   "comma separated backends, all of them when empty",
			EnvVars: []string{"BSTCTL_BACKENDS"},
		},
	},
	Action: runBench,
}

func runBench(cctx *cli.Context) error {
	o, err := compare.ParseOrder(cctx.String("order"))
	if err != nil {
		return err
	}
	if cctx.Int("n") < 0 {
		return fmt.Errorf("negative key count %d", cctx.Int("n"))
	}
	w := compare.Workload{N: cctx.Int("n"), Order: o, Seed: cctx.Int64("seed")}
	names := compare.Names()
	if s := cctx.String("backends"); s != "" {
		names = strings.Split(s, ",")
	}

	runner := compare.NewRunner(slog.Default())
	tw := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "backend\tphase\tops\ttime\tper op\t")
	for _, name := range names {
		b, err := compare.Open(strings.TrimSpace(name), w.N)
		if err != nil {
			return err
		}
		res, err := runner.Run(cctx.Context, b, w)
		if err != nil {
			return err
		}
		for _, p := range res.Phases {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%v\t\n", res.Backend, p.Name, humanize.Comma(int64(p.Ops)), p.Elapsed.Round(time.Microsecond), p.PerOp())
		}
		fmt.Fprintf(tw, "%s\ttotal\t\t%v\t\t\n", res.Backend, res.Total().Round(time.Microsecond))
	}
	return tw.Flush()
}
