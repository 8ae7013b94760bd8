// Package main is a command that evaluates correlation decay curves and
// renders them as a table or a plot.
package main

import (
	"os"

	"github.com/edaniels/golog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/geomodel/sensorcorr/corrfunc"
)

var logger = golog.NewDevelopmentLogger("corrcurve")

var app = &cli.App{
	Name:            "corrcurve",
	Usage:           "evaluate sensor model parameter correlation decay curves",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.Float64Flag{
			Name:  "max-dt",
			Value: 100,
			Usage: "largest delta time, in seconds, to evaluate",
		},
		&cli.IntFlag{
			Name:  "steps",
			Value: 20,
			Usage: "number of delta time steps to evaluate",
		},
		&cli.StringFlag{
			Name:  "plot",
			Usage: "write a PNG plot to `FILE` instead of printing a table",
		},
	},
	Commands: []*cli.Command{
		{
			Name:  "fourparam",
			Usage: "evaluate a four-parameter decay curve",
			Flags: []cli.Flag{
				&cli.Float64Flag{Name: "a", Value: 0.9, Usage: "overall scale factor, in (0, 1]"},
				&cli.Float64Flag{Name: "alpha", Value: 0.5, Usage: "long-lag correlation fraction, in [0, 1)"},
				&cli.Float64Flag{Name: "beta", Value: 2.0, Usage: "decay shape parameter, in [0, 10]"},
				&cli.Float64Flag{Name: "tau", Value: 10.0, Usage: "time-decay constant, in seconds, > 0"},
			},
			Action: fourParamAction,
		},
		{
			Name:  "dampedcosine",
			Usage: "evaluate a damped cosine curve",
			Flags: []cli.Flag{
				&cli.Float64Flag{Name: "a", Value: 0.8, Usage: "scale factor, in [1e-6, 1]"},
				&cli.Float64Flag{Name: "t", Value: 10.0, Usage: "damping time constant, in seconds"},
				&cli.Float64Flag{Name: "p", Value: 5.0, Usage: "oscillation period, in seconds"},
			},
			Action: dampedCosineAction,
		},
		{
			Name:  "lineardecay",
			Usage: "evaluate a piecewise-linear decay curve",
			Flags: []cli.Flag{
				&cli.Float64SliceFlag{Name: "corrs", Usage: "per-segment starting correlations"},
				&cli.Float64SliceFlag{Name: "times", Usage: "per-segment starting times, in seconds"},
			},
			Action: linearDecayAction,
		},
	},
}

func fourParamAction(c *cli.Context) error {
	cf, err := corrfunc.NewFourParameter(
		c.Float64("a"), c.Float64("alpha"), c.Float64("beta"), c.Float64("tau"), 0)
	if err != nil {
		return err
	}
	return render(c, cf)
}

func dampedCosineAction(c *cli.Context) error {
	cf, err := corrfunc.NewDampedCosine(c.Float64("a"), c.Float64("t"), c.Float64("p"), 0)
	if err != nil {
		return err
	}
	return render(c, cf)
}

func linearDecayAction(c *cli.Context) error {
	cf, err := corrfunc.NewLinearDecay(c.Float64Slice("corrs"), c.Float64Slice("times"), 0)
	if err != nil {
		return err
	}
	return render(c, cf)
}

func render(c *cli.Context, cf corrfunc.Function) error {
	maxDT := c.Float64("max-dt")
	steps := c.Int("steps")
	if maxDT <= 0 || steps < 1 {
		return errors.New("max-dt must be positive and steps at least 1")
	}

	if out := c.String("plot"); out != "" {
		return writePlot(cf, maxDT, steps, out)
	}
	printTable(cf, maxDT, steps)
	return nil
}

func printTable(cf corrfunc.Function, maxDT float64, steps int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(cf.Name())
	tw.AppendHeader(table.Row{"delta time (s)", "correlation"})
	for i := 0; i <= steps; i++ {
		dt := maxDT * float64(i) / float64(steps)
		tw.AppendRow(table.Row{dt, cf.CorrelationCoefficient(dt)})
	}
	tw.Render()
}

func writePlot(cf corrfunc.Function, maxDT float64, steps int, out string) error {
	pts := make(plotter.XYs, steps+1)
	for i := range pts {
		dt := maxDT * float64(i) / float64(steps)
		pts[i].X = dt
		pts[i].Y = cf.CorrelationCoefficient(dt)
	}

	p := plot.New()
	p.Title.Text = cf.Name()
	p.X.Label.Text = "delta time (s)"
	p.Y.Label.Text = "correlation"
	p.Y.Min, p.Y.Max = -1, 1

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "building curve line")
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "saving plot to %s", out)
	}
	logger.Infow("wrote plot", "path", out, "points", len(pts))
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
