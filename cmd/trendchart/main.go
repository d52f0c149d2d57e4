// Command trendchart renders one season trend chart to an SVG or PNG file.
//
//	trendchart -season games.json -metric pts -players A,B -width 1200 -dpr 1 -format svg -o out.svg
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/render"
	"github.com/vytor/hoopstats/internal/repository/jsonfile"
	"github.com/vytor/hoopstats/internal/services"
)

type options struct {
	season  string
	metric  string
	players string
	all     bool
	width   float64
	dpr     float64
	format  string
	out     string
	verbose bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "trendchart: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("trendchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.season, "season", "games.json", "season JSON file")
	fs.StringVar(&o.metric, "metric", string(models.MetricPoints), "metric: pts, reb, ast, stl, blk, fgp or tpp")
	fs.StringVar(&o.players, "players", "", "comma-separated players to plot; empty plots everyone")
	fs.BoolVar(&o.all, "all", true, "plot every player when -players is empty; -all=false draws the empty-selection chart")
	fs.Float64Var(&o.width, "width", 1200, "display width in CSS pixels")
	fs.Float64Var(&o.dpr, "dpr", 1, "device pixel ratio")
	fs.StringVar(&o.format, "format", "", "svg or png; defaults to the -o extension, then svg")
	fs.StringVar(&o.out, "o", "-", "output file, - for stdout")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

func (o options) outputFormat() (render.Format, error) {
	raw := o.format
	if raw == "" {
		raw = string(render.FormatSVG)
		if strings.HasSuffix(strings.ToLower(o.out), ".png") {
			raw = string(render.FormatPNG)
		}
	}
	f, ok := render.ParseFormat(raw)
	if !ok {
		return "", fmt.Errorf("unknown format %q", raw)
	}
	return f, nil
}

// selection resolves -players against the roster.
func (o options) selection(roster []models.Player) []models.Player {
	var out []models.Player
	for _, name := range strings.Split(o.players, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, models.Player(name))
		}
	}
	if len(out) == 0 && o.all {
		return roster
	}
	return out
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := logger.WARN
	if o.verbose {
		level = logger.DEBUG
	}
	log := logger.New(logger.WithOutput(stderr), logger.WithLevel(level))
	ctx = logger.NewContext(ctx, log)

	metric, ok := models.ParseMetric(o.metric)
	if !ok {
		return fmt.Errorf("unknown metric %q", o.metric)
	}
	format, err := o.outputFormat()
	if err != nil {
		return err
	}

	seasons := services.NewSeasonService(jsonfile.NewSeasonRepository(o.season))
	st, err := seasons.Load(ctx)
	if err != nil {
		return err
	}

	charts := services.NewChartService(seasons, nil)
	out, err := charts.Render(ctx, services.ChartRequest{
		Metric:   metric,
		Players:  o.selection(st.Players()),
		CSSWidth: o.width,
		DPR:      o.dpr,
		Format:   format,
	})
	if err != nil {
		return err
	}
	log.Debug("rendered %s chart: %dx%d, bytes=%d", format, out.Size.Width, out.Size.Height, len(out.Data))

	if o.out == "-" {
		_, err = stdout.Write(out.Data)
		return err
	}
	return os.WriteFile(o.out, out.Data, 0o644)
}
