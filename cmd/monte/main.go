package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/srliao/estersim/pkg/chem"
	"github.com/srliao/estersim/pkg/monte"
)

func main() {
	var cfg chem.Profile
	var err error

	n := flag.Int("n", 1000, "how many runs, default 1000")
	prf := flag.String("p", "", "which profile to use; built in defaults if empty")
	worker := flag.Int("w", 24, "number of workers, default 24")
	bin := flag.Int("b", 60, "bin size in ticks, default 60")
	maxTicks := flag.Int("t", 36000, "give up on a run after this many ticks")
	every := flag.Int("e", 60, "sample the ester count every this many ticks")
	start := flag.String("start", "", "start mode: stoich, alcohol, acid; overrides the profile")
	out := flag.String("o", "out.html", "output file; default out.html")
	flag.Parse()

	cfg = chem.DefaultProfile()
	if *prf != "" {
		cfg, err = chem.LoadProfile(*prf)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *start != "" {
		cfg.StartMode, err = chem.ParseStartMode(*start)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Acid, cfg.Alcohol = nil, nil
	}

	begin := time.Now()
	sim, err := monte.New(cfg, *maxTicks, *every)
	if err != nil {
		log.Fatal(err)
	}
	sim.Progress = os.Stdout
	r, err := sim.SimCompletion(*n, *bin, *worker)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(begin)

	name := *prf
	if name == "" {
		name = "default"
	}
	fmt.Printf("Profile %v (%v) done in %s; %v of %v runs used up a reactant\n", name, cfg.StartMode, elapsed, r.Completed, r.Runs)

	page := components.NewPage()
	page.PageTitle = "simulation results"

	var bins []int
	var items []opts.BarData
	var cumul, med float64
	med = -1
	for i, v := range r.Hist {
		bins = append(bins, r.BinStart+r.BinSize*i)
		items = append(items, opts.BarData{Value: v})
		cumul += v / float64(r.Runs)
		if cumul >= 0.5 && med == -1 {
			med = float64(i)
		}
	}
	med = float64(r.BinStart) + med*float64(r.BinSize)
	label := fmt.Sprintf("min: %v, max %v, mean: %.2f, med: %.2f, sd: %.2f", r.Min, r.Max, r.Mean, med, r.SD)
	fmt.Println(label)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%v (n = %v)", name, r.Runs),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Freq",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Ticks",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%", Right: "0%", Orient: "vertical", Data: []string{label}}),
	)
	bar.SetXAxis(bins).AddSeries(label, items)

	var ticks []int
	var esters []opts.LineData
	for i, v := range r.Curve {
		ticks = append(ticks, i*r.SampleEvery)
		esters = append(esters, opts.LineData{Value: v})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "mean ester count",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Ester",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Ticks",
		}),
	)
	line.SetXAxis(ticks).AddSeries("ester", esters)

	page.AddCharts(
		bar,
		line,
	)

	graph, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer graph.Close()
	if err := page.Render(io.MultiWriter(graph)); err != nil {
		log.Fatal(err)
	}
}
