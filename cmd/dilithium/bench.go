package main

import (
	"crypto/ed25519"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Oxedize/fe2o3-sub000/dilithium"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Measure keygen/sign/verify and compare against Ed25519",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "iter",
				Usage: "Number of iterations per operation",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  "chart",
				Usage: "Write an HTML bar chart of the mean timings to this path",
			},
		},
		Action: runBench,
	}
}

// measure runs f iter times and returns the per-run durations in
// milliseconds.
func measure(iter int, f func()) []float64 {
	out := make([]float64, iter)
	for i := range out {
		start := time.Now()
		f()
		out[i] = float64(time.Since(start).Nanoseconds()) / 1e6
	}
	return out
}

func printStats(name string, ms []float64) float64 {
	mean, _ := stats.Mean(ms)
	median, _ := stats.Median(ms)
	stddev, _ := stats.StandardDeviation(ms)
	fmt.Printf("%-24s mean %.3f ms  median %.3f ms  stddev %.3f ms\n",
		name, mean, median, stddev)
	return mean
}

func runBench(c *cli.Context) error {
	iter := c.Int("iter")
	if iter < 1 {
		return errors.New("iter must be at least 1")
	}
	msg := []byte("benchmark message")

	fmt.Printf("%s vs Ed25519, %d iterations\n\n", dilithium.ModeName, iter)

	var seed [dilithium.SeedSize]byte
	pk, sk := dilithium.NewKeyFromSeed(&seed)
	sig := dilithium.Sign(sk, msg)

	edPub, edPriv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return errors.Wrap(err, "generating Ed25519 key")
	}
	edSig := ed25519.Sign(edPriv, msg)

	names := []string{"keygen", "sign", "verify"}
	means := map[string][2]float64{}

	dkg := measure(iter, func() { _, _, _ = dilithium.GenerateKey(nil) })
	ekg := measure(iter, func() { _, _, _ = ed25519.GenerateKey(nil) })
	dsg := measure(iter, func() { dilithium.Sign(sk, msg) })
	esg := measure(iter, func() { ed25519.Sign(edPriv, msg) })
	dvf := measure(iter, func() { dilithium.Verify(pk, msg, sig) })
	evf := measure(iter, func() { ed25519.Verify(edPub, msg, edSig) })

	for _, row := range []struct {
		name    string
		dil, ed []float64
	}{
		{"keygen", dkg, ekg},
		{"sign", dsg, esg},
		{"verify", dvf, evf},
	} {
		d := printStats(dilithium.ModeName+" "+row.name, row.dil)
		e := printStats("ed25519 "+row.name, row.ed)
		means[row.name] = [2]float64{d, e}
		fmt.Println()
	}

	if path := c.String("chart"); path != "" {
		if err := renderChart(path, names, means, iter); err != nil {
			return err
		}
		fmt.Println("Chart written to", path)
	}
	return nil
}

func renderChart(path string, names []string, means map[string][2]float64, iter int) error {
	dil := make([]opts.BarData, len(names))
	ed := make([]opts.BarData, len(names))
	for i, n := range names {
		dil[i] = opts.BarData{Value: means[n][0]}
		ed[i] = opts.BarData{Value: means[n][1]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Signature scheme timings",
			Subtitle: fmt.Sprintf("mean over %d iterations, milliseconds", iter),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "dilithium bench",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries(dilithium.ModeName, dil).
		AddSeries("ed25519", ed)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating chart file")
	}
	defer f.Close()
	return errors.Wrap(bar.Render(f), "rendering chart")
}
