// Command lqdemo factors a matrix, prints the two-block L/Q rendering, and
// solves a linear system through the factorization. The matrix and
// right-hand side come from a TOML config file, or are generated from a
// seed when the config gives only a shape.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/lmittmann/tint"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqpack/lq"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	configPath := flag.String("config", "lqdemo.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("config file not found, using defaults", "path", *configPath)
			cfg = defaultRunConfig()
		} else {
			slog.Error("bad config", "err", err)
			os.Exit(1)
		}
	}

	if err := run(cfg); err != nil {
		slog.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg runConfig) error {
	a := buildMatrix(cfg)
	m, n := a.Dims()
	slog.Info("factoring", "rows", m, "cols", n)

	f, err := lq.Factorize(a)
	if err != nil {
		return err
	}
	slog.Info("factored", "det_q", f.Q().Det())

	fmt.Println(f)

	if cfg.ShowQ {
		fmt.Println("materialized Q:")
		fmt.Printf("%v\n", mat.Formatted(f.Q().Materialize(), mat.Squeeze()))
	}

	recon := f.Reconstruct()
	var diff mat.Dense
	diff.Sub(recon, a)
	slog.Info("reconstruction", "frob_err", mat.Norm(&diff, 2))

	if m > n {
		slog.Info("overdetermined shape, skipping solve", "rows", m, "cols", n)
		return nil
	}

	b := buildRHS(cfg, m)
	x, err := f.Solve(b)
	if err != nil {
		return err
	}
	var ax mat.Dense
	ax.Mul(a, x)
	var resid mat.Dense
	resid.Sub(&ax, b)
	slog.Info("solved", "residual_norm", mat.Norm(&resid, 2), "solution_norm", mat.Norm(x, 2))

	fmt.Println("minimum-norm solution:")
	fmt.Printf("%v\n", mat.Formatted(x, mat.Squeeze()))
	return nil
}

// buildMatrix returns the configured inline matrix, or a seeded random one.
func buildMatrix(cfg runConfig) *mat.Dense {
	if cfg.Matrix != nil {
		return denseFromRows(cfg.Matrix)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	a := mat.NewDense(cfg.Rows, cfg.Cols, nil)
	for i := 0; i < cfg.Rows; i++ {
		for j := 0; j < cfg.Cols; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
	}
	return a
}

// buildRHS returns the configured right-hand side, or a seeded random m×1
// vector.
func buildRHS(cfg runConfig, m int) *mat.Dense {
	if cfg.RHS != nil {
		return denseFromRows(cfg.RHS)
	}
	rng := rand.New(rand.NewSource(cfg.Seed + 1))
	b := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		b.Set(i, 0, rng.NormFloat64())
	}
	return b
}

func denseFromRows(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	d := mat.NewDense(r, c, nil)
	for i, row := range rows {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d
}
