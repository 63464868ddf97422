package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/render"
)

// animateCmd represents the animate command
var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Animate the step-by-step derivation in the terminal",
	Long: `Animate the derivation of every step: start with X(n), multiply by a,
add c and reduce modulo m, drawing the value bar of each phase and the
growing scatter plot of consecutive pairs.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := paramsFromFlags(cmd)
		if err != nil {
			return err
		}
		rep, err := render.NewReport(p)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts, err := renderOptions(out)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = animate(ctx, out, rep, viper.GetDuration("speed"), opts...)
		if err == context.Canceled {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(animateCmd)

	addParamFlags(animateCmd)
	animateCmd.Flags().Duration("speed", 500*time.Millisecond, "delay per phase")
}

// animate plays the four phases of every step of rep on out, waiting delay
// after each phase and half of it again after the modulo phase.
func animate(ctx context.Context, out io.Writer, rep *render.Report, delay time.Duration, opts ...render.Option) error {
	r := render.New(out, opts...)
	for i := range rep.Steps {
		for ph := lcg.PhaseStart; ph < lcg.PhaseCount; ph++ {
			if err := frame(r, rep, i, ph); err != nil {
				return err
			}

			d := delay
			if ph == lcg.PhaseModulo {
				d += delay / 2
			}
			if err := sleep(ctx, d); err != nil {
				return err
			}
		}
	}

	if err := r.Clear(); err != nil {
		return err
	}
	return render.Write("text", out, rep, opts...)
}

func frame(r *render.Renderer, rep *render.Report, i int, ph lcg.Phase) error {
	if err := r.Clear(); err != nil {
		return err
	}
	if !r.Colored() && ph != lcg.PhaseStart {
		return r.Step(rep.Params, rep.Steps[i], ph)
	}
	if err := r.Progress(rep.Params, i+1, len(rep.Steps)); err != nil {
		return err
	}
	if err := r.Step(rep.Params, rep.Steps[i], ph); err != nil {
		return err
	}
	if !r.Colored() {
		return nil
	}
	n := i
	if ph == lcg.PhaseModulo {
		n++
	}
	return r.Scatter(rep.Params.M, rep.Pairs[:n])
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
