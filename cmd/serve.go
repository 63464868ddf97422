package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgviz/httpsrv"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interactive web visualization",
	Long: `Start the interactive web visualization. The page has sliders for the
parameters, live statistics and a step-by-step animation streamed over a
websocket.`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := loadPresets()
		if err != nil {
			return err
		}
		s := httpsrv.NewServer(
			httpsrv.WithListenAddress(viper.GetString("listen")),
			httpsrv.WithMaxModulus(viper.GetUint64("max-modulus")),
			httpsrv.WithStepDelay(viper.GetDuration("speed")),
			httpsrv.WithPresets(ps),
		)

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.ListenAndServe()
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case err := <-errCh:
			return err
		case <-sig:
			log.Println("[INFO] shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return s.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "0.0.0.0:8080", "listen address")
	serveCmd.Flags().Uint64("max-modulus", 4096, "largest modulus accepted by the web api")
	serveCmd.Flags().Duration("speed", 500*time.Millisecond, "default animation delay per step")
}
