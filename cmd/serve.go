package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linesmerrill/hospital-api/api/scheduler"
	"github.com/linesmerrill/hospital-api/databases"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the reminder scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := a.Close(closeCtx); err != nil {
				zap.S().Errorw("failed to disconnect from database", "error", err)
			}
		}()

		if a.Config.SendGridAPIKey != "" {
			s := scheduler.NewScheduler(
				databases.NewAppointmentDatabase(a.DB()),
				databases.NewUserDatabase(a.DB()),
				scheduler.NewSendGridMailer(a.Config),
			)
			if err := s.Start(); err != nil {
				return err
			}
			defer s.Stop()
		} else {
			zap.S().Warn("SENDGRID_API_KEY not set, appointment reminders disabled")
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%v", a.Config.Port),
			Handler:           a.Router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.S().Infow("hospital-api is up and running",
				"port", a.Config.Port,
				"url", a.Config.BaseURL,
			)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			zap.S().Info("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
