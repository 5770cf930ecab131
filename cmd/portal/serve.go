package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ircportal/internal/adapters/rest"
)

const (
	tokenTTL        = 12 * time.Hour
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the task reminder loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.cfg.ValidateServe(); err != nil {
			return err
		}

		if a.cfg.LogLevel < logrus.DebugLevel {
			gin.SetMode(gin.ReleaseMode)
		}
		router := rest.NewRouter(rest.Services{
			Identity:       a.identity,
			Events:         a.events,
			Socials:        a.socials,
			Tasks:          a.tasks,
			Calendar:       a.calendar,
			Fundraising:    a.fundraising,
			Reimbursements: a.reimbursements,
			Notifications:  a.notifications,
			Minutes:        a.minutes,
		}, rest.Options{
			Tokens:         rest.NewTokenIssuer([]byte(a.cfg.JWTSecret), tokenTTL),
			Translator:     a.translator,
			DefaultLocale:  a.cfg.Locale,
			AllowedOrigins: a.cfg.CORSOrigins,
			Location:       a.cfg.Location,
		})

		go a.reminders.Run(ctx, a.cfg.ReminderInterval)

		srv := &http.Server{
			Addr:              a.cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		errc := make(chan error, 1)
		go func() {
			logrus.WithField("addr", srv.Addr).Info("portal listening")
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logrus.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
