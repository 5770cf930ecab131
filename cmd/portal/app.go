package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"ircportal/internal/adapters/discord"
	"ircportal/internal/application"
	"ircportal/internal/config"
	"ircportal/internal/infrastructure/i18n"
	"ircportal/internal/infrastructure/identity"
	"ircportal/internal/infrastructure/memory"
	"ircportal/internal/infrastructure/session"
	"ircportal/internal/ports/output"
	"ircportal/pkg/tz"
)

// sessionTTL bounds how long a CLI sign-in survives in Redis.
const sessionTTL = 7 * 24 * time.Hour

// app holds the wired services shared by every command.
type app struct {
	cfg        *config.Config
	translator *i18n.Translator
	sessions   output.SessionStore

	identity       *application.IdentityService
	notifications  *application.NotificationService
	events         *application.EventService
	socials        *application.SocialService
	tasks          *application.TaskService
	calendar       *application.CalendarService
	fundraising    *application.FundraisingService
	reimbursements *application.ReimbursementService
	minutes        *application.MinutesService
	reminders      *application.ReminderService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	repos := memory.NewRepositories()
	today, err := tz.ParseDate(tz.Date(time.Now(), cfg.Location), cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("resolve today: %w", err)
	}
	if err := memory.Seed(ctx, repos, today); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	sessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var relay output.NotificationRelay
	if cfg.DiscordEnabled() {
		r, err := discord.NewRelay(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			return nil, fmt.Errorf("discord relay: %w", err)
		}
		relay = r
	}

	a := &app{cfg: cfg, sessions: sessions}
	a.translator = i18n.NewTranslator(cfg.Locale)
	a.identity = application.NewIdentityService(provider, sessions)
	a.notifications = application.NewNotificationService(repos.Notifications, relay, a.translator, cfg.Locale)
	a.events = application.NewEventService(repos.Events, a.notifications)
	a.socials = application.NewSocialService(repos.Socials, cfg.Location)
	a.tasks = application.NewTaskService(repos.Tasks, a.notifications, cfg.Location)
	a.calendar = application.NewCalendarService(repos.Calendar, repos.Events, a.socials)
	a.fundraising = application.NewFundraisingService(repos.Fundraising)
	a.reimbursements = application.NewReimbursementService(repos.Reimbursements, repos.Events, a.notifications)
	a.minutes = application.NewMinutesService(repos.Minutes, cfg.Location)
	a.reminders = application.NewReminderService(a.tasks, a.notifications)

	logrus.WithFields(logrus.Fields{
		"identity": cfg.IdentityStrategy,
		"session":  cfg.SessionBackend,
		"discord":  cfg.DiscordEnabled(),
		"timezone": cfg.Timezone,
	}).Debug("portal wired")
	return a, nil
}

func newProvider(cfg *config.Config) (output.IdentityProvider, error) {
	if cfg.IdentityStrategy == config.IdentityGoTrue {
		return identity.NewGoTrueProvider(cfg.IdentityURL, cfg.IdentityClientID, []byte(cfg.IdentityJWTSecret)), nil
	}
	p, err := identity.NewStaticProvider(identity.DefaultAccounts, cfg.DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("static identity provider: %w", err)
	}
	return p, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (output.SessionStore, error) {
	if cfg.SessionBackend == config.SessionRedis {
		s, err := session.NewRedisStore(cfg.RedisURL, sessionTTL)
		if err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("redis session store: %w", err)
		}
		return s, nil
	}
	return session.NewFileStore(cfg.SessionPath), nil
}

// close releases the session backend when it holds a connection.
func (a *app) close() {
	if c, ok := a.sessions.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			logrus.WithError(err).Warn("close session store")
		}
	}
}
