package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tc "github.com/Roma7-7-7/telegram"

	"meetcast/internal/config"
	"meetcast/internal/dal"
	"meetcast/internal/service"
	"meetcast/internal/telegram"
	"meetcast/pkg/clock"
)

// eventLocation is the time zone event times are entered and parsed in.
const eventLocation = "Europe/Moscow"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to process config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	store, err := dal.NewPostgresDB(ctx, conf.DatabaseURL)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	loc, err := time.LoadLocation(eventLocation)
	if err != nil {
		log.Error("Failed to load event location", "error", err)
		os.Exit(1)
	}

	sender := tc.NewClient(http.DefaultClient, conf.BotToken)
	subscriptionsSvc := service.NewSubscriptions(store, log)
	authoringSvc := service.NewAuthoring(store, loc, log)
	deliverySvc := service.NewDelivery(store, store, sender, clock.NewWithLocation(loc), log)

	handler := telegram.NewHandler(subscriptionsSvc, authoringSvc, conf.AdminID, log)
	bot, err := telegram.NewBot(conf, handler, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		deliverDue(ctx, deliverySvc, conf.SweepInterval, log.With("component", "schedule").With("action", "deliver"))
	}()
	if conf.PublicURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keepAlive(ctx, conf.PublicURL, conf.PingInterval, log.With("component", "schedule").With("action", "ping"))
		}()
	}

	log.Info("Starting bot")
	err = bot.Start(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func deliverDue(ctx context.Context, svc *service.Delivery, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped delivery schedule")
	}()

	log.InfoContext(ctx, "Starting delivery schedule")
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			err := svc.DeliverDue(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				if errors.Is(err, context.DeadlineExceeded) {
					log.WarnContext(ctx, "Error delivering announcements", "error", err)
					continue
				}

				log.ErrorContext(ctx, "Error delivering announcements", "error", err)
			}
		}
	}
}

// keepAlive pings the public URL so free-tier hosting does not idle the
// process out.
func keepAlive(ctx context.Context, url string, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped keep-alive schedule")
	}()

	log.InfoContext(ctx, "Starting keep-alive schedule")
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				log.WarnContext(ctx, "Failed to build keep-alive request", "error", err)
				continue
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				log.WarnContext(ctx, "Keep-alive ping failed", "error", err)
				continue
			}
			_ = resp.Body.Close()
		}
	}
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
