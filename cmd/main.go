package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/interviewtools/tracker/internal/clients/interviews"
	"github.com/interviewtools/tracker/internal/config"
	"github.com/interviewtools/tracker/internal/logger"
	"github.com/interviewtools/tracker/internal/metrics"
	"github.com/interviewtools/tracker/internal/notifier"
	"github.com/interviewtools/tracker/internal/repositories"
	"github.com/interviewtools/tracker/internal/services"
	log "github.com/sirupsen/logrus"
)

func runSync(ctx context.Context, cfg *config.Config, interviewRepo *repositories.Interviews,
	companyRepo *repositories.Companies, bus EventBus.Bus) *services.AutoSync {

	client := interviews.NewClient()
	client.SetBaseURL(cfg.API.BaseURL)
	client.SetRateLimit(cfg.API.MaxRequestsPerSecond)
	if cfg.API.AuthToken != "" {
		client.SetAuthToken(cfg.API.AuthToken)
	}

	syncer := services.NewSyncer(bus, client, interviewRepo, companyRepo)

	var autoSync *services.AutoSync
	if cfg.Sync.Schedule != "" {
		var err error
		autoSync, err = services.NewAutoSync(syncer, cfg.Sync.Schedule)
		if err != nil {
			log.Fatalf("can't create auto sync: %v", err)
		}
	}

	if cfg.Sync.SyncOnStart {
		go syncer.SyncAll(ctx)
	}

	return autoSync
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	interviewRepo := repositories.NewInterviewsRepository(dbContext.DB)
	companyRepo := repositories.NewCompaniesRepository(dbContext.DB)
	bus := EventBus.New()

	var tgNotifier *notifier.Notifier
	if cfg.Notifier.Enabled() {
		tgNotifier, err = notifier.NewNotifier(cfg.Notifier.TgToken, cfg.Notifier.TgChatID, bus)
		if err != nil {
			log.Fatalf("can't create notifier: %v", err)
		}
	}

	autoSync := runSync(ctx, cfg, interviewRepo, companyRepo, bus)

	<-ctx.Done()

	log.Info("Shutting down services...")
	if autoSync != nil {
		autoSync.Stop()
	}
	if tgNotifier != nil {
		tgNotifier.Stop()
	}
	log.Info("Services stopped.")
}
