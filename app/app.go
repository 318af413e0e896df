package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"library-management/config"
	"library-management/internal/handler"
	"library-management/internal/repository"
	"library-management/internal/server"
	"library-management/internal/service"
	"library-management/internal/stats"
	"library-management/migrations"
	"library-management/pkg/kafka"
	"library-management/pkg/logger"
	"library-management/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()

	store, err := repository.NewStore(db, log)
	if err != nil {
		return fmt.Errorf("store init %v", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %v", err)
	}
	defer producer.Close()

	queue := service.NewEnqueuer(producer)

	catalogSvc := service.NewCatalog(store, log)
	accountSvc := service.NewAccount(store, log)
	issueSvc := service.NewIssue(store, queue, log)
	searchSvc := service.NewSearch(store, log)

	cg, err := kafka.NewConsumerGroup(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumerGroup %v", err)
	}
	defer cg.Close()

	h := handler.New(catalogSvc, accountSvc, issueSvc, searchSvc, cfg.JWT, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer := stats.NewConsumer(store.InsertIssueEvent, log)
		err := kafka.Consume(gCtx, cg, consumer, log, kafka.IssueEventsTopic)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
