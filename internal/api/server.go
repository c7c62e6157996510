package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/internal/api/handler"
	"github.com/metas4dx/metas-4dx-api/internal/api/handler/router"
	"github.com/metas4dx/metas-4dx-api/internal/config"
	"github.com/metas4dx/metas-4dx-api/internal/scheduler"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/planning"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/registering"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/tracking"
	"github.com/metas4dx/metas-4dx-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	registrar registering.Registrar,
	goalService planning.GoalManager,
	measureService planning.MeasureManager,
	trackingService tracking.Tracker,
	backupSyncService *scheduler.BackupSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		BackupSyncService: backupSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Teams(registrar)...),
		router.WithRoutes(handler.Users(registrar)...),
		router.WithRoutes(handler.Goals(goalService)...),
		router.WithRoutes(handler.Measures(measureService)...),
		router.WithRoutes(handler.Weekly(trackingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
