package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/csvstore"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/mongostore"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/postgres"
	"github.com/metas4dx/metas-4dx-api/internal/api"
	"github.com/metas4dx/metas-4dx-api/internal/config"
	"github.com/metas4dx/metas-4dx-api/internal/scheduler"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/planning"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/registering"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := newGateway(ctx, cfg)
	initCollections(ctx, gateway)

	teamRepo := repository.NewTeamRepository(gateway)
	userRepo := repository.NewUserRepository(gateway)
	goalRepo := repository.NewGoalRepository(gateway)
	measureRepo := repository.NewMeasureRepository(gateway)
	weeklyRepo := repository.NewWeeklyRepository(gateway)

	registrar := registering.NewService(teamRepo, userRepo)
	goalService := planning.NewGoalService(goalRepo, measureRepo, weeklyRepo)
	measureService := planning.NewMeasureService(measureRepo, goalRepo)
	trackingService := tracking.NewService(weeklyRepo, goalRepo)

	// O destino do backup é sempre um diretório de arquivos CSV,
	// independentemente do backend primário
	backupTarget, err := csvstore.New(cfg.BackupSync.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar diretório de backup")
	}

	backupSyncService := scheduler.NewBackupSyncService(gateway, backupTarget, cfg)
	if err := backupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup")
	}

	server, err := api.New(
		cfg,
		registrar,
		goalService,
		measureService,
		trackingService,
		backupSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// initCollections garante que todas as coleções existem no backend antes
// de aceitar requisições
func initCollections(ctx context.Context, gateway storage.Gateway) {
	for _, col := range storage.All() {
		exists, err := gateway.Exists(ctx, col)
		if err != nil {
			logrus.WithError(err).WithField("collection", col.Name).Fatal("Erro ao verificar coleção")
		}

		if !exists {
			logrus.WithField("collection", col.Name).Info("Coleção ausente, inicializando")
		}

		if _, err := gateway.Read(ctx, col); err != nil {
			logrus.WithError(err).WithField("collection", col.Name).Fatal("Erro ao inicializar coleção")
		}
	}
}

// newGateway cria o gateway de persistência configurado
func newGateway(ctx context.Context, cfg *config.Config) storage.Gateway {
	switch cfg.Storage.Driver {
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return postgres.NewStore(conn)

	case "mongo":
		store, err := mongostore.New(cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
		}
		logrus.Info("Conexão com MongoDB estabelecida com sucesso")
		return store

	default:
		store, err := csvstore.New(cfg.Storage.DataDir)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar diretório de dados")
		}
		logrus.WithField("data_dir", cfg.Storage.DataDir).Info("Armazenamento em arquivos CSV")
		return store
	}
}
