package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/integrator/googleads"
	"github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/integrator/googleads/adsclient"
	"github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/warehouse/bigquery"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/api"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/scheduler"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/usecases/etljob"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	loader, err := bigquery.NewLoader(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao BigQuery")
	}

	jobService := etljob.NewService(cfg, adsIntegrator, loader)

	// Agendador interno opcional; o contrato principal continua sendo o
	// agendador externo chamando POST /run
	statsSyncService := scheduler.NewStatsSyncService(jobService, cfg)
	if err := statsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de estatísticas")
	}

	server, err := api.New(cfg, jobService, statsSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
