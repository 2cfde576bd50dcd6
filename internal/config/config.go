package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config reúne toda a configuração do processo, carregada uma única vez na
// inicialização e injetada explicitamente nos componentes. Nenhum componente
// lê variáveis de ambiente por conta própria.
type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	BigQuery  BigQuery  `mapstructure:",squash"`
	Ads       Ads       `mapstructure:",squash"`
	StatsSync StatsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// BigQuery identifica a tabela de destino (project.dataset.table) e,
// opcionalmente, um arquivo de credenciais para o client
type BigQuery struct {
	Project         string `mapstructure:"gcp_project"`
	Dataset         string `mapstructure:"bq_dataset"`
	Table           string `mapstructure:"bq_table"`
	CredentialsFile string `mapstructure:"bq_credentials_file"`
}

// Ads identifica a conta alvo do relatório e carrega o blob YAML de
// credenciais da API do Google Ads. O blob é interpretado apenas no caminho
// da consulta, para que credenciais malformadas apareçam como falha de
// extração do job e não derrubem o processo na subida.
type Ads struct {
	CustomerID   string `mapstructure:"ads_customer_id"`
	ConfigString string `mapstructure:"ads_config_string"`
	Endpoint     string `mapstructure:"ads_endpoint"`
	APIVersion   string `mapstructure:"ads_api_version"`
}

// StatsSync configura o agendador interno opcional que dispara o mesmo job
// de ETL sobre uma janela de lookback
type StatsSync struct {
	CronSchedule string `mapstructure:"stats_sync_cron"`
	LookbackDays int    `mapstructure:"stats_sync_lookback_days"`
	Enabled      bool   `mapstructure:"stats_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("GCP_PROJECT", "")
	viper.SetDefault("BQ_DATASET", "google_ads_data")
	viper.SetDefault("BQ_TABLE", "p_CampaignStats")
	viper.SetDefault("BQ_CREDENTIALS_FILE", "")

	viper.SetDefault("ADS_CUSTOMER_ID", "")
	viper.SetDefault("ADS_CONFIG_STRING", "")
	viper.SetDefault("ADS_ENDPOINT", "https://googleads.googleapis.com")
	viper.SetDefault("ADS_API_VERSION", "v16")

	// Defaults para o agendador interno de sincronização
	viper.SetDefault("STATS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("STATS_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar dados
	viper.SetDefault("STATS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// TableID retorna o identificador completo da tabela de destino
func (b BigQuery) TableID() string {
	return b.Project + "." + b.Dataset + "." + b.Table
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
