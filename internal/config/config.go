package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Backoffice   Backoffice   `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Backoffice aponta para a API externa dona dos dados de produtos e
// vendas. Este serviço não persiste nada localmente.
type Backoffice struct {
	URL            string `mapstructure:"backoffice_url"`
	TimeoutSeconds int    `mapstructure:"backoffice_timeout_seconds"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Report struct {
	Title string `mapstructure:"report_title"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("BACKOFFICE_URL", "http://localhost:8001")
	viper.SetDefault("BACKOFFICE_TIMEOUT_SECONDS", 30)

	// Refresh periódico do snapshot, desabilitado por padrão: o refresh
	// após cada mutação já cobre o uso interativo.
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "*/15 * * * *")
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("REPORT_TITLE", "Relatório de Performance")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando o ambiente do processo")
}
