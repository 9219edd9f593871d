package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath string
	apiBaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "Shopfront",
	Long:  `Web client for browsing shops and managing their categories through the shop API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if apiBaseURL != "" {
			cfg.ShopAPI.BaseURL = apiBaseURL
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		// logs go to stderr so list output on stdout stays machine-readable
		logger.Init(cmd.ErrOrStderr(), cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		appConfig = cfg
		return nil
	},
}

var appConfig *internal.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// .env is a development convenience; a missing file is not an error
	_ = godotenv.Load()

	// Check if we're running in Docker environment
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	// Load configuration from file (development)
	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.allowed_origins", "*")
	v.SetDefault("http_server.read_header_timeout", 5*time.Second)
	v.SetDefault("http_server.read_timeout", 15*time.Second)
	v.SetDefault("http_server.write_timeout", 15*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)
	v.SetDefault("shop_api.base_url", internal.DefaultShopAPIBaseURL)
	v.SetDefault("shop_api.timeout", 10*time.Second)
	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "text")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yml")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api-url", "", "override the shop API base URL")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(shopsCmd)
	rootCmd.AddCommand(categoriesCmd)
}
