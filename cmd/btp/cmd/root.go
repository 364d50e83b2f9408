// cmd/btp/cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
	"github.com/AhmetHKarabulut/btp-app/internal/app/client"
	"github.com/AhmetHKarabulut/btp-app/internal/app/client/config"
	"github.com/AhmetHKarabulut/btp-app/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "btp",
	Short: "BTP üye yönetimi istemcisi",
	Long: `BTP saha çalışanları için üye yönetimi istemcisi.

Üye listesini sayfa sayfa görüntüler, isme ya da telefona göre süzer,
kişi bilgilerini günceller ve yapılan aramaları yerel günlüğe işler.
Sunucuya ulaşılamadığında tanıtım verisiyle çalışmaya devam eder.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	defer func() {
		if app != nil {
			_ = app.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("yapılandırma yüklenemedi: %w", err)
	}

	// Komut satırı bayrakları yapılandırmayı ezer
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("uygulama başlatılamadı: %w", err)
	}

	cmd.SetContext(appctx.With(cmd.Context(), app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".btp"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Yapılandırma dosyası yoksa varsayılanlarla devam edilir
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "yapılandırma dosyası")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "sunucu adresi (host:port)")

	// Alt komutlar init.go içinde bağlanır
}
