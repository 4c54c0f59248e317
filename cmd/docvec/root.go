package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the resolved pipeline configuration.
type config struct {
	DataDir        string `mapstructure:"dataDir"`
	ChunksPath     string `mapstructure:"chunksPath"`
	EmbeddingsPath string `mapstructure:"embeddingsPath"`
	ChunkSize      int    `mapstructure:"chunkSize"`
	ChunkOverlap   int    `mapstructure:"chunkOverlap"`
	MinChunkLength int    `mapstructure:"minChunkLength"`
	Provider       string `mapstructure:"provider"`
	Model          string `mapstructure:"model"`
	OllamaHost     string `mapstructure:"ollamaHost"`
	LocalDimension int    `mapstructure:"localDimension"`
}

var (
	cfgFile string
	cfg     config
)

var rootCmd = &cobra.Command{
	Use:   "docvec",
	Short: "docvec builds a chunked embedding store from a document directory",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env if present (for API keys)
		_ = godotenv.Load()
		return loadConfig()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default docvec.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory of input documents")
	rootCmd.PersistentFlags().String("provider", "", "embedding provider: openai, ollama or local")
	rootCmd.PersistentFlags().String("model", "", "embedding model name")

	_ = viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
}

func loadConfig() error {
	viper.SetDefault("dataDir", "data")
	viper.SetDefault("chunksPath", "store/chunks.gob")
	viper.SetDefault("embeddingsPath", "store/embeddings/embeddings.gob")
	viper.SetDefault("chunkSize", 800)
	viper.SetDefault("chunkOverlap", 100)
	viper.SetDefault("minChunkLength", 50)
	viper.SetDefault("provider", "openai")
	viper.SetDefault("model", "text-embedding-3-small")
	viper.SetDefault("ollamaHost", "")
	viper.SetDefault("localDimension", 256)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		viper.SetConfigName("docvec")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("chunkSize must be greater than zero")
	}
	if cfg.ChunkOverlap < 0 {
		return fmt.Errorf("chunkOverlap must be zero or greater")
	}
	if cfg.ChunkOverlap >= cfg.ChunkSize {
		return fmt.Errorf("chunkOverlap must be smaller than chunkSize")
	}
	if cfg.MinChunkLength < 0 {
		return fmt.Errorf("minChunkLength must be zero or greater")
	}
	if cfg.LocalDimension <= 0 {
		return fmt.Errorf("localDimension must be greater than zero")
	}
	return nil
}
