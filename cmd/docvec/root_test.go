package main

import (
	"testing"

	"github.com/spf13/viper"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	cfg = config{}
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetConfig(t)

	if err := loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.ChunkSize != 800 || cfg.ChunkOverlap != 100 {
		t.Errorf("chunk defaults = size %d overlap %d, want 800/100", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider default = %q, want openai", cfg.Provider)
	}
	if cfg.LocalDimension != 256 {
		t.Errorf("localDimension default = %d, want 256", cfg.LocalDimension)
	}
}

func TestLoadConfig_RejectsOverlapNotSmallerThanSize(t *testing.T) {
	resetConfig(t)
	viper.Set("chunkSize", 100)
	viper.Set("chunkOverlap", 100)

	if err := loadConfig(); err == nil {
		t.Error("expected an error when chunkOverlap equals chunkSize")
	}
}

func TestLoadConfig_RejectsNonPositiveLocalDimension(t *testing.T) {
	resetConfig(t)
	viper.Set("localDimension", 0)

	if err := loadConfig(); err == nil {
		t.Error("expected an error for localDimension 0")
	}
}

func TestNewEmbedder_LocalUsesConfiguredDimension(t *testing.T) {
	resetConfig(t)
	cfg.Provider = "local"
	cfg.LocalDimension = 64

	emb, err := newEmbedder()
	if err != nil {
		t.Fatalf("newEmbedder() error: %v", err)
	}
	if got := emb.Dimension(); got != 64 {
		t.Errorf("Dimension() = %d, want 64", got)
	}
}

func TestNewEmbedder_UnknownProvider(t *testing.T) {
	resetConfig(t)
	cfg.Provider = "carrier-pigeon"

	if _, err := newEmbedder(); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}
