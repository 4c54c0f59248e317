package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/halvard/docvec/pkg/docvec"
	"github.com/halvard/docvec/pkg/embedder"
	"github.com/halvard/docvec/pkg/store"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed the chunk blob and write the embedding store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmbed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(ctx context.Context) error {
	step := color.New(color.FgCyan).PrintfFunc()
	done := color.New(color.FgGreen).PrintfFunc()

	step("📂 Loading chunks from %s...\n", cfg.ChunksPath)
	segments, err := store.LoadSegments(cfg.ChunksPath)
	if err != nil {
		return err
	}
	step("📊 Total chunks to embed: %d\n", len(segments))

	step("🔍 Initializing %s embedder (model=%s)...\n", cfg.Provider, cfg.Model)
	emb, err := newEmbedder()
	if err != nil {
		return fmt.Errorf("initializing embedder: %w", err)
	}

	step("⚡ Generating embeddings...\n")
	record, err := docvec.Build(ctx, segments, emb)
	if err != nil {
		return err
	}
	step("✅ Generated embeddings with dimension: %d\n", record.Dimension)

	if err := store.SaveRecord(cfg.EmbeddingsPath, record); err != nil {
		return fmt.Errorf("saving embedding store: %w", err)
	}

	sizeMB := 0.0
	if info, err := os.Stat(cfg.EmbeddingsPath); err == nil {
		sizeMB = float64(info.Size()) / (1024 * 1024)
	}
	done("🎉 Embedding store saved to %s (%.2f MB)\n", cfg.EmbeddingsPath, sizeMB)
	return nil
}

func newEmbedder() (embedder.Embedder, error) {
	switch cfg.Provider {
	case "openai":
		return embedder.NewOpenAIEmbedder(cfg.Model)
	case "ollama":
		return embedder.NewOllamaEmbedder(cfg.OllamaHost, cfg.Model)
	case "local":
		return embedder.NewLocalEmbedder(cfg.LocalDimension), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}
