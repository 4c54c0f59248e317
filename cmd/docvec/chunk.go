package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/halvard/docvec/pkg/loader"
	"github.com/halvard/docvec/pkg/splitter"
	"github.com/halvard/docvec/pkg/store"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Load documents, split them into chunks and write the chunk blob",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChunk()
	},
}

func init() {
	rootCmd.AddCommand(chunkCmd)
}

func runChunk() error {
	step := color.New(color.FgCyan).PrintfFunc()
	done := color.New(color.FgGreen).PrintfFunc()

	step("📂 Loading documents from %s...\n", cfg.DataDir)
	docs, err := loader.TextLoader{}.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents found under %s", cfg.DataDir)
	}
	step("📄 Loaded %d documents\n", len(docs))

	split := splitter.New(cfg.ChunkSize, cfg.ChunkOverlap)
	segments := split.SplitDocuments(docs)
	step("🧩 Split into %d chunks (size=%d, overlap=%d)\n", len(segments), cfg.ChunkSize, cfg.ChunkOverlap)

	kept := splitter.FilterSegments(segments, cfg.MinChunkLength)
	if dropped := len(segments) - len(kept); dropped > 0 {
		step("🧹 Dropped %d chunks shorter than %d characters\n", dropped, cfg.MinChunkLength)
	}

	if err := store.SaveSegments(cfg.ChunksPath, kept); err != nil {
		return fmt.Errorf("saving chunks: %w", err)
	}

	done("✅ Wrote %d chunks to %s\n", len(kept), cfg.ChunksPath)
	return nil
}
