package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the token cache",
	Long: `Clean drops every cached token stream. The cache directory is taken
from [cache] dir in the configuration, or the per-user cache directory.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	// чистим и выключенный кеш: он мог остаться от прошлых запусков
	cache, err := openDiskCache(current.settings.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to open token cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cache.Dir(), err)
	}
	current.logger.Debug("token cache dropped", "dir", cache.Dir())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
	return nil
}
