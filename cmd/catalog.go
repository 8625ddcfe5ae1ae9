package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"wardrobe-manager/feature/wardrobe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd groups the catalog commands.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Resolve and inspect the clothing catalog",
	Long:  `Resolves the figure and furni data once and reports on the resulting catalog without starting the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// summaryCmd prints per-category counts.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print catalog metrics",
	Long:  `Prints item counts per category and classification. With --json the full catalog is written to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := wardrobe.NewService(rt.aggregator, rt.publisher, rt.logger)
		stats := svc.Stats(cmd.Context())

		if jsonOutput {
			filename := fmt.Sprintf("wardrobe_catalog_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(svc.Catalog(cmd.Context()), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			rt.logger.Info("Catalog saved", zap.String("file", filename))
		}

		fmt.Println("\n=== Wardrobe Catalog Metrics ===")
		fmt.Printf("Build: %s (%s)\n", stats.BuildID, stats.Source)
		fmt.Printf("Categories: %d\n", stats.TotalCategories)
		fmt.Printf("Items: %d\n", stats.TotalItems)

		codes := make([]string, 0, len(stats.PerCategory))
		for code := range stats.PerCategory {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("  %-3s %d\n", code, stats.PerCategory[code])
		}
		for class, n := range stats.Classifications {
			fmt.Printf("%s: %d\n", class, n)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
		return nil
	},
}

// buildCmd prints the resolved build identifier.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Print the resolved client build",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		cat := rt.aggregator.Catalog(cmd.Context())
		fmt.Printf("%s %s\n", cat.BuildID, cat.Source)
		return nil
	},
}

// publishCmd uploads the catalog to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the catalog to the storage bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := wardrobe.NewService(rt.aggregator, rt.publisher, rt.logger)
		manifest, err := svc.Publish(cmd.Context())
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}
		rt.logger.Info("Catalog published",
			zap.String("build", manifest.BuildID),
			zap.String("source", string(manifest.Source)),
			zap.Int("items", manifest.Items),
			zap.String("object", rt.publisher.CategoriesPath()),
		)
		return nil
	},
}

// clearCacheCmd empties the configured cache store.
var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Remove every cached document and catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.aggregator.ClearCache(cmd.Context()); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		rt.logger.Info("Cache cleared", zap.String("backend", rt.cfg.Wardrobe.CacheBackend))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(summaryCmd, buildCmd, publishCmd, clearCacheCmd)

	summaryCmd.Flags().Bool("json", false, "Write the full catalog to a JSON file")
}
