package cmd

import (
	"fmt"

	"wardrobe-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the wardrobe deployment",
	Long:  `Checks the storage folders, the published catalog objects and the cache table schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd, true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false, false)
	},
}

// publishedCmd represents the integrity catalog command
var publishedCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the published catalog objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the cache table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, publishedCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(cmd *cobra.Command, runStructure, runCatalog, runServer bool) error {
	ctx := cmd.Context()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Wardrobe.PublishPrefix, rt.publishedObjects(), logg, rt.db)

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run 'integrity structure --fix' to create missing folders.")
			}
		}
	}

	if runCatalog {
		logg.Info("Checking published catalog...")
		missing, err := svc.CheckCatalog(ctx)
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Published catalog is present.")
		} else {
			logg.Warn("Missing catalog objects detected", zap.Strings("missing", missing))
			logg.Info("Run 'catalog publish' to upload them.")
		}
	}

	if runServer {
		logg.Info("Checking cache table schema...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return nil
		}

		if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}

		logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}

	return nil
}
