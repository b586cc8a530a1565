package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/ui"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Server administration (backup, restore, broker status)",
}

var adminKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Set the backup encryption key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			key, err := promptLine(cmd, "Backup key")
			if err != nil {
				return err
			}
			return ctrl.SetBackupKey(ctx, key)
		})
	},
}

var adminBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a new server backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.CreateBackup(ctx)
		})
	},
}

var adminDownloadOut string

var adminDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the latest backup archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.DownloadBackup(ctx, adminDownloadOut)
		})
	},
}

var adminRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore the server from a backup archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.RestoreBackup(ctx, args[0])
		})
	},
}

var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the MQTT broker connection status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowAdmin(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminKeyCmd, adminBackupCmd, adminDownloadCmd, adminRestoreCmd, adminStatusCmd)

	adminDownloadCmd.Flags().StringVar(&adminDownloadOut, "out", "backup.tar.gz", "Output file for the archive")
}
