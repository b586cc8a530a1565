package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and server versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Client: %s\n", version)
			info, err := ctrl.API.ServerVersion(ctx)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Server: unreachable (%v)\n", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server: %s\n", info.Version)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
