package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/ui"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			username := loginUsername
			password := loginPassword
			var err error
			if username == "" {
				if username, err = promptLine(cmd, "Username"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptLine(cmd, "Password"); err != nil {
					return err
				}
			}
			return ctrl.Login(ctx, username, password)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session and the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			ctrl.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, cleanup, err := buildController(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ok, err := ctrl.Resume(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}
		user := ctrl.Session.User()
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s units)\n", user.Name, user.UnitSystem)
		if user.IsAdmin {
			fmt.Fprintln(cmd.OutOrStdout(), "Admin: yes")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", ctrl.ActiveTheme())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, statusCmd)

	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Username (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")
}
