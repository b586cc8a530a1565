package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sprillex/hahealth/internal/api"
	"github.com/sprillex/hahealth/internal/app"
	"github.com/sprillex/hahealth/internal/config"
	"github.com/sprillex/hahealth/internal/render"
	"github.com/sprillex/hahealth/internal/session"
	"github.com/sprillex/hahealth/internal/store"
	"github.com/sprillex/hahealth/internal/ui"
)

func buildLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func buildController(cmd *cobra.Command) (*ui.Controller, func(), error) {
	cfgPath := configPath
	if cfgPath == "" {
		p, err := app.DefaultConfigPath()
		if err != nil {
			return nil, nil, err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	base := cfg.ServerURL
	if serverURL != "" {
		base = serverURL
	}

	statePath, err := app.DefaultStatePath()
	if err != nil {
		return nil, nil, err
	}
	if err := app.EnsureStateDir(statePath); err != nil {
		return nil, nil, err
	}
	st, err := store.Open(statePath)
	if err != nil {
		return nil, nil, err
	}

	logger := buildLogger()
	client := api.New(base, logger)
	notifier := &render.WriterNotifier{Out: cmd.OutOrStdout(), Logger: logger}
	ctrl := ui.NewController(session.New(), client, st, notifier, logger, cmd.OutOrStdout())

	cleanup := func() {
		_ = st.Close()
		_ = logger.Sync()
	}
	return ctrl, cleanup, nil
}

// withSession builds the controller and resumes the stored session
// before running the command. A missing or invalid token sends the user
// back to login.
func withSession(cmd *cobra.Command, run func(ctx context.Context, ctrl *ui.Controller) error) error {
	ctrl, cleanup, err := buildController(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	ok, err := ctrl.Resume(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not logged in (run: hahealth login)")
	}
	return run(ctx, ctrl)
}

// withController skips session resume, for login and other
// unauthenticated commands.
func withController(cmd *cobra.Command, run func(ctx context.Context, ctrl *ui.Controller) error) error {
	ctrl, cleanup, err := buildController(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	return run(cmd.Context(), ctrl)
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func validDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return nil
}

func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
