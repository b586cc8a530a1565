package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sprillex/hahealth/internal/render"
)

// requireAdmin rejects admin actions client-side so the error message is
// friendlier than the server's 403. The rejection reports through the
// notifier like any other failed action.
func (c *Controller) requireAdmin(action string) error {
	if !c.Session.User().IsAdmin {
		err := fmt.Errorf("admin access required")
		c.Notifier.Notify(action, render.Failure(err))
		return err
	}
	return nil
}

func (c *Controller) SetBackupKey(ctx context.Context, key string) error {
	if err := c.requireAdmin("set backup key"); err != nil {
		return err
	}
	res, err := c.API.SetBackupKey(ctx, key)
	if err != nil {
		c.Notifier.Notify("set backup key", render.Failure(err))
		return err
	}
	c.Notifier.Notify("set backup key", render.Success(res.Message))
	return nil
}

func (c *Controller) CreateBackup(ctx context.Context) error {
	if err := c.requireAdmin("create backup"); err != nil {
		return err
	}
	res, err := c.API.CreateBackup(ctx)
	if err != nil {
		c.Notifier.Notify("create backup", render.Failure(err))
		return err
	}
	msg := res.Message
	if res.Filename != "" {
		msg = fmt.Sprintf("%s (%s)", res.Message, res.Filename)
	}
	c.Notifier.Notify("create backup", render.Success(msg))
	return nil
}

// DownloadBackup streams the latest backup archive to path. A partial file
// is removed on failure.
func (c *Controller) DownloadBackup(ctx context.Context, path string) error {
	if err := c.requireAdmin("download backup"); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		c.Notifier.Notify("download backup", render.Failure(err))
		return err
	}
	n, err := c.API.DownloadLatestBackup(ctx, f)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		c.Notifier.Notify("download backup", render.Failure(err))
		return err
	}
	c.Notifier.Notify("download backup",
		render.Success(fmt.Sprintf("%d bytes written to %s", n, path)))
	return nil
}

func (c *Controller) RestoreBackup(ctx context.Context, path string) error {
	if err := c.requireAdmin("restore backup"); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		c.Notifier.Notify("restore backup", render.Failure(err))
		return err
	}
	defer f.Close()
	res, err := c.API.RestoreBackup(ctx, filepath.Base(path), f)
	if err != nil {
		c.Notifier.Notify("restore backup", render.Failure(err))
		return err
	}
	c.Notifier.Notify("restore backup", render.Success(res.Message))
	return nil
}
