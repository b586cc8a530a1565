package render

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Outcome classifies how an action ended. Transport and server failures
// both surface as failures, carrying the server's detail when one was
// supplied.
type Outcome struct {
	OK     bool
	Detail string
}

func Success(detail string) Outcome { return Outcome{OK: true, Detail: detail} }

func Failure(err error) Outcome {
	if err == nil {
		return Outcome{OK: true}
	}
	return Outcome{Detail: err.Error()}
}

// Notifier is the single reporting surface for every handler: one call
// per user action, naming the action and its outcome. No notification is
// fatal; the caller stays usable and may retry.
type Notifier interface {
	Notify(action string, outcome Outcome)
}

// WriterNotifier prints notifications for interactive use and logs
// failures so silent paths (theme persist, stale drops) remain traceable.
type WriterNotifier struct {
	Out    io.Writer
	Logger *zap.Logger
}

func (n *WriterNotifier) Notify(action string, outcome Outcome) {
	logger := n.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if outcome.OK {
		if outcome.Detail != "" {
			fmt.Fprintf(n.Out, "%s: %s\n", action, outcome.Detail)
		} else {
			fmt.Fprintf(n.Out, "%s: ok\n", action)
		}
		return
	}
	logger.Warn("action failed", zap.String("action", action), zap.String("detail", outcome.Detail))
	if outcome.Detail != "" {
		fmt.Fprintf(n.Out, "%s failed: %s\n", action, outcome.Detail)
	} else {
		fmt.Fprintf(n.Out, "%s failed\n", action)
	}
}
