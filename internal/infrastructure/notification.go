package infrastructure

import (
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/yourusername/video-downloader-go/internal/domain"
)

// Notifier raises desktop notifications for completed downloads. Failures are
// logged and swallowed; a missing notification never affects the session.
type Notifier struct {
	config domain.NotificationConfig
	logger *zap.Logger
}

// NewNotifier creates a notifier from configuration.
func NewNotifier(config domain.NotificationConfig, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{config: config, logger: log}
}

// DownloadCompleted announces a finished download.
func (n *Notifier) DownloadCompleted(title string) {
	if !n.config.Enabled {
		return
	}

	method := n.config.Method
	if method == "" || method == "auto" {
		method = defaultMethod()
	}

	var cmd *exec.Cmd
	switch method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title "Download complete"`, title)
		cmd = exec.Command("osascript", "-e", script)
	case "notify-send":
		cmd = exec.Command("notify-send", "Download complete", title)
	default:
		n.logger.Warn("unknown notification method", zap.String("method", method))
		return
	}

	if err := cmd.Run(); err != nil {
		n.logger.Debug("notification failed",
			zap.String("method", method),
			zap.Error(err))
		return
	}

	n.logger.Debug("notification sent", zap.String("title", title))
}

func defaultMethod() string {
	if runtime.GOOS == "darwin" {
		return "osascript"
	}
	return "notify-send"
}
