package notify

import log "github.com/sirupsen/logrus"

// Notifier receives success/error signals from cart operations. The UI
// collaborator decides how to render them; the default implementation just
// logs.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that writes notifications to the log.
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Success(message string) {
	log.Infof("✅ %s", message)
}

func (n *logNotifier) Error(message string) {
	log.Warnf("❌ %s", message)
}
