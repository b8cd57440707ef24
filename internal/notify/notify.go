package notify

import "github.com/sirupsen/logrus"

// Severity of a user-facing message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives user-facing messages. The UI layer decides how to render
// them (toast, banner); this package only carries text plus severity.
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to the application log. Used as the
// default sink when no UI transport is attached.
type LogNotifier struct {
	Log *logrus.Logger
}

func (n *LogNotifier) Notify(severity Severity, message string) {
	if n.Log == nil {
		return
	}
	entry := n.Log.WithField("severity", string(severity))
	if severity == SeverityError {
		entry.Warn(message)
		return
	}
	entry.Info(message)
}

// Recorder captures notifications in memory.
type Recorder struct {
	Messages []Message
}

type Message struct {
	Severity Severity
	Text     string
}

func (r *Recorder) Notify(severity Severity, message string) {
	r.Messages = append(r.Messages, Message{Severity: severity, Text: message})
}
