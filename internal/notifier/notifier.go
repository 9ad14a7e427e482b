package notifier

import (
	"log"
	"time"
)

// Notifier abstracts the delivery channel (email/SMS/push later).
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs to stdout; good enough until a real channel exists.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}

func HumanTime(unix int64) string {
	return time.Unix(unix, 0).Local().Format("2006-01-02 15:04")
}
