package ports

// Notifier is the one-shot user-facing notification channel the stores report
// through instead of returning errors past their boundary.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}

func (NopNotifier) Error(string) {}
