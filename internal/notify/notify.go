package notify

import "context"

// Notifier sends one-off SMS messages to users. Delivery is best-effort:
// callers log failures but never surface them to the user.
type Notifier interface {
	SendSMS(ctx context.Context, phoneNumber, message string) error
}

// NopNotifier is used when outbound notifications are disabled in config.
type NopNotifier struct{}

func (NopNotifier) SendSMS(ctx context.Context, phoneNumber, message string) error {
	return nil
}
