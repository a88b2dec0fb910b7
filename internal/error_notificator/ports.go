package error_notificator

import "context"

type Notificator interface {
	// Notify — сообщает админу о внутренней ошибке
	Notify(ctx context.Context, err error, details string) error
}
