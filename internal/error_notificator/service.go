package error_notificator

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	infra Notificator
	log   *zap.Logger
}

func NewService(infra Notificator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{infra: infra, log: log}
}

// Notify пишет ошибку в лог с incident id и пересылает её админу.
// Ошибка отправки только логируется: уведомление не должно ломать обработку апдейта.
func (s *Service) Notify(ctx context.Context, err error, details string) error {
	incident := uuid.NewString()

	s.log.Error("internal error",
		zap.String("incident", incident),
		zap.String("details", details),
		zap.Error(err),
	)

	if s.infra == nil {
		return nil
	}

	if sendErr := s.infra.Notify(ctx, err, "Incident: "+incident+"\n"+details); sendErr != nil {
		s.log.Warn("admin notify failed", zap.String("incident", incident), zap.Error(sendErr))
		return sendErr
	}
	return nil
}
