package service

import (
	"context"
	"time"
	"todo-manager/internal/assistant"
	"todo-manager/internal/logging"
	"todo-manager/internal/workerpool"
)

// AssistantService forwards questions to the language model, one pool slot
// per call.
type AssistantService struct {
	asker   assistant.Asker
	pool    workerpool.Runner
	timeout time.Duration
	logger  *logging.Logger
}

func NewAssistantService(asker assistant.Asker, pool workerpool.Runner, timeout time.Duration, logger *logging.Logger) (*AssistantService, error) {
	if asker == nil {
		return nil, ErrAssistantNil
	}
	if pool == nil {
		return nil, ErrPoolNil
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &AssistantService{
		asker:   asker,
		pool:    pool,
		timeout: timeout,
		logger:  logger.WithComponent("assistant"),
	}, nil
}

func (s *AssistantService) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", ErrQuestionRequired
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()

	var answer string
	err := s.pool.Do(ctx, func(ctx context.Context) error {
		a, err := s.asker.Ask(ctx, question)
		if err != nil {
			return err
		}
		answer = a
		return nil
	})
	if err != nil {
		s.logger.Error("ask failed", map[string]interface{}{
			"error":    err.Error(),
			"duration": time.Since(start).String(),
		})
		return "", err
	}

	s.logger.Debug("ask answered", map[string]interface{}{
		"duration": time.Since(start).String(),
	})
	return answer, nil
}
