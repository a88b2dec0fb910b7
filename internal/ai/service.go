package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const SystemPrompt = "You are a helpful assistant that provides movie recommendations based on user input."

// ResponderError — транспорт, авторизация или форма ответа OpenAI
type ResponderError struct {
	Err error
}

func (e *ResponderError) Error() string {
	return "responder: " + e.Err.Error()
}

func (e *ResponderError) Unwrap() error { return e.Err }

// Reply — результат Respond: либо Text, либо Err.
type Reply struct {
	Text string
	Err  error
}

func (r Reply) Failed() bool { return r.Err != nil }

type AiService struct {
	completer Completer
	log       *zap.Logger
}

func NewAiService(completer Completer, log *zap.Logger) *AiService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AiService{completer: completer, log: log}
}

func (s *AiService) Respond(ctx context.Context, userText string) Reply {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userText},
	}

	s.log.Debug("ai request", zap.Int("text_len", len(userText)))

	text, err := s.completer.GetCompletion(ctx, messages)
	if err != nil {
		return Reply{Err: &ResponderError{Err: fmt.Errorf("%w (%s)", err, diagnose(err))}}
	}

	return Reply{Text: text}
}

// diagnose — короткая подсказка для логов / уведомления админу
func diagnose(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "invalid OpenAI API key"
	case strings.Contains(msg, "status code: 404"):
		return "model not found"
	case strings.Contains(msg, "status code: 429"):
		return "OpenAI rate limit exceeded"
	case strings.Contains(msg, "status code: 400"):
		return "bad request to OpenAI"
	case strings.Contains(msg, "status code: 5"):
		return "OpenAI internal error"
	case strings.Contains(msg, "empty choices"):
		return "no choices in response"
	}
	return "unknown OpenAI error"
}
