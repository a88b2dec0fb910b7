package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Completer — один запрос chat completion, ответ первого choice
type Completer interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

type Responder interface {
	// Respond никогда не паникует и не возвращает error: неудача лежит в Reply.Err.
	Respond(ctx context.Context, userText string) Reply
}
