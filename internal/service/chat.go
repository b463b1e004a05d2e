package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/momhive/momhive/internal/ai"
)

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrUpstream     = errors.New("upstream completion failed")
)

type ChatService struct {
	streamer ai.Streamer
	timeout  time.Duration
}

// NewChatService bounds each completion by timeout; zero means no limit
func NewChatService(streamer ai.Streamer, timeout time.Duration) *ChatService {
	return &ChatService{
		streamer: streamer,
		timeout:  timeout,
	}
}

// Complete returns the concatenation of all streamed fragments in order
func (s *ChatService) Complete(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var sb strings.Builder
	for fragment, err := range s.streamer.Stream(ctx, message) {
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		sb.WriteString(fragment)
	}

	return sb.String(), nil
}
