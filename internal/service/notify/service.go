package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

// MessagingService describes how reports reach the studio operators.
type MessagingService interface {
	SendOutbound(ctx context.Context, msg models.OutboundMessage) error
}

// WriterNotifier prints outbound messages to a writer such as the operator console.
type WriterNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *zap.Logger
}

// NewWriterNotifier wires a new notifier instance.
func NewWriterNotifier(out io.Writer, logger *zap.Logger) *WriterNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WriterNotifier{out: out, logger: logger}
}

// SendOutbound writes the message, prefixed by its subject when present.
func (n *WriterNotifier) SendOutbound(ctx context.Context, msg models.OutboundMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.Message == "" {
		return errors.New("empty outbound message")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	text := msg.Message
	if msg.Subject != "" {
		text = fmt.Sprintf("[%s] %s", msg.Subject, msg.Message)
	}
	if _, err := fmt.Fprintln(n.out, text); err != nil {
		return fmt.Errorf("write outbound message: %w", err)
	}

	n.logger.Info("outbound message sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
