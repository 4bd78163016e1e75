package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
)

// DefaultPollInterval is how often an open thread is re-fetched.
const DefaultPollInterval = 7 * time.Second

// ChatAPI is the part of the backend used for direct and group messages.
type ChatAPI interface {
	DirectThread(ctx context.Context, userID int64) (*models.ChatThread, error)
	GroupThread(ctx context.Context, groupID int64) (*models.ChatThread, error)
	ThreadMessages(ctx context.Context, threadID int64) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, threadID int64, text string) (*models.ChatMessage, error)
}

type ChatService struct {
	api ChatAPI
	log logging.Logger
}

func NewChatService(api ChatAPI, log logging.Logger) *ChatService {
	if log == nil {
		log = logging.Nop()
	}
	return &ChatService{api: api, log: log.With("component", "chat")}
}

// DirectThread opens (or creates) the one-to-one thread with userID.
func (c *ChatService) DirectThread(ctx context.Context, userID int64) (*models.ChatThread, error) {
	if userID <= 0 {
		return nil, errorf("Invalid user id %d.", userID)
	}
	th, err := c.api.DirectThread(ctx, userID)
	if err != nil {
		return nil, NormalizeError(err, "Unable to open chat.")
	}
	return th, nil
}

// GroupThread opens the thread of a group the user belongs to.
func (c *ChatService) GroupThread(ctx context.Context, groupID int64) (*models.ChatThread, error) {
	if groupID <= 0 {
		return nil, errorf("Invalid group id %d.", groupID)
	}
	th, err := c.api.GroupThread(ctx, groupID)
	if err != nil {
		return nil, NormalizeError(err, "Unable to open group chat.")
	}
	return th, nil
}

func (c *ChatService) Messages(ctx context.Context, threadID int64) ([]models.ChatMessage, error) {
	msgs, err := c.api.ThreadMessages(ctx, threadID)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load messages.")
	}
	return msgs, nil
}

func (c *ChatService) Send(ctx context.Context, threadID int64, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errorf("Message cannot be empty.")
	}
	msg, err := c.api.SendMessage(ctx, threadID, text)
	if err != nil {
		return nil, NormalizeError(err, "Unable to send message.")
	}
	return msg, nil
}

// Poll fetches the thread right away and then on every tick, handing each
// successful result to onMessages, until ctx is done. Fetch errors are
// logged and polling goes on.
func (c *ChatService) Poll(ctx context.Context, threadID int64, interval time.Duration, onMessages func([]models.ChatMessage)) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	fetch := func() {
		msgs, err := c.api.ThreadMessages(ctx, threadID)
		if err != nil {
			if ctx.Err() == nil {
				c.log.Warn(ctx, "poll failed", "thread_id", threadID, "error", err)
			}
			return
		}
		onMessages(msgs)
	}

	fetch()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fetch()
		case <-ctx.Done():
			return
		}
	}
}
