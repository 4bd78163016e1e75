package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/udharoguru/internal/client/client"
	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// Chat opens the direct thread with a user and stays in it until "/back",
// end of input or the end of the session. New messages are polled in the
// background.
func (a *App) Chat(ctx context.Context, args []string) error {
	userID, ok := idArg(args)
	if !ok {
		a.println("Usage: chat <user_id>")
		return nil
	}

	thread, err := a.chat.DirectThread(ctx, userID)
	if err != nil {
		return a.report(err)
	}
	return a.converse(ctx, thread, fmt.Sprintf("with user %d", userID))
}

// GroupChat opens a group's thread the same way.
func (a *App) GroupChat(ctx context.Context, args []string) error {
	groupID, ok := idArg(args)
	if !ok {
		a.println("Usage: group-chat <group_id>")
		return nil
	}

	thread, err := a.chat.GroupThread(ctx, groupID)
	if err != nil {
		return a.report(err)
	}
	return a.converse(ctx, thread, fmt.Sprintf("in group %d", groupID))
}

// converse polls thread in the background and sends every non-empty line
// until "/back", end of input or the end of the session.
func (a *App) converse(ctx context.Context, thread *models.ChatThread, who string) error {
	var (
		mu     sync.Mutex
		lastID int64
	)
	show := func(msgs []models.ChatMessage) {
		mu.Lock()
		defer mu.Unlock()
		for _, m := range msgs {
			if m.ID <= lastID {
				continue
			}
			lastID = m.ID
			a.printf("[%s] %s: %s\n", m.CreatedAt.Local().Format("Jan 02 15:04"), sender(m), m.Message)
		}
	}

	pollCtx, cancel := context.WithCancel(ctx)
	unsubscribe := a.session.OnChange(func(p *models.Profile) {
		if p == nil {
			cancel()
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.chat.Poll(pollCtx, thread.ID, a.pollInterval, show)
	}()
	defer func() {
		cancel()
		<-done
	}()

	a.printf("Chat %d %s. Type a message and press Enter; /back to leave.\n", thread.ID, who)

	for {
		line, rerr := a.reader.ReadString('\n')
		if pollCtx.Err() != nil {
			return nil
		}
		text := strings.TrimSpace(line)

		if text == "/back" {
			return nil
		}
		if text != "" {
			msg, err := a.chat.Send(ctx, thread.ID, text)
			switch {
			case client.IsSessionEnded(err):
				return nil
			case err != nil:
				a.report(err)
			default:
				show([]models.ChatMessage{*msg})
			}
		}

		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return nil
			}
			return rerr
		}
	}
}

func sender(m models.ChatMessage) string {
	if m.SenderEmail != "" {
		return m.SenderEmail
	}
	return "user " + strconv.FormatInt(m.SenderID, 10)
}
