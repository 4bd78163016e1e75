package models

import "time"

// ChatThread is a direct or group conversation.
type ChatThread struct {
	ID         int64  `json:"id"`
	ThreadType string `json:"thread_type"`
	GroupID    *int64 `json:"group,omitempty"`
}

// ChatMessage is a single message in a thread.
type ChatMessage struct {
	ID          int64     `json:"id"`
	Thread      int64     `json:"thread"`
	SenderID    int64     `json:"sender"`
	SenderEmail string    `json:"sender_email"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
