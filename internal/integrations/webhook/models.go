package webhook

import "time"

// OwnerNotification тело запроса к получателю уведомлений
type OwnerNotification struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}
