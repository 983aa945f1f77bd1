package notification

import "time"

type Response struct {
	ID         string `json:"id"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Created    string `json:"created"`
	IsRead     bool   `json:"isRead"`
}

func (n *Notification) ToResponse(now time.Time) Response {
	return Response{
		ID:         n.ID.String(),
		SenderName: n.SenderName,
		Message:    n.Message,
		Type:       string(n.Type),
		Created:    n.CreatedLabel(now),
		IsRead:     n.IsRead,
	}
}

func ToResponses(notifications []Notification, now time.Time) []Response {
	out := make([]Response, 0, len(notifications))
	for i := range notifications {
		out = append(out, notifications[i].ToResponse(now))
	}
	return out
}
