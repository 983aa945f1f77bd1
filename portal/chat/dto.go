package chat

import "time"

type MessageResponse struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Sent       string `json:"sent"`
}

type ParticipantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type ThreadResponse struct {
	ID           string                `json:"id"`
	Participants []ParticipantResponse `json:"participants"`
	LastMessage  string                `json:"lastMessage"`
	Messages     []MessageResponse     `json:"messages"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type OpenThreadRequest struct {
	OtherID   string `json:"otherId" validate:"required"`
	OtherName string `json:"otherName"`
	OtherRole string `json:"otherRole"`
}

func (m *Message) ToResponse(now time.Time) MessageResponse {
	return MessageResponse{
		ID:         m.ID.String(),
		SenderID:   m.SenderID.String(),
		SenderName: m.SenderName,
		Text:       m.Text,
		Sent:       m.SentLabel(now),
	}
}

func (t *Thread) ToResponse(now time.Time) ThreadResponse {
	participants := make([]ParticipantResponse, 0, len(t.Participants))
	for _, p := range t.Participants {
		participants = append(participants, ParticipantResponse{
			ID:   p.ID.String(),
			Name: p.Name,
			Role: string(p.Role),
		})
	}

	messages := make([]MessageResponse, 0, len(t.Messages))
	for i := range t.Messages {
		messages = append(messages, t.Messages[i].ToResponse(now))
	}

	return ThreadResponse{
		ID:           t.ID.String(),
		Participants: participants,
		LastMessage:  t.LastMessage,
		Messages:     messages,
	}
}

func ToResponses(threads []Thread, now time.Time) []ThreadResponse {
	out := make([]ThreadResponse, 0, len(threads))
	for i := range threads {
		out = append(out, threads[i].ToResponse(now))
	}
	return out
}
