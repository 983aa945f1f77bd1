package interaction

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// InteractionResponse is a ledger entry as the admin portal renders it:
// raw timestamp for clients plus the derived display label.
type InteractionResponse struct {
	ID         kernel.InteractionID `json:"id"`
	Type       Type                 `json:"type"`
	FromID     kernel.ProfileID     `json:"from_id"`
	FromName   string               `json:"from_name"`
	ToID       kernel.ProfileID     `json:"to_id,omitempty"`
	ToName     string               `json:"to_name,omitempty"`
	ItemName   string               `json:"item_name"`
	OccurredAt time.Time            `json:"occurred_at"`
	Occurred   string               `json:"occurred"`
}

// ToResponses converts ledger entries preserving their order.
func ToResponses(entries []Interaction) []InteractionResponse {
	now := time.Now()
	responses := make([]InteractionResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		responses = append(responses, InteractionResponse{
			ID:         e.ID,
			Type:       e.Type,
			FromID:     e.FromID,
			FromName:   e.FromName,
			ToID:       e.ToID,
			ToName:     e.ToName,
			ItemName:   e.ItemName,
			OccurredAt: e.OccurredAt,
			Occurred:   e.OccurredLabel(now),
		})
	}
	return responses
}
