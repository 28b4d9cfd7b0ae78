package sink

import (
	"time"

	"dinger/domain/ding"
	"dinger/projection"
)

// Snapshot is the JSON view of the state pushed to web clients.
type Snapshot struct {
	LocalDID        string         `json:"localDid"`
	Loading         bool           `json:"loading"`
	ActiveRecipient string         `json:"activeRecipient,omitempty"`
	ErrorMessage    string         `json:"errorMessage,omitempty"`
	Conversations   []Conversation `json:"conversations"`
	FetchedAt       time.Time      `json:"fetchedAt,omitzero"`
}

type Conversation struct {
	Partner string      `json:"partner"`
	Dings   []ding.Ding `json:"dings"`
}

func NewSnapshot(state projection.State) Snapshot {
	snapshot := Snapshot{
		LocalDID:        state.LocalDID,
		Loading:         state.Loading,
		ActiveRecipient: state.ActiveRecipient,
		ErrorMessage:    state.ErrorMessage,
		Conversations:   []Conversation{},
		FetchedAt:       state.FetchedAt,
	}
	for _, partner := range state.Partners() {
		dings := state.Conversation(partner)
		if dings == nil {
			dings = []ding.Ding{}
		}
		snapshot.Conversations = append(snapshot.Conversations, Conversation{Partner: partner, Dings: dings})
	}
	return snapshot
}
