package projection

import (
	"slices"
	"time"

	"dinger/domain/ding"

	"github.com/samber/lo"
)

// EmptyNoteMessage is the inline error shown when an empty note is submitted.
const EmptyNoteMessage = "Please type a message before sending."

// State is the view state of a Dinger client. It is a value: Reduce never
// modifies the state it receives, it returns a new one.
type State struct {
	LocalDID        string
	Loading         bool
	Received        []ding.Ding
	Sent            []ding.Ding
	Sorted          []ding.Ding
	Groups          map[string][]ding.Ding
	Started         []string
	ActiveRecipient string
	ErrorMessage    string
	FetchedAt       time.Time
}

func NewState() State {
	return State{Loading: true, Groups: map[string][]ding.Ding{}}
}

type Event interface {
	isEvent()
}

type Connected struct{ DID string }

type Ready struct{}

type Fetched struct {
	Received []ding.Ding
	Sent     []ding.Ding
	At       time.Time
}

type RecipientSelected struct{ DID string }

type ConversationStarted struct{ DID string }

type SubmitRejected struct{ Message string }

type SubmitAccepted struct{}

func (Connected) isEvent()           {}
func (Ready) isEvent()               {}
func (Fetched) isEvent()             {}
func (RecipientSelected) isEvent()   {}
func (ConversationStarted) isEvent() {}
func (SubmitRejected) isEvent()      {}
func (SubmitAccepted) isEvent()      {}

// Reduce applies an event to a state and returns the resulting state.
func Reduce(s State, e Event) State {
	switch evt := e.(type) {
	case Connected:
		s.LocalDID = evt.DID
		return s.regroup()
	case Ready:
		s.Loading = false
	case Fetched:
		s.Received = slices.Clone(evt.Received)
		s.Sent = slices.Clone(evt.Sent)
		s.FetchedAt = evt.At
		return s.regroup()
	case RecipientSelected:
		s.ActiveRecipient = evt.DID
		s.ErrorMessage = ""
	case ConversationStarted:
		s.ActiveRecipient = evt.DID
		s.ErrorMessage = ""
		if evt.DID != "" && !lo.Contains(s.Started, evt.DID) {
			s.Started = append(slices.Clone(s.Started), evt.DID)
		}
		return s.regroup()
	case SubmitRejected:
		s.ErrorMessage = evt.Message
	case SubmitAccepted:
		s.ErrorMessage = ""
	}
	return s
}

// regroup recomputes the derived views. Conversations started without any
// ding yet keep an empty bucket.
func (s State) regroup() State {
	s.Sorted = SortByTimestamp(Merge(s.Received, s.Sent))
	s.Groups = GroupByPartner(s.Sorted, s.LocalDID)
	for _, did := range s.Started {
		if _, ok := s.Groups[did]; !ok {
			s.Groups[did] = []ding.Ding{}
		}
	}
	return s
}

// Conversation returns the dings exchanged with partner in chronological order.
func (s State) Conversation(partner string) []ding.Ding {
	return s.Groups[partner]
}

// Partners lists conversation partners by first appearance in the sorted
// timeline, followed by started conversations that have no ding yet.
func (s State) Partners() []string {
	partners := lo.Uniq(lo.Map(s.Sorted, func(d ding.Ding, _ int) string {
		return Partner(d, s.LocalDID)
	}))
	for _, did := range s.Started {
		if !lo.Contains(partners, did) {
			partners = append(partners, did)
		}
	}
	return partners
}

// Active returns the conversation with the active recipient.
func (s State) Active() []ding.Ding {
	if s.ActiveRecipient == "" {
		return nil
	}
	return s.Conversation(s.ActiveRecipient)
}
