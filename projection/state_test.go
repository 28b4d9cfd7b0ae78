package projection

import (
	"testing"
	"time"

	"dinger/domain/ding"

	"github.com/stretchr/testify/require"
)

func TestReduce_FetchedRecomputesViews(t *testing.T) {
	req := require.New(t)
	received, sent := exampleDings()
	at := time.Now()

	s := Reduce(NewState(), Connected{DID: "A"})
	s = Reduce(s, Fetched{Received: received, Sent: sent, At: at})
	s = Reduce(s, Ready{})

	req.False(s.Loading)
	req.Equal("A", s.LocalDID)
	req.Equal(at, s.FetchedAt)
	req.Equal([]string{"yo", "hi"}, notes(s.Sorted))
	req.Equal([]string{"C", "B"}, s.Partners())
	req.Equal([]string{"hi"}, notes(s.Conversation("B")))
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	req := require.New(t)
	received, sent := exampleDings()
	before := Reduce(Reduce(NewState(), Connected{DID: "A"}), Fetched{Received: received, Sent: sent})

	after := Reduce(before, ConversationStarted{DID: "D"})
	after = Reduce(after, Fetched{Received: nil, Sent: sent})

	req.Len(before.Received, 1)
	req.Empty(before.Started)
	req.NotContains(before.Groups, "D")
	req.Equal("", before.ActiveRecipient)

	req.Empty(after.Received)
	req.Contains(after.Groups, "D")
	req.Equal("D", after.ActiveRecipient)
}

func TestReduce_StartedConversationKeepsEmptyBucket(t *testing.T) {
	req := require.New(t)
	s := Reduce(Reduce(NewState(), Connected{DID: "A"}), ConversationStarted{DID: "B"})
	req.Equal([]ding.Ding{}, s.Conversation("B"))
	req.Equal([]string{"B"}, s.Partners())

	s = Reduce(s, ConversationStarted{DID: "B"})
	req.Len(s.Started, 1)

	s = Reduce(s, Fetched{Received: []ding.Ding{{Sender: "B", Recipient: "A", Note: "hey"}}})
	req.Equal([]string{"hey"}, notes(s.Active()))
	req.Equal([]string{"B"}, s.Partners())
}

func TestReduce_SubmitErrorMessage(t *testing.T) {
	req := require.New(t)
	s := Reduce(NewState(), SubmitRejected{Message: EmptyNoteMessage})
	req.Equal(EmptyNoteMessage, s.ErrorMessage)

	s = Reduce(s, SubmitAccepted{})
	req.Empty(s.ErrorMessage)

	s = Reduce(s, SubmitRejected{Message: EmptyNoteMessage})
	s = Reduce(s, RecipientSelected{DID: "C"})
	req.Empty(s.ErrorMessage)
	req.Equal("C", s.ActiveRecipient)
	req.Nil(Reduce(NewState(), Ready{}).Active())
}
