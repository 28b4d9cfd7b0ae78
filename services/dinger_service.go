//go:generate go run go.uber.org/mock/mockgen -source=dinger_service.go -destination=../mocks/mock_dinger_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dinger/contract"
	"dinger/domain/ding"
	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/moderation"
	"dinger/observability"
	"dinger/projection"
	"dinger/repositories"

	"github.com/samber/lo"
)

const (
	NoRecipientMessage = "Please select a recipient first."
	searchLimit        = 50
)

type IDingerService interface {
	Connect(ctx context.Context) (string, error)
	ConfigureProtocol(ctx context.Context) error
	Submit(ctx context.Context, note string) error
	Fetch(ctx context.Context) error
	SelectRecipient(did string)
	StartConversation(did string)
	Search(ctx context.Context, terms string) ([]ding.Ding, error)
	State() projection.State
}

// hoster is implemented by nodes able to host the local identity.
type hoster interface {
	Host(tenant string)
}

// DingerService drives a Dinger client against a node: it bootstraps the
// identity, installs the protocol, submits dings and folds fetched records
// into the view state.
type DingerService struct {
	log        *slog.Logger
	node       contract.Node
	identity   repositories.IIdentityRepository
	index      contract.NoteIndex
	moderator  *moderation.Moderator
	monitoring *observability.Monitoring
	now        func() time.Time

	// fetchMu serializes fetches from query to reduce
	fetchMu  sync.Mutex
	mu       sync.RWMutex
	state    projection.State
	byRecord map[string]ding.Ding
}

// NewDingerService builds the service. index and moderator are optional.
func NewDingerService(log *slog.Logger, node contract.Node, identity repositories.IIdentityRepository,
	index contract.NoteIndex, moderator *moderation.Moderator, monitoring *observability.Monitoring) *DingerService {
	return &DingerService{
		log:        log,
		node:       node,
		identity:   identity,
		index:      index,
		moderator:  moderator,
		monitoring: monitoring,
		now:        time.Now,
		state:      projection.NewState(),
		byRecord:   map[string]ding.Ding{},
	}
}

// Connect loads or creates the local identity, installs the protocol and
// runs the first fetch. It returns the local DID.
func (s *DingerService) Connect(ctx context.Context) (string, error) {
	did, created, err := s.identity.LoadOrCreate()
	if err != nil {
		return "", fmt.Errorf("identity: %w", err)
	}
	if h, ok := s.node.(hoster); ok {
		h.Host(did)
	}
	s.apply(projection.Connected{DID: did})
	s.log.Info("Connected", "did", did, "created", created)

	if err = s.ConfigureProtocol(ctx); err != nil {
		return did, err
	}
	if err = s.Fetch(ctx); err != nil {
		s.log.Warn("Initial fetch failed", "error", err)
	}
	s.apply(projection.Ready{})
	return did, nil
}

// ConfigureProtocol installs the Dinger protocol unless the node already
// reports it.
func (s *DingerService) ConfigureProtocol(ctx context.Context) error {
	did, err := s.localDID()
	if err != nil {
		return err
	}
	definitions, st, err := s.node.QueryProtocols(ctx, did, protocol.DingerURI)
	if err != nil {
		s.log.Debug("Protocol query failed", "status", st.Code, "error", err)
	}
	if err == nil && st.Code == record.StatusOK && len(definitions) > 0 {
		s.log.Debug("Protocol already installed", "protocol", protocol.DingerURI)
		return nil
	}

	st, err = s.node.ConfigureProtocol(ctx, did, protocol.Dinger())
	if err != nil {
		return fmt.Errorf("configure protocol: %w", err)
	}
	s.log.Info("Protocol installed", "protocol", protocol.DingerURI, "status", st.Code)
	return nil
}

// Submit sends a ding to the active recipient then refreshes the state.
func (s *DingerService) Submit(ctx context.Context, note string) error {
	did, err := s.localDID()
	if err != nil {
		return err
	}
	if strings.TrimSpace(note) == "" {
		s.apply(projection.SubmitRejected{Message: projection.EmptyNoteMessage})
		return errors.ErrEmptyNote
	}
	recipient := s.State().ActiveRecipient
	if recipient == "" {
		s.apply(projection.SubmitRejected{Message: NoRecipientMessage})
		return errors.ErrNoRecipient
	}

	if s.moderator != nil {
		var words []string
		if note, words = s.moderator.Censor(note); len(words) > 0 {
			s.log.Info("Outgoing note censored", "recipient", recipient, "words", len(words))
		}
	}
	d := ding.New(did, recipient, note, s.now())
	if err = d.Validate(); err != nil {
		return s.rejectSubmit(err)
	}
	data, err := ding.Encode(d)
	if err != nil {
		return s.rejectSubmit(err)
	}

	rec, st, err := s.node.WriteRecord(ctx, record.WriteRequest{
		Tenant:       did,
		Author:       did,
		Recipient:    recipient,
		Protocol:     protocol.DingerURI,
		ProtocolPath: protocol.DingPath,
		Schema:       protocol.DingSchema,
		DataFormat:   protocol.JSONFormat,
		Data:         data,
	})
	if err != nil {
		s.log.Error("Ding not written", "status", st.Code, "error", err)
		return s.rejectSubmit(err)
	}
	s.log.Debug("Ding written", "record", rec.ID, "data", rec.Text())

	st, sendErr := s.node.SendRecord(ctx, did, rec.ID, recipient)
	if sendErr != nil {
		s.log.Warn("Ding stored but not delivered", "recipient", recipient, "status", st.Code, "error", sendErr)
		s.monitoring.IncrSubmitFail()
	} else {
		s.monitoring.IncrSubmit()
	}
	s.apply(projection.SubmitAccepted{})

	if err = s.Fetch(ctx); err != nil {
		s.log.Warn("Fetch after submit failed", "error", err)
	}
	return sendErr
}

// Fetch queries every ding stored for the local identity and folds them
// into the state. On any failure the state is left untouched. Concurrent
// fetches run one after the other so an older result never replaces a
// newer one.
func (s *DingerService) Fetch(ctx context.Context) error {
	did, err := s.localDID()
	if err != nil {
		return err
	}
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	records, st, err := s.node.QueryRecords(ctx, record.Query{
		Tenant:       did,
		Requester:    did,
		Protocol:     protocol.DingerURI,
		ProtocolPath: protocol.DingPath,
		DateSort:     record.CreatedAscending,
	})
	if err == nil && st.Code != record.StatusOK {
		err = fmt.Errorf("query records: status %d %s", st.Code, st.Detail)
	}
	if err != nil {
		s.log.Error("Fetch failed", "error", err)
		s.monitoring.IncrPollError()
		return err
	}

	var received, sent []ding.Ding
	byRecord := make(map[string]ding.Ding, len(records))
	entries := make([]contract.IndexEntry, 0, len(records))
	for _, rec := range records {
		d, err := ding.FromRecord(rec)
		if err != nil {
			s.log.Error("Undecodable ding", "record", rec.ID, "error", err)
			s.monitoring.IncrPollError()
			return err
		}
		if d.Recipient == did {
			received = append(received, d)
		}
		if d.Sender == did {
			sent = append(sent, d)
		}
		id := rec.ID.String()
		byRecord[id] = d
		entries = append(entries, contract.IndexEntry{
			RecordID: id,
			Partner:  projection.Partner(d, did),
			Note:     d.Note,
		})
	}

	at := s.now()
	s.mu.Lock()
	s.state = projection.Reduce(s.state, projection.Fetched{Received: received, Sent: sent, At: at})
	s.byRecord = byRecord
	s.mu.Unlock()
	s.monitoring.IncrPoll(len(records), at)

	if s.index != nil {
		if err = s.index.Index(ctx, entries...); err != nil {
			s.log.Warn("Notes not indexed", "error", err)
		}
	}
	return nil
}

func (s *DingerService) SelectRecipient(did string) {
	s.apply(projection.RecipientSelected{DID: strings.TrimSpace(did)})
}

// StartConversation opens an empty conversation with did and makes it active.
func (s *DingerService) StartConversation(did string) {
	s.apply(projection.ConversationStarted{DID: strings.TrimSpace(did)})
}

// Search returns the fetched dings whose note matches terms, best match first.
func (s *DingerService) Search(ctx context.Context, terms string) ([]ding.Ding, error) {
	if s.index == nil || strings.TrimSpace(terms) == "" {
		return nil, nil
	}
	ids, err := s.index.Search(ctx, terms, searchLimit)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.FilterMap(ids, func(id string, _ int) (ding.Ding, bool) {
		d, ok := s.byRecord[id]
		return d, ok
	}), nil
}

func (s *DingerService) State() projection.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *DingerService) apply(e projection.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = projection.Reduce(s.state, e)
}

func (s *DingerService) localDID() (string, error) {
	if did := s.State().LocalDID; did != "" {
		return did, nil
	}
	return "", errors.ErrNotConnected
}

func (s *DingerService) rejectSubmit(err error) error {
	message := err.Error()
	if stderrors.Is(err, errors.ErrEmptyNote) {
		message = projection.EmptyNoteMessage
	}
	s.apply(projection.SubmitRejected{Message: message})
	s.monitoring.IncrSubmitFail()
	return err
}

var _ IDingerService = (*DingerService)(nil)
