// Package node implements a small decentralized web node: it stores
// protocol records for the tenants it hosts, enforces the installed
// protocol, and delivers records to the nodes of their recipients.
package node

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"dinger/contract"
	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/repositories"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type LocalNode struct {
	log       *slog.Logger
	records   repositories.IRecordRepository
	protocols repositories.IProtocolRepository
	directory *Directory
	now       func() time.Time
}

func NewLocalNode(log *slog.Logger, records repositories.IRecordRepository,
	protocols repositories.IProtocolRepository, directory *Directory) *LocalNode {
	return &LocalNode{
		log:       log,
		records:   records,
		protocols: protocols,
		directory: directory,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Host registers a tenant on this node and in the directory.
func (n *LocalNode) Host(tenant string) {
	n.directory.Register(tenant, n)
}

func (n *LocalNode) QueryProtocols(_ context.Context, tenant, uri string) ([]protocol.Definition, record.Status, error) {
	if err := n.checkHosted(tenant); err != nil {
		return nil, statusOf(err), err
	}
	definitions, err := n.protocols.FindProtocols(tenant, uri)
	if err != nil {
		return nil, statusOf(err), err
	}
	return definitions, record.OK(), nil
}

func (n *LocalNode) ConfigureProtocol(_ context.Context, tenant string, definition protocol.Definition) (record.Status, error) {
	if err := n.checkHosted(tenant); err != nil {
		return statusOf(err), err
	}
	if err := definition.Validate(); err != nil {
		return statusOf(err), err
	}
	if err := n.protocols.StoreProtocol(tenant, definition); err != nil {
		return statusOf(err), err
	}
	n.log.Info("Protocol configured", "tenant", tenant, "protocol", definition.Protocol)
	return record.Accepted(), nil
}

// WriteRecord stores a record in the tenant's node after checking it
// against the tenant's installed protocol.
func (n *LocalNode) WriteRecord(_ context.Context, request record.WriteRequest) (record.Record, record.Status, error) {
	if err := n.checkHosted(request.Tenant); err != nil {
		return record.Record{}, statusOf(err), err
	}
	if request.DataFormat == "" {
		request.DataFormat = protocol.JSONFormat
	}
	definition, err := n.installed(request.Tenant, request.Protocol)
	if err != nil {
		return record.Record{}, statusOf(err), err
	}
	if err = checkWrite(definition, request); err != nil {
		return record.Record{}, statusOf(err), err
	}

	rec := record.Record{
		ID:           uuid.New(),
		Tenant:       request.Tenant,
		Author:       request.Author,
		Recipient:    request.Recipient,
		Protocol:     request.Protocol,
		ProtocolPath: request.ProtocolPath,
		Schema:       request.Schema,
		DataFormat:   request.DataFormat,
		DateCreated:  n.now(),
		Data:         request.Data,
	}
	if err = n.records.StoreRecord(rec); err != nil {
		return record.Record{}, statusOf(err), err
	}
	n.log.Debug("Record written", "tenant", rec.Tenant, "id", rec.ID, "author", rec.Author)
	return rec, record.Accepted(), nil
}

// QueryRecords returns the tenant's records. The tenant sees everything;
// any other requester only sees records the protocol lets it read.
func (n *LocalNode) QueryRecords(_ context.Context, query record.Query) ([]record.Record, record.Status, error) {
	if err := n.checkHosted(query.Tenant); err != nil {
		return nil, statusOf(err), err
	}
	records, err := n.records.QueryRecords(query)
	if err != nil {
		return nil, statusOf(err), err
	}
	if query.Requester == "" || query.Requester == query.Tenant {
		return records, record.OK(), nil
	}

	definitions := map[string]*protocol.Definition{}
	readable := lo.Filter(records, func(rec record.Record, _ int) bool {
		definition, ok := definitions[rec.Protocol]
		if !ok {
			if found, err := n.installed(rec.Tenant, rec.Protocol); err == nil {
				definition = &found
			}
			definitions[rec.Protocol] = definition
		}
		if definition == nil {
			return false
		}
		return definition.Allows(rec.ProtocolPath, protocol.CanRead, roles(rec, query.Requester)...)
	})
	return readable, record.OK(), nil
}

// SendRecord delivers a stored record to every node hosting target.
func (n *LocalNode) SendRecord(ctx context.Context, tenant string, recordID uuid.UUID, target string) (record.Status, error) {
	if err := n.checkHosted(tenant); err != nil {
		return statusOf(err), err
	}
	rec, err := n.records.GetRecord(tenant, recordID)
	if err != nil {
		return statusOf(err), err
	}
	if target == tenant {
		// Already stored in the target's own node
		return record.Accepted(), nil
	}
	nodes, err := n.directory.Resolve(target)
	if err != nil {
		return statusOf(err), err
	}

	request := record.WriteRequest{
		Tenant:       target,
		Author:       rec.Author,
		Recipient:    rec.Recipient,
		Protocol:     rec.Protocol,
		ProtocolPath: rec.ProtocolPath,
		Schema:       rec.Schema,
		DataFormat:   rec.DataFormat,
		Data:         rec.Data,
	}
	var failures []error
	for _, peer := range nodes {
		if _, _, err = peer.WriteRecord(ctx, request); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == len(nodes) {
		err = fmt.Errorf("%w: %s: %v", errors.ErrRecipientUnreachable, target, stderrors.Join(failures...))
		return statusOf(err), err
	}
	if len(failures) > 0 {
		n.log.Warn("Record not delivered to every node", "target", target, "failed", len(failures), "nodes", len(nodes))
	}
	return record.Accepted(), nil
}

func (n *LocalNode) checkHosted(tenant string) error {
	if !n.directory.Hosts(tenant, n) {
		return fmt.Errorf("%w: %s", errors.ErrTenantNotHosted, tenant)
	}
	return nil
}

func (n *LocalNode) installed(tenant, uri string) (protocol.Definition, error) {
	definitions, err := n.protocols.FindProtocols(tenant, uri)
	if err != nil {
		return protocol.Definition{}, err
	}
	if len(definitions) == 0 {
		return protocol.Definition{}, fmt.Errorf("%w: %s for %s", errors.ErrProtocolNotInstalled, uri, tenant)
	}
	return definitions[0], nil
}

func checkWrite(definition protocol.Definition, request record.WriteRequest) error {
	typ, err := definition.Type(request.ProtocolPath)
	if err != nil {
		return err
	}
	if request.Schema != typ.Schema {
		return fmt.Errorf("%w: got %q want %q", errors.ErrSchemaMismatch, request.Schema, typ.Schema)
	}
	if !typ.AcceptsFormat(request.DataFormat) {
		return fmt.Errorf("%w: %s not accepted", errors.ErrDataFormatMismatch, request.DataFormat)
	}
	if detected := mimetype.Detect(request.Data); !detected.Is(request.DataFormat) {
		return fmt.Errorf("%w: payload looks like %s", errors.ErrDataFormatMismatch, detected.String())
	}
	if !definition.Allows(request.ProtocolPath, protocol.CanWrite, roles(record.Record{
		Author: request.Author, Recipient: request.Recipient,
	}, request.Author)...) {
		return errors.ErrUnauthorized
	}
	return nil
}

// roles lists the protocol roles actor holds on rec.
func roles(rec record.Record, actor string) []string {
	var held []string
	if rec.Author == actor {
		held = append(held, protocol.WhoAuthor)
	}
	if rec.Recipient == actor {
		held = append(held, protocol.WhoRecipient)
	}
	return held
}

func statusOf(err error) record.Status {
	code := record.StatusError
	switch {
	case stderrors.Is(err, errors.ErrTenantNotHosted),
		stderrors.Is(err, errors.ErrRecordNotFound):
		code = record.StatusNotFound
	case stderrors.Is(err, errors.ErrUnauthorized):
		code = record.StatusUnauthorized
	case stderrors.Is(err, errors.ErrInvalidProtocol),
		stderrors.Is(err, errors.ErrProtocolNotInstalled),
		stderrors.Is(err, errors.ErrUnknownProtocolPath),
		stderrors.Is(err, errors.ErrSchemaMismatch),
		stderrors.Is(err, errors.ErrDataFormatMismatch):
		code = record.StatusBadRequest
	}
	return record.Status{Code: code, Detail: err.Error()}
}

var _ contract.Node = (*LocalNode)(nil)
