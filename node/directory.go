package node

import (
	"fmt"
	"strings"
	"sync"

	"dinger/contract"
	"dinger/errors"
)

// Dialer opens a node client for a peer address.
type Dialer func(address string) (contract.Node, error)

// Directory resolves a DID to the nodes hosting it. Tenants hosted by this
// process resolve to their local node; peers come from static configuration
// and are dialled on first use.
type Directory struct {
	mu      sync.RWMutex
	local   map[string]contract.Node // tenant -> hosting node
	peers   map[string][]string      // did -> addresses
	clients map[string]contract.Node // address -> dialled client
	dial    Dialer
}

func NewDirectory(peers map[string][]string, dial Dialer) *Directory {
	if peers == nil {
		peers = make(map[string][]string)
	}
	return &Directory{
		local:   make(map[string]contract.Node),
		peers:   peers,
		clients: make(map[string]contract.Node),
		dial:    dial,
	}
}

// ParsePeers reads a "did=addr[|addr...],did=addr" directory.
func ParsePeers(raw string) (map[string][]string, error) {
	peers := make(map[string][]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		// DIDs contain ':' so the separator is the last '='
		idx := strings.LastIndex(entry, "=")
		if idx <= 0 || idx == len(entry)-1 {
			return nil, fmt.Errorf("invalid peer entry %q, expected did=address", entry)
		}
		did := entry[:idx]
		for _, address := range strings.Split(entry[idx+1:], "|") {
			if address = strings.TrimSpace(address); address != "" {
				peers[did] = append(peers[did], address)
			}
		}
	}
	return peers, nil
}

func (d *Directory) Register(tenant string, node contract.Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.local[tenant] = node
}

// Hosts reports whether tenant is registered on node.
func (d *Directory) Hosts(tenant string, node contract.Node) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	hosting, ok := d.local[tenant]
	return ok && hosting == node
}

// Resolve returns every node the DID's records should be delivered to.
func (d *Directory) Resolve(did string) ([]contract.Node, error) {
	d.mu.RLock()
	if hosting, ok := d.local[did]; ok {
		d.mu.RUnlock()
		return []contract.Node{hosting}, nil
	}
	addresses := d.peers[did]
	d.mu.RUnlock()

	if len(addresses) == 0 || d.dial == nil {
		return nil, fmt.Errorf("%w: no node known for %s", errors.ErrRecipientUnreachable, did)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	var nodes []contract.Node
	for _, address := range addresses {
		client, ok := d.clients[address]
		if !ok {
			var err error
			if client, err = d.dial(address); err != nil {
				return nil, fmt.Errorf("%w: dial %s: %v", errors.ErrRecipientUnreachable, address, err)
			}
			d.clients[address] = client
		}
		nodes = append(nodes, client)
	}
	return nodes, nil
}
