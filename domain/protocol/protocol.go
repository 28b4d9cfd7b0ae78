// Package protocol describes the permission document installed on a node.
// It declares record types, their schema and allowed data formats, and
// who may read or write records at each protocol path.
package protocol

import (
	"fmt"

	"dinger/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	DingerURI    = "https://blackgirlbytes.dev/dinger-chat-protocol"
	DingSchema   = "https://blackgirlbytes.dev/ding"
	DingPath     = "ding"
	JSONFormat   = "application/json"
	WhoAnyone    = "anyone"
	WhoAuthor    = "author"
	WhoRecipient = "recipient"
	CanRead      = "read"
	CanWrite     = "write"
)

var validate = validator.New()

type Definition struct {
	Protocol  string          `json:"protocol" validate:"required,url"`
	Published bool            `json:"published"`
	Types     map[string]Type `json:"types" validate:"required,min=1,dive"`
	Structure map[string]Rule `json:"structure" validate:"required,min=1,dive"`
}

type Type struct {
	Schema      string   `json:"schema" validate:"required,url"`
	DataFormats []string `json:"dataFormats" validate:"required,min=1"`
}

type Rule struct {
	Actions []Action `json:"$actions" validate:"dive"`
}

type Action struct {
	Who string `json:"who" validate:"required,oneof=anyone author recipient"`
	Can string `json:"can" validate:"required,oneof=read write"`
	Of  string `json:"of,omitempty"`
}

// Dinger returns the protocol used to exchange dings.
func Dinger() Definition {
	return Definition{
		Protocol:  DingerURI,
		Published: true,
		Types: map[string]Type{
			DingPath: {
				Schema:      DingSchema,
				DataFormats: []string{JSONFormat},
			},
		},
		Structure: map[string]Rule{
			DingPath: {
				Actions: []Action{
					{Who: WhoAnyone, Can: CanWrite},
					{Who: WhoAuthor, Of: DingPath, Can: CanRead},
					{Who: WhoRecipient, Of: DingPath, Can: CanRead},
				},
			},
		},
	}
}

// Validate checks field constraints and that the structure only refers to
// declared types.
func (d Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidProtocol, err)
	}
	for path, rule := range d.Structure {
		if _, ok := d.Types[path]; !ok {
			return fmt.Errorf("%w: structure path %q has no type", errors.ErrInvalidProtocol, path)
		}
		for _, action := range rule.Actions {
			if action.Of == "" {
				continue
			}
			if _, ok := d.Types[action.Of]; !ok {
				return fmt.Errorf("%w: action of %q has no type", errors.ErrInvalidProtocol, action.Of)
			}
		}
	}
	return nil
}

// Type returns the record type bound to a protocol path.
func (d Definition) Type(path string) (Type, error) {
	if _, ok := d.Structure[path]; !ok {
		return Type{}, fmt.Errorf("%w: %s", errors.ErrUnknownProtocolPath, path)
	}
	return d.Types[path], nil
}

// Allows reports whether one of the roles held by the actor is granted
// the action on the path. "anyone" matches every actor.
func (d Definition) Allows(path, can string, roles ...string) bool {
	rule, ok := d.Structure[path]
	if !ok {
		return false
	}
	return lo.SomeBy(rule.Actions, func(a Action) bool {
		if a.Can != can {
			return false
		}
		if a.Who == WhoAnyone {
			return true
		}
		return lo.Contains(roles, a.Who)
	})
}

// AcceptsFormat reports whether the type declares the data format.
func (t Type) AcceptsFormat(format string) bool {
	return lo.Contains(t.DataFormats, format)
}
