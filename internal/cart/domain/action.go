package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindAdd      Kind = "ADD"
	KindRemove   Kind = "REMOVE"
	KindQuantity Kind = "QUANTITY"
	KindSubmit   Kind = "SUBMIT"
)

// Action is one of Add, Remove, SetQuantity or Submit.
type Action interface {
	Kind() Kind
	isAction()
}

type Add struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

type Remove struct {
	SKU string
}

type SetQuantity struct {
	SKU      string
	Quantity int
}

type Submit struct{}

func (Add) Kind() Kind         { return KindAdd }
func (Remove) Kind() Kind      { return KindRemove }
func (SetQuantity) Kind() Kind { return KindQuantity }
func (Submit) Kind() Kind      { return KindSubmit }

func (Add) isAction()         {}
func (Remove) isAction()      {}
func (SetQuantity) isAction() {}
func (Submit) isAction()      {}

// KindOf is a.Kind() for the four known variants and "" for anything else,
// including nil.
func KindOf(a Action) Kind {
	switch a.(type) {
	case Add, Remove, SetQuantity, Submit:
		return a.Kind()
	default:
		return ""
	}
}

// SKUOf returns the sku an action targets, or "" when it targets none.
func SKUOf(a Action) string {
	switch act := a.(type) {
	case Add:
		return act.SKU
	case Remove:
		return act.SKU
	case SetQuantity:
		return act.SKU
	default:
		return ""
	}
}

// Envelope is the tagged form of an action with an optional payload, as it
// arrives over the wire.
type Envelope struct {
	Type    string    `json:"type"`
	Payload *LineItem `json:"payload,omitempty"`
}

func (e Envelope) Action() (Action, error) {
	kind := Kind(strings.ToUpper(strings.TrimSpace(e.Type)))

	switch kind {
	case KindAdd, KindRemove, KindQuantity:
		if e.Payload == nil {
			return nil, fmt.Errorf("%w for %s action", ErrMissingPayload, kind)
		}
	}

	switch kind {
	case KindAdd:
		return Add{SKU: e.Payload.SKU, Name: e.Payload.Name, Price: e.Payload.Price}, nil
	case KindRemove:
		return Remove{SKU: e.Payload.SKU}, nil
	case KindQuantity:
		return SetQuantity{SKU: e.Payload.SKU, Quantity: e.Payload.Quantity}, nil
	case KindSubmit:
		return Submit{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedAction, e.Type)
	}
}

// EnvelopeOf is the inverse of Envelope.Action.
func EnvelopeOf(a Action) Envelope {
	switch act := a.(type) {
	case Add:
		return Envelope{Type: string(KindAdd), Payload: &LineItem{SKU: act.SKU, Name: act.Name, Price: act.Price}}
	case Remove:
		return Envelope{Type: string(KindRemove), Payload: &LineItem{SKU: act.SKU}}
	case SetQuantity:
		return Envelope{Type: string(KindQuantity), Payload: &LineItem{SKU: act.SKU, Quantity: act.Quantity}}
	case Submit:
		return Envelope{Type: string(KindSubmit)}
	default:
		return Envelope{}
	}
}
