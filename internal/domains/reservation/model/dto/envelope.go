package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"pmsbridge/internal/domains/reservation/model"
)

var ErrInvalidPayload = errors.New("webhook body is not a JSON object")

// IdentifierRule locates a confirmation number at Key, optionally inside the Wrapper object.
type IdentifierRule struct {
	Wrapper string
	Key     string
}

// IdentifierRules are evaluated in order; the first non-empty match wins.
var IdentifierRules = []IdentifierRule{
	{Key: "confirmationId"},
	{Key: "confirmationNumber"},
	{Wrapper: "content", Key: "confirmationId"},
	{Wrapper: "content", Key: "confirmationNumber"},
	{Wrapper: "payload", Key: "confirmationId"},
	{Wrapper: "payload", Key: "confirmationNumber"},
}

// envelopeScopes are searched for eventType, keyStatus and previous.
var envelopeScopes = []string{"", "content", "payload"}

// Envelope is a decoded webhook body.
type Envelope struct {
	Raw   map[string]any
	Event model.Event
	// Wrapper is the object the identifier was found in ("" for the root).
	Wrapper string
}

type previousBlock struct {
	Status        string `json:"status"`
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
	RoomType      string `json:"roomType"`
}

func ParseEnvelope(body []byte) (Envelope, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil || raw == nil {
		return Envelope{}, ErrInvalidPayload
	}

	envelope := Envelope{Raw: raw}

	rawType := lookupText(raw, "eventType")
	envelope.Event = model.Event{
		Type:      model.ParseEventType(rawType),
		RawType:   rawType,
		KeyStatus: lookupText(raw, "keyStatus"),
		Previous:  lookupPrevious(raw),
	}

	if id, wrapper, ok := Resolve(raw, IdentifierRules); ok {
		envelope.Event.Identifier = id
		envelope.Wrapper = wrapper
	}

	return envelope, nil
}

// Resolve applies rules to payload and returns the identifier and the wrapper it was found in.
func Resolve(payload map[string]any, rules []IdentifierRule) (id, wrapper string, ok bool) {
	for _, rule := range rules {
		scope := scopeOf(payload, rule.Wrapper)
		if scope == nil {
			continue
		}

		if value := textOf(scope[rule.Key]); value != "" {
			return value, rule.Wrapper, true
		}
	}

	return "", "", false
}

// InlineRecord is the reservation embedded in the envelope, used when detail fetch is off.
func (e Envelope) InlineRecord() (AgilysysReservation, error) {
	scope := scopeOf(e.Raw, e.Wrapper)
	if scope == nil {
		scope = e.Raw
	}

	encoded, err := json.Marshal(scope)
	if err != nil {
		return AgilysysReservation{}, fmt.Errorf("failed to encode inline record: %w", err)
	}

	return ParseAgilysysReservation(encoded)
}

func scopeOf(payload map[string]any, wrapper string) map[string]any {
	if wrapper == "" {
		return payload
	}

	nested, _ := payload[wrapper].(map[string]any)

	return nested
}

func lookupText(payload map[string]any, key string) string {
	for _, wrapper := range envelopeScopes {
		if scope := scopeOf(payload, wrapper); scope != nil {
			if value := textOf(scope[key]); value != "" {
				return value
			}
		}
	}

	return ""
}

func lookupPrevious(payload map[string]any) *model.Previous {
	for _, wrapper := range envelopeScopes {
		scope := scopeOf(payload, wrapper)
		if scope == nil {
			continue
		}

		block, ok := scope["previous"].(map[string]any)
		if !ok {
			continue
		}

		encoded, err := json.Marshal(block)
		if err != nil {
			continue
		}

		var previous previousBlock
		if err = json.Unmarshal(encoded, &previous); err != nil {
			continue
		}

		p := &model.Previous{
			Status:        previous.Status,
			ArrivalDate:   previous.ArrivalDate,
			DepartureDate: previous.DepartureDate,
			RoomType:      previous.RoomType,
		}
		if !p.Empty() {
			return p
		}
	}

	return nil
}
