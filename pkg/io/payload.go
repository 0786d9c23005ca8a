package io

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/matzehuels/deck/pkg/card"
)

const kindKey = "kind"

// payload encodes a card.Payload as an object tagged with its kind.
type payload struct {
	card.Payload
}

func (p payload) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}
	switch v := p.Payload.(type) {
	case *card.OpaquePayload:
		maps.Copy(fields, v.Fields)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	}
	fields[kindKey] = p.CardType()
	return json.Marshal(fields)
}

func (p *payload) UnmarshalJSON(data []byte) error {
	var head struct {
		Kind card.Type `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Kind == "" {
		return fmt.Errorf("payload without %q", kindKey)
	}

	var v card.Payload
	switch head.Kind {
	case card.TypeChat:
		v = &card.ChatPayload{}
	case card.TypeTerminal:
		v = &card.TerminalPayload{}
	case card.TypeSubagent:
		v = &card.AgentPayload{}
	case card.TypeProject:
		v = &card.ProjectPayload{}
	case card.TypeImageStudio, card.TypeVideoStudio, card.TypeAudioStudio:
		v = &card.StudioPayload{Medium: head.Kind}
	default:
		fields := map[string]any{}
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		delete(fields, kindKey)
		p.Payload = &card.OpaquePayload{Kind: head.Kind, Fields: fields}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s payload: %w", head.Kind, err)
	}
	p.Payload = v
	return nil
}
