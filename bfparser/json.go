package bfparser

import (
	"errors"
	"encoding/json"
	"fmt"
)

// MarshalText encodes the kind by name, which also makes Kind usable as a
// JSON object key.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown instruction kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown instruction kind %q", text)
}

type instructionJSON struct {
	Kind *Kind         `json:"kind"`
	Body []Instruction `json:"body,omitempty"`
}

// MarshalJSON encodes an instruction as {"kind": ..., "body": [...]}. body is
// omitted for leaves and for empty loops.
func (in Instruction) MarshalJSON() ([]byte, error) {
	kind := in.Kind
	return json.Marshal(instructionJSON{Kind: &kind, Body: in.Body})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (in *Instruction) UnmarshalJSON(data []byte) error {
	var raw instructionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == nil {
		return errors.New("missing instruction kind")
	}
	if *raw.Kind != LoopKind && len(raw.Body) > 0 {
		return fmt.Errorf("instruction %s cannot have a body", *raw.Kind)
	}
	*in = Instruction{Kind: *raw.Kind, Body: raw.Body}
	return nil
}
