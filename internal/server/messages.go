package server

import (
	"encoding/json"

	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// Envelope wraps every WebSocket message with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client -> server message types.
const (
	TypeInputsUpdate     = "inputs:update"
	TypeParametersUpdate = "parameters:update"
	TypeAssumptionsSet   = "assumptions:set"
	TypePresetSelect     = "preset:select"
	TypeSessionReset     = "session:reset"
)

// Server -> client message types.
const (
	TypeSessionReady = "session:ready"
	TypeResult       = "result"
	TypeError        = "error"
)

// InputsUpdatePayload replaces the session's sectoral inputs.
type InputsUpdatePayload struct {
	Inputs spec.SectorInputs `json:"inputs"`
}

// ParametersUpdatePayload replaces the session's parameters. Fields left out
// take their default values, not the session's previous ones.
type ParametersUpdatePayload struct {
	Parameters json.RawMessage `json:"parameters"`
}

// AssumptionsSetPayload switches the assumption set.
type AssumptionsSetPayload struct {
	Version string `json:"version"`
}

// PresetSelectPayload loads a preset's inputs into the session.
type PresetSelectPayload struct {
	Name string `json:"name"`
	// WithParameters also adopts the preset's parameters.
	WithParameters bool `json:"with_parameters"`
}

// SessionReadyPayload greets a new connection.
type SessionReadyPayload struct {
	SessionID   string   `json:"session_id"`
	Assumptions string   `json:"assumptions"`
	Versions    []string `json:"versions"`
}

// ResultPayload carries the outcome for one snapshot revision.
type ResultPayload struct {
	Revision uint64 `json:"revision"`
	outcome
}

// ErrorPayload reports a rejected message.
type ErrorPayload struct {
	Message  string `json:"message"`
	Revision uint64 `json:"revision"`
}

// NewEnvelope marshals payload under msgType.
func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
