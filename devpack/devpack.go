// Package devpack provides lightweight helpers to emit action payloads
// matching the Service Layer Devpack contract. This is a thin data model,
// not a client: the function runtime collects emitted actions from the
// function environment and later resolves their references into final
// values.
package devpack

import "github.com/google/uuid"

// Action type tags understood by the runtime.
const (
	ActionGasBankEnsure      = "gasbank.ensureAccount"
	ActionGasBankWithdraw    = "gasbank.withdraw"
	ActionGasBankBalance     = "gasbank.balance"
	ActionGasBankList        = "gasbank.listTransactions"
	ActionOracleCreate       = "oracle.createRequest"
	ActionPriceFeedSnapshot  = "pricefeed.recordSnapshot"
	ActionRandomGenerate     = "random.generate"
	ActionDataFeedSubmit     = "datafeeds.submitUpdate"
	ActionDataStreamPublish  = "datastreams.publishFrame"
	ActionDataLinkCreate     = "datalink.createDelivery"
	ActionTriggersRegister   = "triggers.register"
	ActionAutomationSchedule = "automation.schedule"
)

// DefaultRandomLength is the byte length filled into random.generate actions
// when the caller does not ask for a specific one.
const DefaultRandomLength = 32

// refMarker tags a parameter mapping as an unresolved action reference.
const refMarker = "__devpack_ref__"

// Params is a JSON-serializable parameter mapping.
type Params map[string]any

// Action is a named, parameterized request emitted by a function and
// resolved later by the runtime. Actions are value objects: constructors
// copy the caller's parameter map and comparison is structural.
type Action struct {
	ID     string `json:"id,omitempty"`
	Type   string `json:"type"`
	Params Params `json:"params,omitempty"`
}

func newAction(actionType string, params Params) Action {
	return Action{Type: actionType, Params: cloneParams(params)}
}

func cloneParams(p Params) Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}

	return c
}

// WithID returns a copy of the action carrying the given reference id.
func (a Action) WithID(id string) Action {
	a.ID = id
	return a
}

// WithFreshID returns a copy of the action carrying a new random reference
// id.
func (a Action) WithFreshID() Action {
	return a.WithID(uuid.NewString())
}

// AsResult renders the action as an opaque reference placeholder for
// embedding into a result payload: a mapping with the reference marker set,
// the action's id (empty when unset) and its type. A non-empty meta mapping
// is attached under the "meta" key, otherwise the key is absent.
func (a Action) AsResult(meta Params) Params {
	ref := Params{
		refMarker: true,
		"id":      a.ID,
		"type":    a.Type,
	}
	if len(meta) > 0 {
		ref["meta"] = meta
	}

	return ref
}

// EnsureGasAccount requests lazily creating the caller's gas bank account.
func EnsureGasAccount(params Params) Action {
	return newAction(ActionGasBankEnsure, params)
}

// WithdrawGas requests a gas bank withdrawal.
func WithdrawGas(params Params) Action {
	return newAction(ActionGasBankWithdraw, params)
}

// GasAccountBalance requests the gas bank account balance.
func GasAccountBalance(params Params) Action {
	return newAction(ActionGasBankBalance, params)
}

// ListGasTransactions requests the gas bank transaction history.
func ListGasTransactions(params Params) Action {
	return newAction(ActionGasBankList, params)
}

// CreateOracleRequest requests an oracle data fetch.
func CreateOracleRequest(params Params) Action {
	return newAction(ActionOracleCreate, params)
}

// RecordPriceSnapshot records a price feed snapshot.
func RecordPriceSnapshot(params Params) Action {
	return newAction(ActionPriceFeedSnapshot, params)
}

// GenerateRandom requests random bytes from the VRF service. The "length"
// parameter defaults to DefaultRandomLength when absent, a caller-supplied
// value is preserved as-is.
func GenerateRandom(params Params) Action {
	p := cloneParams(params)
	if v, ok := p["length"]; !ok || v == nil {
		p["length"] = DefaultRandomLength
	}

	return Action{Type: ActionRandomGenerate, Params: p}
}

// SubmitDataFeedUpdate pushes an update into a data feed.
func SubmitDataFeedUpdate(params Params) Action {
	return newAction(ActionDataFeedSubmit, params)
}

// PublishDataStreamFrame publishes a frame to a data stream.
func PublishDataStreamFrame(params Params) Action {
	return newAction(ActionDataStreamPublish, params)
}

// CreateDataLinkDelivery schedules a cross-chain data delivery.
func CreateDataLinkDelivery(params Params) Action {
	return newAction(ActionDataLinkCreate, params)
}

// RegisterTrigger registers an event trigger.
func RegisterTrigger(params Params) Action {
	return newAction(ActionTriggersRegister, params)
}

// ScheduleAutomation schedules an automation job.
func ScheduleAutomation(params Params) Action {
	return newAction(ActionAutomationSchedule, params)
}

// Success wraps data into the uniform response envelope.
func Success(data, meta any) Params {
	return Params{"success": true, "data": data, "meta": meta}
}

// Failure wraps an error value into the uniform response envelope.
func Failure(err, meta any) Params {
	return Params{"success": false, "error": err, "meta": meta}
}
