package calls

import "github.com/danmuck/callsdk/internal/model"

// AnswerParams answers an incoming call.
type AnswerParams struct {
	rec model.Record
}

func NewAnswerParams() AnswerParams {
	return AnswerParams{rec: AnswerParamsSchema.New()}
}

func (p AnswerParams) Record() model.Record { return AnswerParamsSchema.Ensure(p.rec) }

func (p AnswerParams) with(name string, v any) AnswerParams {
	return AnswerParams{rec: p.Record().With(name, v)}
}

func (p AnswerParams) ClientState() (string, bool) {
	return p.Record().GetString("clientState")
}

func (p AnswerParams) CustomHeaders() ([]CustomSIPHeader, bool) {
	return customHeaders(p.Record())
}

func (p AnswerParams) WithBillingGroupID(id string) AnswerParams {
	return p.with("billingGroupID", id)
}

func (p AnswerParams) WithClientState(state string) AnswerParams {
	return p.with("clientState", state)
}

func (p AnswerParams) WithCommandID(id string) AnswerParams { return p.with("commandID", id) }

func (p AnswerParams) WithNewCommandID() AnswerParams { return p.WithCommandID(NewCommandID()) }

func (p AnswerParams) WithCustomHeaders(headers ...CustomSIPHeader) AnswerParams {
	return p.with("customHeaders", headers)
}

func (p AnswerParams) WithStream(url string, track StreamTrack) AnswerParams {
	return p.with("streamURL", url).with("streamTrack", string(track))
}

func (p AnswerParams) WithWebhook(url string, method WebhookURLMethod) AnswerParams {
	return p.with("webhookURL", url).with("webhookURLMethod", string(method))
}

func (p AnswerParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p AnswerParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

// HangupParams ends a call.
type HangupParams struct {
	rec model.Record
}

func NewHangupParams() HangupParams {
	return HangupParams{rec: HangupParamsSchema.New()}
}

func (p HangupParams) Record() model.Record { return HangupParamsSchema.Ensure(p.rec) }

func (p HangupParams) WithClientState(state string) HangupParams {
	return HangupParams{rec: p.Record().With("clientState", state)}
}

func (p HangupParams) WithCommandID(id string) HangupParams {
	return HangupParams{rec: p.Record().With("commandID", id)}
}

func (p HangupParams) WithNewCommandID() HangupParams { return p.WithCommandID(NewCommandID()) }

func (p HangupParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p HangupParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

// TransferParams transfers a call to a new destination.
type TransferParams struct {
	rec model.Record
}

func NewTransferParams(to string) TransferParams {
	return TransferParams{rec: TransferParamsSchema.New().With("to", to)}
}

func DecodeTransferParams(payload map[string]any, opts ...model.Option) (TransferParams, error) {
	rec, err := model.Decode(TransferParamsSchema, payload, opts...)
	if err != nil {
		return TransferParams{}, err
	}
	return TransferParams{rec: rec}, nil
}

func (p TransferParams) Record() model.Record { return TransferParamsSchema.Ensure(p.rec) }

func (p TransferParams) with(name string, v any) TransferParams {
	return TransferParams{rec: p.Record().With(name, v)}
}

func (p TransferParams) To() string {
	s, _ := p.Record().GetString("to")
	return s
}

func (p TransferParams) TimeoutSecs() (int64, bool) {
	return p.Record().GetInt("timeoutSecs")
}

func (p TransferParams) WithFrom(from, displayName string) TransferParams {
	p = p.with("from", from)
	if displayName != "" {
		p = p.with("fromDisplayName", displayName)
	}
	return p
}

func (p TransferParams) WithAudioURL(url string) TransferParams { return p.with("audioURL", url) }

func (p TransferParams) WithClientState(state string) TransferParams {
	return p.with("clientState", state)
}

func (p TransferParams) WithCommandID(id string) TransferParams {
	return p.with("commandID", id)
}

func (p TransferParams) WithCustomHeaders(headers ...CustomSIPHeader) TransferParams {
	return p.with("customHeaders", headers)
}

func (p TransferParams) WithTargetLegClientState(state string) TransferParams {
	return p.with("targetLegClientState", state)
}

func (p TransferParams) WithTimeoutSecs(secs int) TransferParams {
	return p.with("timeoutSecs", secs)
}

func (p TransferParams) WithWebhook(url string, method WebhookURLMethod) TransferParams {
	return p.with("webhookURL", url).with("webhookURLMethod", string(method))
}

func (p TransferParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p TransferParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }
