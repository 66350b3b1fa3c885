package calls

import "github.com/danmuck/callsdk/internal/model"

// DialParams originates an outbound call from a connection.
type DialParams struct {
	rec model.Record
}

// NewDialParams dials to from the caller ID from. More than one destination
// rings them simultaneously and bridges the first to answer.
func NewDialParams(connectionID, from string, to ...string) DialParams {
	rec := DialParamsSchema.New().
		With("connectionID", connectionID).
		With("from", from)
	if len(to) > 0 {
		rec = rec.With("to", destinations(to))
	}
	return DialParams{rec: rec}
}

func DecodeDialParams(payload map[string]any, opts ...model.Option) (DialParams, error) {
	rec, err := model.Decode(DialParamsSchema, payload, opts...)
	if err != nil {
		return DialParams{}, err
	}
	return DialParams{rec: rec}, nil
}

func destinations(to []string) model.Variant {
	if len(to) == 1 {
		return model.Variant{Name: "single", Value: to[0]}
	}
	return model.Variant{Name: "many", Value: to}
}

func (p DialParams) Record() model.Record { return DialParamsSchema.Ensure(p.rec) }

func (p DialParams) ConnectionID() string {
	s, _ := p.Record().GetString("connectionID")
	return s
}

func (p DialParams) From() string {
	s, _ := p.Record().GetString("from")
	return s
}

// To returns the destinations whichever wire shape they arrived in.
func (p DialParams) To() []string {
	v, ok := p.Record().GetVariant("to")
	if !ok {
		return nil
	}
	switch x := v.Value.(type) {
	case string:
		return []string{x}
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (p DialParams) AnsweringMachineDetection() (AnsweringMachineDetection, bool) {
	s, ok := p.Record().GetString("answeringMachineDetection")
	return AnsweringMachineDetection(s), ok
}

func (p DialParams) AMDConfig() (AMDConfig, bool) {
	rec, ok := p.Record().GetRecord("answeringMachineDetectionConfig")
	return AMDConfig{rec: rec}, ok
}

func (p DialParams) CustomHeaders() ([]CustomSIPHeader, bool) {
	return customHeaders(p.Record())
}

func (p DialParams) MediaEncryption() (MediaEncryption, bool) {
	s, ok := p.Record().GetString("mediaEncryption")
	return MediaEncryption(s), ok
}

func (p DialParams) TimeoutSecs() (int64, bool) {
	return p.Record().GetInt("timeoutSecs")
}

func (p DialParams) WebhookURL() (string, bool) {
	return p.Record().GetString("webhookURL")
}

func (p DialParams) CommandID() (string, bool) {
	return p.Record().GetString("commandID")
}

func (p DialParams) with(name string, v any) DialParams {
	return DialParams{rec: p.Record().With(name, v)}
}

func (p DialParams) WithTo(to ...string) DialParams { return p.with("to", destinations(to)) }

func (p DialParams) WithFromDisplayName(name string) DialParams {
	return p.with("fromDisplayName", name)
}

func (p DialParams) WithAnsweringMachineDetection(mode AnsweringMachineDetection) DialParams {
	return p.with("answeringMachineDetection", string(mode))
}

func (p DialParams) WithAMDConfig(cfg AMDConfig) DialParams {
	return p.with("answeringMachineDetectionConfig", cfg)
}

func (p DialParams) WithAudioURL(url string) DialParams { return p.with("audioURL", url) }

func (p DialParams) WithBillingGroupID(id string) DialParams {
	return p.with("billingGroupID", id)
}

func (p DialParams) WithClientState(state string) DialParams {
	return p.with("clientState", state)
}

func (p DialParams) WithCommandID(id string) DialParams { return p.with("commandID", id) }

func (p DialParams) WithNewCommandID() DialParams { return p.WithCommandID(NewCommandID()) }

func (p DialParams) WithCustomHeaders(headers ...CustomSIPHeader) DialParams {
	return p.with("customHeaders", headers)
}

// WithLinkTo shares the call session of an existing call leg.
func (p DialParams) WithLinkTo(callControlID string) DialParams {
	return p.with("linkTo", callControlID)
}

func (p DialParams) WithMediaEncryption(enc MediaEncryption) DialParams {
	return p.with("mediaEncryption", string(enc))
}

func (p DialParams) WithSIPAuth(username, password string) DialParams {
	return p.with("sipAuthUsername", username).with("sipAuthPassword", password)
}

func (p DialParams) WithSIPTransportProtocol(proto SIPTransportProtocol) DialParams {
	return p.with("sipTransportProtocol", string(proto))
}

func (p DialParams) WithStream(url string, track StreamTrack) DialParams {
	return p.with("streamURL", url).with("streamTrack", string(track))
}

func (p DialParams) WithTimeLimitSecs(secs int) DialParams {
	return p.with("timeLimitSecs", secs)
}

func (p DialParams) WithTimeoutSecs(secs int) DialParams { return p.with("timeoutSecs", secs) }

func (p DialParams) WithWebhook(url string, method WebhookURLMethod) DialParams {
	return p.with("webhookURL", url).with("webhookURLMethod", string(method))
}

func (p DialParams) Encode() (map[string]any, error) {
	return model.Encode(p.Record())
}

func (p DialParams) MarshalJSON() ([]byte, error) {
	return model.Marshal(p.Record())
}

func (p *DialParams) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(DialParamsSchema, data)
	if err != nil {
		return err
	}
	p.rec = rec
	return nil
}
