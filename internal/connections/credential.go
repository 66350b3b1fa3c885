package connections

import "github.com/danmuck/callsdk/internal/model"

// CreateCredentialConnectionParams registers a SIP credential connection.
type CreateCredentialConnectionParams struct {
	rec model.Record
}

func NewCreateCredentialConnectionParams(connectionName, userName, password string) CreateCredentialConnectionParams {
	return CreateCredentialConnectionParams{rec: CreateCredentialConnectionParamsSchema.New().
		With("connectionName", connectionName).
		With("userName", userName).
		With("password", password)}
}

func DecodeCreateCredentialConnectionParams(payload map[string]any, opts ...model.Option) (CreateCredentialConnectionParams, error) {
	rec, err := model.Decode(CreateCredentialConnectionParamsSchema, payload, opts...)
	if err != nil {
		return CreateCredentialConnectionParams{}, err
	}
	return CreateCredentialConnectionParams{rec: rec}, nil
}

func (p CreateCredentialConnectionParams) Record() model.Record {
	return CreateCredentialConnectionParamsSchema.Ensure(p.rec)
}

func (p CreateCredentialConnectionParams) with(name string, v any) CreateCredentialConnectionParams {
	return CreateCredentialConnectionParams{rec: p.Record().With(name, v)}
}

func (p CreateCredentialConnectionParams) ConnectionName() string {
	s, _ := p.Record().GetString("connectionName")
	return s
}

func (p CreateCredentialConnectionParams) UserName() string {
	s, _ := p.Record().GetString("userName")
	return s
}

func (p CreateCredentialConnectionParams) DTMFType() (DTMFType, bool) {
	s, ok := p.Record().GetString("dtmfType")
	return DTMFType(s), ok
}

func (p CreateCredentialConnectionParams) Inbound() (InboundSettings, bool) {
	rec, ok := p.Record().GetRecord("inbound")
	return InboundSettings{rec: rec}, ok
}

func (p CreateCredentialConnectionParams) Outbound() (OutboundSettings, bool) {
	rec, ok := p.Record().GetRecord("outbound")
	return OutboundSettings{rec: rec}, ok
}

func (p CreateCredentialConnectionParams) Tags() ([]string, bool) {
	return p.Record().GetStrings("tags")
}

func (p CreateCredentialConnectionParams) WithActive(v bool) CreateCredentialConnectionParams {
	return p.with("active", v)
}

func (p CreateCredentialConnectionParams) WithAnchorsiteOverride(a AnchorsiteOverride) CreateCredentialConnectionParams {
	return p.with("anchorsiteOverride", string(a))
}

func (p CreateCredentialConnectionParams) WithDefaultOnHoldComfortNoiseEnabled(v bool) CreateCredentialConnectionParams {
	return p.with("defaultOnHoldComfortNoiseEnabled", v)
}

func (p CreateCredentialConnectionParams) WithDTMFType(t DTMFType) CreateCredentialConnectionParams {
	return p.with("dtmfType", string(t))
}

func (p CreateCredentialConnectionParams) WithEncodeContactHeaderEnabled(v bool) CreateCredentialConnectionParams {
	return p.with("encodeContactHeaderEnabled", v)
}

// WithEncryptedMedia enables SRTP. An empty value sends null, which disables it.
func (p CreateCredentialConnectionParams) WithEncryptedMedia(mode string) CreateCredentialConnectionParams {
	if mode == "" {
		return CreateCredentialConnectionParams{rec: p.Record().WithNull("encryptedMedia")}
	}
	return p.with("encryptedMedia", mode)
}

func (p CreateCredentialConnectionParams) WithInbound(s InboundSettings) CreateCredentialConnectionParams {
	return p.with("inbound", s)
}

func (p CreateCredentialConnectionParams) WithOnnetT38PassthroughEnabled(v bool) CreateCredentialConnectionParams {
	return p.with("onnetT38PassthroughEnabled", v)
}

func (p CreateCredentialConnectionParams) WithOutbound(s OutboundSettings) CreateCredentialConnectionParams {
	return p.with("outbound", s)
}

func (p CreateCredentialConnectionParams) WithRTCPSettings(s RTCPSettings) CreateCredentialConnectionParams {
	return p.with("rtcpSettings", s)
}

func (p CreateCredentialConnectionParams) WithSIPURICallingPreference(pref SIPURICallingPreference) CreateCredentialConnectionParams {
	return p.with("sipURICallingPreference", string(pref))
}

func (p CreateCredentialConnectionParams) WithTags(tags ...string) CreateCredentialConnectionParams {
	return p.with("tags", tags)
}

func (p CreateCredentialConnectionParams) WithWebhookAPIVersion(v WebhookAPIVersion) CreateCredentialConnectionParams {
	return p.with("webhookAPIVersion", string(v))
}

func (p CreateCredentialConnectionParams) WithWebhookEventURL(url string) CreateCredentialConnectionParams {
	return p.with("webhookEventURL", url)
}

func (p CreateCredentialConnectionParams) WithWebhookEventFailoverURL(url string) CreateCredentialConnectionParams {
	return p.with("webhookEventFailoverURL", url)
}

func (p CreateCredentialConnectionParams) WithWebhookTimeoutSecs(secs int) CreateCredentialConnectionParams {
	return p.with("webhookTimeoutSecs", secs)
}

func (p CreateCredentialConnectionParams) Encode() (map[string]any, error) {
	return model.Encode(p.Record())
}

func (p CreateCredentialConnectionParams) MarshalJSON() ([]byte, error) {
	return model.Marshal(p.Record())
}

func (p *CreateCredentialConnectionParams) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(CreateCredentialConnectionParamsSchema, data)
	if err != nil {
		return err
	}
	p.rec = rec
	return nil
}

// CredentialConnection is a credential connection as returned by the API.
type CredentialConnection struct {
	rec model.Record
}

func (c CredentialConnection) Record() model.Record { return CredentialConnectionSchema.Ensure(c.rec) }

func (c CredentialConnection) ID() string {
	s, _ := c.Record().GetString("id")
	return s
}

func (c CredentialConnection) Active() bool {
	b, _ := c.Record().GetBool("active")
	return b
}

func (c CredentialConnection) AnchorsiteOverride() (AnchorsiteOverride, bool) {
	s, ok := c.Record().GetString("anchorsiteOverride")
	return AnchorsiteOverride(s), ok
}

func (c CredentialConnection) DTMFType() (DTMFType, bool) {
	s, ok := c.Record().GetString("dtmfType")
	return DTMFType(s), ok
}

func (c CredentialConnection) Inbound() (InboundSettings, bool) {
	rec, ok := c.Record().GetRecord("inbound")
	return InboundSettings{rec: rec}, ok
}

func (c CredentialConnection) Tags() ([]string, bool) { return c.Record().GetStrings("tags") }

type CredentialConnectionResponse struct {
	rec model.Record
}

func DecodeCredentialConnectionResponse(payload map[string]any, opts ...model.Option) (CredentialConnectionResponse, error) {
	rec, err := model.Decode(CredentialConnectionResponseSchema, payload, opts...)
	if err != nil {
		return CredentialConnectionResponse{}, err
	}
	return CredentialConnectionResponse{rec: rec}, nil
}

func (r CredentialConnectionResponse) Record() model.Record {
	return CredentialConnectionResponseSchema.Ensure(r.rec)
}

func (r CredentialConnectionResponse) Data() CredentialConnection {
	rec, _ := r.Record().GetRecord("data")
	return CredentialConnection{rec: rec}
}
