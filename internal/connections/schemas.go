// Package connections declares SIP credential connection records and their
// nested inbound, outbound, and RTCP settings.
package connections

import "github.com/danmuck/callsdk/internal/model"

type AnchorsiteOverride string

const (
	AnchorsiteLatency   AnchorsiteOverride = "Latency"
	AnchorsiteChicago   AnchorsiteOverride = "Chicago, IL"
	AnchorsiteAshburn   AnchorsiteOverride = "Ashburn, VA"
	AnchorsiteSanJose   AnchorsiteOverride = "San Jose, CA"
	AnchorsiteAmsterdam AnchorsiteOverride = "Amsterdam, Netherlands"
	AnchorsiteLondon    AnchorsiteOverride = "London, UK"
	AnchorsiteToronto   AnchorsiteOverride = "Toronto, Canada"
	AnchorsiteSydney    AnchorsiteOverride = "Sydney, Australia"
)

type DTMFType string

const (
	DTMFRFC2833 DTMFType = "RFC 2833"
	DTMFInband  DTMFType = "Inband"
	DTMFSIPInfo DTMFType = "SIP INFO"
)

type SIPURICallingPreference string

const (
	SIPURIDisabled     SIPURICallingPreference = "disabled"
	SIPURIUnrestricted SIPURICallingPreference = "unrestricted"
	SIPURIInternal     SIPURICallingPreference = "internal"
)

type WebhookAPIVersion string

const (
	WebhookAPIV1 WebhookAPIVersion = "1"
	WebhookAPIV2 WebhookAPIVersion = "2"
)

type ANINumberFormat string

const (
	ANIPlusE164         ANINumberFormat = "+E.164"
	ANIE164             ANINumberFormat = "E.164"
	ANIPlusE164National ANINumberFormat = "+E.164-national"
	ANIE164National     ANINumberFormat = "E.164-national"
)

type DNISNumberFormat string

const (
	DNISPlusE164    DNISNumberFormat = "+e164"
	DNISE164        DNISNumberFormat = "e164"
	DNISNational    DNISNumberFormat = "national"
	DNISSIPUsername DNISNumberFormat = "sip_username"
)

type ANIOverrideType string

const (
	ANIOverrideAlways    ANIOverrideType = "always"
	ANIOverrideNormal    ANIOverrideType = "normal"
	ANIOverrideEmergency ANIOverrideType = "emergency"
)

type T38ReinviteSource string

const (
	T38Telnyx         T38ReinviteSource = "telnyx"
	T38Customer       T38ReinviteSource = "customer"
	T38Disabled       T38ReinviteSource = "disabled"
	T38Passthru       T38ReinviteSource = "passthru"
	T38CallerPassthru T38ReinviteSource = "caller-passthru"
	T38CalleePassthru T38ReinviteSource = "callee-passthru"
)

type RTCPPort string

const (
	RTCPMux     RTCPPort = "rtcp-mux"
	RTCPPortRTP RTCPPort = "rtp+1"
)

var (
	AnchorsiteOverrideEnum = model.NewEnum("AnchorsiteOverride",
		string(AnchorsiteLatency), string(AnchorsiteChicago), string(AnchorsiteAshburn),
		string(AnchorsiteSanJose), string(AnchorsiteAmsterdam), string(AnchorsiteLondon),
		string(AnchorsiteToronto), string(AnchorsiteSydney))
	DTMFTypeEnum = model.NewEnum("DTMFType",
		string(DTMFRFC2833), string(DTMFInband), string(DTMFSIPInfo))
	SIPURICallingPreferenceEnum = model.NewEnum("SIPURICallingPreference",
		string(SIPURIDisabled), string(SIPURIUnrestricted), string(SIPURIInternal))
	WebhookAPIVersionEnum = model.NewEnum("WebhookAPIVersion",
		string(WebhookAPIV1), string(WebhookAPIV2))
	ANINumberFormatEnum = model.NewEnum("ANINumberFormat",
		string(ANIPlusE164), string(ANIE164), string(ANIPlusE164National), string(ANIE164National))
	DNISNumberFormatEnum = model.NewEnum("DNISNumberFormat",
		string(DNISPlusE164), string(DNISE164), string(DNISNational), string(DNISSIPUsername))
	ANIOverrideTypeEnum = model.NewEnum("ANIOverrideType",
		string(ANIOverrideAlways), string(ANIOverrideNormal), string(ANIOverrideEmergency))
	T38ReinviteSourceEnum = model.NewEnum("T38ReinviteSource",
		string(T38Telnyx), string(T38Customer), string(T38Disabled),
		string(T38Passthru), string(T38CallerPassthru), string(T38CalleePassthru))
	RTCPPortEnum = model.NewEnum("RTCPPort", string(RTCPMux), string(RTCPPortRTP))
	EncryptedMediaEnum = model.NewEnum("EncryptedMedia", "SRTP")
)

var InboundSettingsSchema = model.NewSchema("CredentialInbound",
	model.Field("aniNumberFormat", "ani_number_format", model.EnumOf(ANINumberFormatEnum)),
	model.Field("channelLimit", "channel_limit", model.Int, model.Nullable()),
	model.Field("codecs", "codecs", model.ListOf(model.String)),
	model.Field("dnisNumberFormat", "dnis_number_format", model.EnumOf(DNISNumberFormatEnum)),
	model.Field("generateRingbackTone", "generate_ringback_tone", model.Bool),
	model.Field("isupHeadersEnabled", "isup_headers_enabled", model.Bool),
	model.Field("prackEnabled", "prack_enabled", model.Bool),
	model.Field("shakenStirEnabled", "shaken_stir_enabled", model.Bool),
	model.Field("sipCompactHeadersEnabled", "sip_compact_headers_enabled", model.Bool),
	model.Field("timeout1xxSecs", "timeout_1xx_secs", model.Int),
	model.Field("timeout2xxSecs", "timeout_2xx_secs", model.Int),
)

var OutboundSettingsSchema = model.NewSchema("CredentialOutbound",
	model.Field("aniOverride", "ani_override", model.String),
	model.Field("aniOverrideType", "ani_override_type", model.EnumOf(ANIOverrideTypeEnum)),
	model.Field("callParkingEnabled", "call_parking_enabled", model.Bool, model.Nullable()),
	model.Field("channelLimit", "channel_limit", model.Int, model.Nullable()),
	model.Field("generateRingbackTone", "generate_ringback_tone", model.Bool),
	model.Field("instantRingbackEnabled", "instant_ringback_enabled", model.Bool),
	model.Field("localization", "localization", model.String),
	model.Field("outboundVoiceProfileID", "outbound_voice_profile_id", model.String),
	model.Field("t38ReinviteSource", "t38_reinvite_source", model.EnumOf(T38ReinviteSourceEnum)),
)

var RTCPSettingsSchema = model.NewSchema("ConnectionRTCPSettings",
	model.Field("captureEnabled", "capture_enabled", model.Bool),
	model.Field("port", "port", model.EnumOf(RTCPPortEnum)),
	model.Field("reportFrequencySecs", "report_frequency_secs", model.Int),
)

var CreateCredentialConnectionParamsSchema = model.NewSchema("CreateCredentialConnectionParams",
	model.Field("connectionName", "connection_name", model.String, model.Required()),
	model.Field("userName", "user_name", model.String, model.Required()),
	model.Field("password", "password", model.String, model.Required()),
	model.Field("active", "active", model.Bool),
	model.Field("anchorsiteOverride", "anchorsite_override", model.EnumOf(AnchorsiteOverrideEnum)),
	model.Field("defaultOnHoldComfortNoiseEnabled", "default_on_hold_comfort_noise_enabled", model.Bool),
	model.Field("dtmfType", "dtmf_type", model.EnumOf(DTMFTypeEnum)),
	model.Field("encodeContactHeaderEnabled", "encode_contact_header_enabled", model.Bool),
	model.Field("encryptedMedia", "encrypted_media", model.EnumOf(EncryptedMediaEnum), model.Nullable()),
	model.Field("inbound", "inbound", model.RecordOf(InboundSettingsSchema)),
	model.Field("onnetT38PassthroughEnabled", "onnet_t38_passthrough_enabled", model.Bool),
	model.Field("outbound", "outbound", model.RecordOf(OutboundSettingsSchema)),
	model.Field("rtcpSettings", "rtcp_settings", model.RecordOf(RTCPSettingsSchema)),
	model.Field("sipURICallingPreference", "sip_uri_calling_preference", model.EnumOf(SIPURICallingPreferenceEnum)),
	model.Field("tags", "tags", model.ListOf(model.String)),
	model.Field("webhookAPIVersion", "webhook_api_version", model.EnumOf(WebhookAPIVersionEnum)),
	model.Field("webhookEventFailoverURL", "webhook_event_failover_url", model.String, model.Nullable()),
	model.Field("webhookEventURL", "webhook_event_url", model.String),
	model.Field("webhookTimeoutSecs", "webhook_timeout_secs", model.Int, model.Nullable()),
)

var CredentialConnectionSchema = model.NewSchema("CredentialConnection",
	model.Field("id", "id", model.String, model.Required()),
	model.Field("recordType", "record_type", model.String),
	model.Field("active", "active", model.Bool),
	model.Field("anchorsiteOverride", "anchorsite_override", model.EnumOf(AnchorsiteOverrideEnum), model.Permissive()),
	model.Field("connectionName", "connection_name", model.String),
	model.Field("createdAt", "created_at", model.String),
	model.Field("dtmfType", "dtmf_type", model.EnumOf(DTMFTypeEnum), model.Permissive()),
	model.Field("inbound", "inbound", model.RecordOf(InboundSettingsSchema)),
	model.Field("outbound", "outbound", model.RecordOf(OutboundSettingsSchema)),
	model.Field("sipURICallingPreference", "sip_uri_calling_preference", model.EnumOf(SIPURICallingPreferenceEnum), model.Permissive()),
	model.Field("tags", "tags", model.ListOf(model.String)),
	model.Field("updatedAt", "updated_at", model.String),
	model.Field("userName", "user_name", model.String),
	model.Field("webhookEventURL", "webhook_event_url", model.String, model.Nullable()),
)

var CredentialConnectionResponseSchema = model.NewSchema("CredentialConnectionResponse",
	model.Field("data", "data", model.RecordOf(CredentialConnectionSchema), model.Required()),
)
