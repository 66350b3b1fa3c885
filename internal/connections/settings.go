package connections

import "github.com/danmuck/callsdk/internal/model"

// InboundSettings controls calls arriving on the connection.
type InboundSettings struct {
	rec model.Record
}

func NewInboundSettings() InboundSettings {
	return InboundSettings{rec: InboundSettingsSchema.New()}
}

func (s InboundSettings) Record() model.Record { return InboundSettingsSchema.Ensure(s.rec) }

func (s InboundSettings) with(name string, v any) InboundSettings {
	return InboundSettings{rec: s.Record().With(name, v)}
}

func (s InboundSettings) ANINumberFormat() (ANINumberFormat, bool) {
	v, ok := s.Record().GetString("aniNumberFormat")
	return ANINumberFormat(v), ok
}

func (s InboundSettings) Codecs() ([]string, bool) { return s.Record().GetStrings("codecs") }

// ChannelLimit returns false when unset or null; null means unlimited.
func (s InboundSettings) ChannelLimit() (int64, bool) {
	return s.Record().GetInt("channelLimit")
}

func (s InboundSettings) WithANINumberFormat(f ANINumberFormat) InboundSettings {
	return s.with("aniNumberFormat", string(f))
}

func (s InboundSettings) WithDNISNumberFormat(f DNISNumberFormat) InboundSettings {
	return s.with("dnisNumberFormat", string(f))
}

func (s InboundSettings) WithChannelLimit(n int) InboundSettings {
	return s.with("channelLimit", n)
}

func (s InboundSettings) WithUnlimitedChannels() InboundSettings {
	return InboundSettings{rec: s.Record().WithNull("channelLimit")}
}

func (s InboundSettings) WithCodecs(codecs ...string) InboundSettings {
	return s.with("codecs", codecs)
}

func (s InboundSettings) WithGenerateRingbackTone(v bool) InboundSettings {
	return s.with("generateRingbackTone", v)
}

func (s InboundSettings) WithISUPHeadersEnabled(v bool) InboundSettings {
	return s.with("isupHeadersEnabled", v)
}

func (s InboundSettings) WithPRACKEnabled(v bool) InboundSettings {
	return s.with("prackEnabled", v)
}

func (s InboundSettings) WithShakenStirEnabled(v bool) InboundSettings {
	return s.with("shakenStirEnabled", v)
}

func (s InboundSettings) WithSIPCompactHeadersEnabled(v bool) InboundSettings {
	return s.with("sipCompactHeadersEnabled", v)
}

func (s InboundSettings) WithTimeouts(secs1xx, secs2xx int) InboundSettings {
	return s.with("timeout1xxSecs", secs1xx).with("timeout2xxSecs", secs2xx)
}

// OutboundSettings controls calls placed through the connection.
type OutboundSettings struct {
	rec model.Record
}

func NewOutboundSettings() OutboundSettings {
	return OutboundSettings{rec: OutboundSettingsSchema.New()}
}

func (s OutboundSettings) Record() model.Record { return OutboundSettingsSchema.Ensure(s.rec) }

func (s OutboundSettings) with(name string, v any) OutboundSettings {
	return OutboundSettings{rec: s.Record().With(name, v)}
}

func (s OutboundSettings) OutboundVoiceProfileID() (string, bool) {
	return s.Record().GetString("outboundVoiceProfileID")
}

func (s OutboundSettings) T38ReinviteSource() (T38ReinviteSource, bool) {
	v, ok := s.Record().GetString("t38ReinviteSource")
	return T38ReinviteSource(v), ok
}

func (s OutboundSettings) WithANIOverride(ani string, kind ANIOverrideType) OutboundSettings {
	return s.with("aniOverride", ani).with("aniOverrideType", string(kind))
}

func (s OutboundSettings) WithCallParkingEnabled(v bool) OutboundSettings {
	return s.with("callParkingEnabled", v)
}

func (s OutboundSettings) WithChannelLimit(n int) OutboundSettings {
	return s.with("channelLimit", n)
}

func (s OutboundSettings) WithGenerateRingbackTone(v bool) OutboundSettings {
	return s.with("generateRingbackTone", v)
}

func (s OutboundSettings) WithInstantRingbackEnabled(v bool) OutboundSettings {
	return s.with("instantRingbackEnabled", v)
}

// WithLocalization sets the ISO 3166-1 alpha-2 country used for number formatting.
func (s OutboundSettings) WithLocalization(country string) OutboundSettings {
	return s.with("localization", country)
}

func (s OutboundSettings) WithOutboundVoiceProfileID(id string) OutboundSettings {
	return s.with("outboundVoiceProfileID", id)
}

func (s OutboundSettings) WithT38ReinviteSource(src T38ReinviteSource) OutboundSettings {
	return s.with("t38ReinviteSource", string(src))
}

type RTCPSettings struct {
	rec model.Record
}

func NewRTCPSettings(port RTCPPort) RTCPSettings {
	return RTCPSettings{rec: RTCPSettingsSchema.New().With("port", string(port))}
}

func (s RTCPSettings) Record() model.Record { return RTCPSettingsSchema.Ensure(s.rec) }

func (s RTCPSettings) WithCaptureEnabled(v bool) RTCPSettings {
	return RTCPSettings{rec: s.Record().With("captureEnabled", v)}
}

func (s RTCPSettings) WithReportFrequencySecs(secs int) RTCPSettings {
	return RTCPSettings{rec: s.Record().With("reportFrequencySecs", secs)}
}
