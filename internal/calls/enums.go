package calls

import "github.com/danmuck/callsdk/internal/model"

type AnsweringMachineDetection string

const (
	AMDPremium     AnsweringMachineDetection = "premium"
	AMDDetect      AnsweringMachineDetection = "detect"
	AMDDetectBeep  AnsweringMachineDetection = "detect_beep"
	AMDDetectWords AnsweringMachineDetection = "detect_words"
	AMDGreetingEnd AnsweringMachineDetection = "greeting_end"
	AMDDisabled    AnsweringMachineDetection = "disabled"
)

type MediaEncryption string

const (
	MediaEncryptionDisabled MediaEncryption = "disabled"
	MediaEncryptionSRTP     MediaEncryption = "SRTP"
	MediaEncryptionDTLS     MediaEncryption = "DTLS"
)

type SIPTransportProtocol string

const (
	SIPTransportUDP SIPTransportProtocol = "UDP"
	SIPTransportTCP SIPTransportProtocol = "TCP"
	SIPTransportTLS SIPTransportProtocol = "TLS"
)

type StreamTrack string

const (
	StreamTrackInbound  StreamTrack = "inbound_track"
	StreamTrackOutbound StreamTrack = "outbound_track"
	StreamTrackBoth     StreamTrack = "both_tracks"
)

type WebhookURLMethod string

const (
	WebhookPOST WebhookURLMethod = "POST"
	WebhookGET  WebhookURLMethod = "GET"
)

// CallRecordType is the record_type of call responses.
type CallRecordType string

const CallRecordTypeCall CallRecordType = "call"

var (
	AnsweringMachineDetectionEnum = model.NewEnum("AnsweringMachineDetection",
		string(AMDPremium), string(AMDDetect), string(AMDDetectBeep),
		string(AMDDetectWords), string(AMDGreetingEnd), string(AMDDisabled))
	MediaEncryptionEnum = model.NewEnum("MediaEncryption",
		string(MediaEncryptionDisabled), string(MediaEncryptionSRTP), string(MediaEncryptionDTLS))
	SIPTransportProtocolEnum = model.NewEnum("SIPTransportProtocol",
		string(SIPTransportUDP), string(SIPTransportTCP), string(SIPTransportTLS))
	StreamTrackEnum = model.NewEnum("StreamTrack",
		string(StreamTrackInbound), string(StreamTrackOutbound), string(StreamTrackBoth))
	WebhookURLMethodEnum = model.NewEnum("WebhookURLMethod",
		string(WebhookPOST), string(WebhookGET))
	CallRecordTypeEnum = model.NewEnum("CallRecordType", string(CallRecordTypeCall))
)
