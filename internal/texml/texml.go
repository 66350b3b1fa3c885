// Package texml declares TeXML call records. Request fields use the
// PascalCase wire names of the TwiML-compatible API.
package texml

import "github.com/danmuck/callsdk/internal/model"

type HTTPMethod string

const (
	MethodGET  HTTPMethod = "GET"
	MethodPOST HTTPMethod = "POST"
)

type MachineDetection string

const (
	MachineDetectionEnable           MachineDetection = "Enable"
	MachineDetectionDisable          MachineDetection = "Disable"
	MachineDetectionDetectMessageEnd MachineDetection = "DetectMessageEnd"
)

type DetectionMode string

const (
	DetectionPremium DetectionMode = "Premium"
	DetectionRegular DetectionMode = "Regular"
)

type RecordingChannels string

const (
	RecordingMono RecordingChannels = "mono"
	RecordingDual RecordingChannels = "dual"
)

type CallStatus string

const (
	CallQueued     CallStatus = "queued"
	CallRinging    CallStatus = "ringing"
	CallInProgress CallStatus = "in-progress"
	CallCompleted  CallStatus = "completed"
	CallCanceled   CallStatus = "canceled"
	CallBusy       CallStatus = "busy"
	CallFailed     CallStatus = "failed"
	CallNoAnswer   CallStatus = "no-answer"
)

var (
	HTTPMethodEnum        = model.NewEnum("TeXMLHTTPMethod", string(MethodGET), string(MethodPOST))
	MachineDetectionEnum  = model.NewEnum("TeXMLMachineDetection", string(MachineDetectionEnable), string(MachineDetectionDisable), string(MachineDetectionDetectMessageEnd))
	DetectionModeEnum     = model.NewEnum("TeXMLDetectionMode", string(DetectionPremium), string(DetectionRegular))
	RecordingChannelsEnum = model.NewEnum("TeXMLRecordingChannels", string(RecordingMono), string(RecordingDual))
	UpdateStatusEnum      = model.NewEnum("TeXMLUpdateStatus", string(CallCompleted), string(CallCanceled))
	CallStatusEnum        = model.NewEnum("TeXMLCallStatus",
		string(CallQueued), string(CallRinging), string(CallInProgress), string(CallCompleted),
		string(CallCanceled), string(CallBusy), string(CallFailed), string(CallNoAnswer))
)

var CustomHeaderSchema = model.NewSchema("TeXMLCustomHeader",
	model.Field("name", "name", model.String, model.Required()),
	model.Field("value", "value", model.String, model.Required()),
)

var CallCreateParamsSchema = model.NewSchema("TeXMLCallCreateParams",
	model.Field("applicationSid", "ApplicationSid", model.String, model.Required()),
	model.Field("from", "From", model.String, model.Required()),
	model.Field("to", "To", model.String, model.Required()),
	model.Field("asyncAmd", "AsyncAmd", model.Bool),
	model.Field("asyncAmdStatusCallback", "AsyncAmdStatusCallback", model.String),
	model.Field("callerID", "CallerId", model.String),
	model.Field("customHeaders", "CustomHeaders", model.ListOf(model.RecordOf(CustomHeaderSchema))),
	model.Field("detectionMode", "DetectionMode", model.EnumOf(DetectionModeEnum)),
	model.Field("fallbackURL", "FallbackUrl", model.String),
	model.Field("machineDetection", "MachineDetection", model.EnumOf(MachineDetectionEnum)),
	model.Field("machineDetectionTimeout", "MachineDetectionTimeout", model.Int),
	model.Field("record", "Record", model.Bool),
	model.Field("recordingChannels", "RecordingChannels", model.EnumOf(RecordingChannelsEnum)),
	model.Field("statusCallback", "StatusCallback", model.String),
	model.Field("statusCallbackEvent", "StatusCallbackEvent", model.String),
	model.Field("statusCallbackMethod", "StatusCallbackMethod", model.EnumOf(HTTPMethodEnum)),
	model.Field("timeLimit", "TimeLimit", model.Int),
	model.Field("timeout", "Timeout", model.Int),
	model.Field("url", "Url", model.String),
	model.Field("urlMethod", "UrlMethod", model.EnumOf(HTTPMethodEnum)),
)

var CallUpdateParamsSchema = model.NewSchema("TeXMLCallUpdateParams",
	model.Field("fallbackURL", "FallbackUrl", model.String),
	model.Field("method", "Method", model.EnumOf(HTTPMethodEnum)),
	model.Field("status", "Status", model.EnumOf(UpdateStatusEnum)),
	model.Field("statusCallback", "StatusCallback", model.String),
	model.Field("statusCallbackMethod", "StatusCallbackMethod", model.EnumOf(HTTPMethodEnum)),
	model.Field("texml", "Texml", model.String),
	model.Field("url", "Url", model.String),
)

var CallSchema = model.NewSchema("TeXMLCall",
	model.Field("callSid", "call_sid", model.String, model.Required()),
	model.Field("accountSid", "account_sid", model.String),
	model.Field("from", "from", model.String),
	model.Field("to", "to", model.String),
	model.Field("status", "status", model.EnumOf(CallStatusEnum), model.Permissive()),
	model.Field("direction", "direction", model.String),
	model.Field("duration", "duration", model.String, model.Nullable()),
	model.Field("startTime", "start_time", model.String, model.Nullable()),
	model.Field("endTime", "end_time", model.String, model.Nullable()),
)

// CallCreateParams starts an outbound TeXML call.
type CallCreateParams struct {
	rec model.Record
}

func NewCallCreateParams(applicationSid, from, to string) CallCreateParams {
	return CallCreateParams{rec: CallCreateParamsSchema.New().
		With("applicationSid", applicationSid).
		With("from", from).
		With("to", to)}
}

func DecodeCallCreateParams(payload map[string]any, opts ...model.Option) (CallCreateParams, error) {
	rec, err := model.Decode(CallCreateParamsSchema, payload, opts...)
	if err != nil {
		return CallCreateParams{}, err
	}
	return CallCreateParams{rec: rec}, nil
}

func (p CallCreateParams) Record() model.Record { return CallCreateParamsSchema.Ensure(p.rec) }

func (p CallCreateParams) with(name string, v any) CallCreateParams {
	return CallCreateParams{rec: p.Record().With(name, v)}
}

func (p CallCreateParams) To() string {
	s, _ := p.Record().GetString("to")
	return s
}

func (p CallCreateParams) MachineDetection() (MachineDetection, bool) {
	s, ok := p.Record().GetString("machineDetection")
	return MachineDetection(s), ok
}

// CustomHeaders returns the headers as name/value pairs in send order.
func (p CallCreateParams) CustomHeaders() ([][2]string, bool) {
	recs, ok := p.Record().GetRecords("customHeaders")
	if !ok {
		return nil, false
	}
	out := make([][2]string, len(recs))
	for i, rec := range recs {
		name, _ := rec.GetString("name")
		value, _ := rec.GetString("value")
		out[i] = [2]string{name, value}
	}
	return out, true
}

// WithAsyncAMD runs answering machine detection without blocking the call
// and posts the result to callback.
func (p CallCreateParams) WithAsyncAMD(callback string) CallCreateParams {
	return p.with("asyncAmd", true).with("asyncAmdStatusCallback", callback)
}

func (p CallCreateParams) WithCallerID(id string) CallCreateParams { return p.with("callerID", id) }

func (p CallCreateParams) WithCustomHeader(name, value string) CallCreateParams {
	var items []any
	if recs, ok := p.Record().GetRecords("customHeaders"); ok {
		for _, rec := range recs {
			items = append(items, rec)
		}
	}
	h := CustomHeaderSchema.New().With("name", name).With("value", value)
	return p.with("customHeaders", append(items, h))
}

func (p CallCreateParams) WithMachineDetection(md MachineDetection, mode DetectionMode, timeoutMs int) CallCreateParams {
	p = p.with("machineDetection", string(md)).with("detectionMode", string(mode))
	if timeoutMs > 0 {
		p = p.with("machineDetectionTimeout", timeoutMs)
	}
	return p
}

func (p CallCreateParams) WithRecording(channels RecordingChannels) CallCreateParams {
	return p.with("record", true).with("recordingChannels", string(channels))
}

// WithStatusCallback sets where call progress is posted; events is the
// space-separated list of events, e.g. "initiated ringing answered completed".
func (p CallCreateParams) WithStatusCallback(url string, method HTTPMethod, events string) CallCreateParams {
	p = p.with("statusCallback", url).with("statusCallbackMethod", string(method))
	if events != "" {
		p = p.with("statusCallbackEvent", events)
	}
	return p
}

func (p CallCreateParams) WithTimeLimit(secs int) CallCreateParams { return p.with("timeLimit", secs) }

func (p CallCreateParams) WithTimeout(secs int) CallCreateParams { return p.with("timeout", secs) }

func (p CallCreateParams) WithURL(url string, method HTTPMethod) CallCreateParams {
	return p.with("url", url).with("urlMethod", string(method))
}

func (p CallCreateParams) WithFallbackURL(url string) CallCreateParams {
	return p.with("fallbackURL", url)
}

func (p CallCreateParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p CallCreateParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

func (p *CallCreateParams) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(CallCreateParamsSchema, data)
	if err != nil {
		return err
	}
	p.rec = rec
	return nil
}

// CallUpdateParams redirects or ends a live TeXML call.
type CallUpdateParams struct {
	rec model.Record
}

func NewCallUpdateParams() CallUpdateParams {
	return CallUpdateParams{rec: CallUpdateParamsSchema.New()}
}

func (p CallUpdateParams) Record() model.Record { return CallUpdateParamsSchema.Ensure(p.rec) }

func (p CallUpdateParams) with(name string, v any) CallUpdateParams {
	return CallUpdateParams{rec: p.Record().With(name, v)}
}

// WithStatus ends the call; only completed and canceled are accepted.
func (p CallUpdateParams) WithStatus(s CallStatus) CallUpdateParams {
	return p.with("status", string(s))
}

func (p CallUpdateParams) WithTeXML(doc string) CallUpdateParams { return p.with("texml", doc) }

func (p CallUpdateParams) WithURL(url string, method HTTPMethod) CallUpdateParams {
	return p.with("url", url).with("method", string(method))
}

func (p CallUpdateParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p CallUpdateParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

// Call is a TeXML call as returned by the API.
type Call struct {
	rec model.Record
}

func DecodeCall(payload map[string]any, opts ...model.Option) (Call, error) {
	rec, err := model.Decode(CallSchema, payload, opts...)
	if err != nil {
		return Call{}, err
	}
	return Call{rec: rec}, nil
}

func (c Call) Record() model.Record { return CallSchema.Ensure(c.rec) }

func (c Call) CallSid() string {
	s, _ := c.Record().GetString("callSid")
	return s
}

func (c Call) Status() (CallStatus, bool) {
	s, ok := c.Record().GetString("status")
	return CallStatus(s), ok
}
