package calls

import "github.com/danmuck/callsdk/internal/model"

var CustomSIPHeaderSchema = model.NewSchema("CustomSIPHeader",
	model.Field("name", "name", model.String, model.Required()),
	model.Field("value", "value", model.String, model.Required()),
)

var AnsweringMachineDetectionConfigSchema = model.NewSchema("AnsweringMachineDetectionConfig",
	model.Field("afterGreetingSilenceMillis", "after_greeting_silence_millis", model.Int),
	model.Field("betweenWordsSilenceMillis", "between_words_silence_millis", model.Int),
	model.Field("greetingDurationMillis", "greeting_duration_millis", model.Int),
	model.Field("initialSilenceMillis", "initial_silence_millis", model.Int),
	model.Field("maximumNumberOfWords", "maximum_number_of_words", model.Int),
	model.Field("silenceThreshold", "silence_threshold", model.Int),
	model.Field("totalAnalysisTimeMillis", "total_analysis_time_millis", model.Int),
)

var SendDTMFParamsSchema = model.NewSchema("SendDTMFParams",
	model.Field("digits", "digits", model.String, model.Required()),
	model.Field("callControlIDs", "call_control_ids", model.ListOf(model.String)),
	model.Field("durationMillis", "duration_millis", model.Int),
	model.Field("clientState", "client_state", model.String),
	model.Field("commandID", "command_id", model.String),
)

// dialTo accepts a single destination or a list for simultaneous ring.
var dialTo = model.UnionOf(
	model.Alt{Name: "single", Type: model.String},
	model.Alt{Name: "many", Type: model.ListOf(model.String)},
)

var DialParamsSchema = model.NewSchema("DialParams",
	model.Field("connectionID", "connection_id", model.String, model.Required()),
	model.Field("to", "to", dialTo, model.Required()),
	model.Field("from", "from", model.String, model.Required()),
	model.Field("fromDisplayName", "from_display_name", model.String),
	model.Field("answeringMachineDetection", "answering_machine_detection", model.EnumOf(AnsweringMachineDetectionEnum)),
	model.Field("answeringMachineDetectionConfig", "answering_machine_detection_config", model.RecordOf(AnsweringMachineDetectionConfigSchema)),
	model.Field("audioURL", "audio_url", model.String),
	model.Field("billingGroupID", "billing_group_id", model.String),
	model.Field("clientState", "client_state", model.String),
	model.Field("commandID", "command_id", model.String),
	model.Field("customHeaders", "custom_headers", model.ListOf(model.RecordOf(CustomSIPHeaderSchema))),
	model.Field("linkTo", "link_to", model.String),
	model.Field("mediaEncryption", "media_encryption", model.EnumOf(MediaEncryptionEnum)),
	model.Field("sipAuthUsername", "sip_auth_username", model.String),
	model.Field("sipAuthPassword", "sip_auth_password", model.String),
	model.Field("sipTransportProtocol", "sip_transport_protocol", model.EnumOf(SIPTransportProtocolEnum)),
	model.Field("streamTrack", "stream_track", model.EnumOf(StreamTrackEnum)),
	model.Field("streamURL", "stream_url", model.String),
	model.Field("timeLimitSecs", "time_limit_secs", model.Int),
	model.Field("timeoutSecs", "timeout_secs", model.Int),
	model.Field("webhookURL", "webhook_url", model.String),
	model.Field("webhookURLMethod", "webhook_url_method", model.EnumOf(WebhookURLMethodEnum)),
)

var AnswerParamsSchema = model.NewSchema("AnswerParams",
	model.Field("billingGroupID", "billing_group_id", model.String),
	model.Field("clientState", "client_state", model.String),
	model.Field("commandID", "command_id", model.String),
	model.Field("customHeaders", "custom_headers", model.ListOf(model.RecordOf(CustomSIPHeaderSchema))),
	model.Field("streamTrack", "stream_track", model.EnumOf(StreamTrackEnum)),
	model.Field("streamURL", "stream_url", model.String),
	model.Field("webhookURL", "webhook_url", model.String),
	model.Field("webhookURLMethod", "webhook_url_method", model.EnumOf(WebhookURLMethodEnum)),
)

var HangupParamsSchema = model.NewSchema("HangupParams",
	model.Field("clientState", "client_state", model.String),
	model.Field("commandID", "command_id", model.String),
)

var TransferParamsSchema = model.NewSchema("TransferParams",
	model.Field("to", "to", model.String, model.Required()),
	model.Field("from", "from", model.String),
	model.Field("fromDisplayName", "from_display_name", model.String),
	model.Field("audioURL", "audio_url", model.String),
	model.Field("clientState", "client_state", model.String),
	model.Field("commandID", "command_id", model.String),
	model.Field("customHeaders", "custom_headers", model.ListOf(model.RecordOf(CustomSIPHeaderSchema))),
	model.Field("targetLegClientState", "target_leg_client_state", model.String),
	model.Field("timeoutSecs", "timeout_secs", model.Int),
	model.Field("webhookURL", "webhook_url", model.String),
	model.Field("webhookURLMethod", "webhook_url_method", model.EnumOf(WebhookURLMethodEnum)),
)

var CallSchema = model.NewSchema("Call",
	model.Field("callControlID", "call_control_id", model.String, model.Required()),
	model.Field("callLegID", "call_leg_id", model.String),
	model.Field("callSessionID", "call_session_id", model.String),
	model.Field("callDuration", "call_duration", model.Int),
	model.Field("clientState", "client_state", model.String, model.Nullable()),
	model.Field("isAlive", "is_alive", model.Bool),
	model.Field("recordType", "record_type", model.EnumOf(CallRecordTypeEnum), model.Permissive()),
	model.Field("startTime", "start_time", model.String, model.Nullable()),
	model.Field("endTime", "end_time", model.String, model.Nullable()),
)

var CallResponseSchema = model.NewSchema("CallResponse",
	model.Field("data", "data", model.RecordOf(CallSchema), model.Required()),
)

// CommandResultSchema is the body returned by every call-control action.
var CommandResultSchema = model.NewSchema("CommandResult",
	model.Field("result", "result", model.String, model.Required()),
)

var CommandResponseSchema = model.NewSchema("CommandResponse",
	model.Field("data", "data", model.RecordOf(CommandResultSchema), model.Required()),
)
