// Package conferences declares conference request and response records.
package conferences

import "github.com/danmuck/callsdk/internal/model"

type SupervisorRole string

const (
	SupervisorBarge   SupervisorRole = "barge"
	SupervisorMonitor SupervisorRole = "monitor"
	SupervisorNone    SupervisorRole = "none"
	SupervisorWhisper SupervisorRole = "whisper"
)

type BeepEnabled string

const (
	BeepAlways  BeepEnabled = "always"
	BeepNever   BeepEnabled = "never"
	BeepOnEnter BeepEnabled = "on_enter"
	BeepOnExit  BeepEnabled = "on_exit"
)

type Status string

const (
	StatusInit       Status = "init"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type EndReason string

const (
	EndReasonAllLeft         EndReason = "all_left"
	EndReasonEndedViaAPI     EndReason = "ended_via_api"
	EndReasonHostLeft        EndReason = "host_left"
	EndReasonTimeLimit       EndReason = "time_exceeded"
	EndReasonMaxParticipants EndReason = "max_participants_exceeded"
)

var (
	SupervisorRoleEnum = model.NewEnum("SupervisorRole",
		string(SupervisorBarge), string(SupervisorMonitor), string(SupervisorNone), string(SupervisorWhisper))
	BeepEnabledEnum = model.NewEnum("BeepEnabled",
		string(BeepAlways), string(BeepNever), string(BeepOnEnter), string(BeepOnExit))
	StatusEnum = model.NewEnum("ConferenceStatus",
		string(StatusInit), string(StatusInProgress), string(StatusCompleted))
	EndReasonEnum = model.NewEnum("ConferenceEndReason",
		string(EndReasonAllLeft), string(EndReasonEndedViaAPI), string(EndReasonHostLeft),
		string(EndReasonTimeLimit), string(EndReasonMaxParticipants))
)

var JoinParamsSchema = model.NewSchema("ConferenceJoinParams",
	model.Field("callControlID", "call_control_id", model.String, model.Required()),
	model.Field("beepEnabled", "beep_enabled", model.EnumOf(BeepEnabledEnum)),
	model.Field("clientState", "client_state", model.String),
	model.Field("commandID", "command_id", model.String),
	model.Field("endConferenceOnExit", "end_conference_on_exit", model.Bool),
	model.Field("hold", "hold", model.Bool),
	model.Field("holdAudioURL", "hold_audio_url", model.String),
	model.Field("mute", "mute", model.Bool),
	model.Field("softEndConferenceOnExit", "soft_end_conference_on_exit", model.Bool),
	model.Field("startConferenceOnEnter", "start_conference_on_enter", model.Bool),
	model.Field("supervisorRole", "supervisor_role", model.EnumOf(SupervisorRoleEnum)),
	model.Field("whisperCallControlIDs", "whisper_call_control_ids", model.ListOf(model.String)),
)

var CreateParamsSchema = model.NewSchema("ConferenceCreateParams",
	model.Field("callControlID", "call_control_id", model.String, model.Required()),
	model.Field("name", "name", model.String, model.Required()),
	model.Field("beepEnabled", "beep_enabled", model.EnumOf(BeepEnabledEnum)),
	model.Field("clientState", "client_state", model.String),
	model.Field("comfortNoise", "comfort_noise", model.Bool),
	model.Field("commandID", "command_id", model.String),
	model.Field("durationMinutes", "duration_minutes", model.Int),
	model.Field("holdAudioURL", "hold_audio_url", model.String),
	model.Field("maxParticipants", "max_participants", model.Int),
	model.Field("startConferenceOnCreate", "start_conference_on_create", model.Bool),
)

var ConferenceSchema = model.NewSchema("Conference",
	model.Field("id", "id", model.String, model.Required()),
	model.Field("name", "name", model.String, model.Required()),
	model.Field("connectionID", "connection_id", model.String),
	model.Field("createdAt", "created_at", model.String),
	model.Field("endReason", "end_reason", model.EnumOf(EndReasonEnum), model.Permissive(), model.Nullable()),
	model.Field("endedBy", "ended_by", model.MapOf(model.String), model.Nullable()),
	model.Field("expiresAt", "expires_at", model.String),
	model.Field("recordType", "record_type", model.String),
	model.Field("region", "region", model.String, model.Nullable()),
	model.Field("status", "status", model.EnumOf(StatusEnum), model.Permissive()),
	model.Field("updatedAt", "updated_at", model.String, model.Nullable()),
)

var PaginationMetaSchema = model.NewSchema("PaginationMeta",
	model.Field("pageNumber", "page_number", model.Int),
	model.Field("pageSize", "page_size", model.Int),
	model.Field("totalPages", "total_pages", model.Int),
	model.Field("totalResults", "total_results", model.Int),
)

var ListSchema = model.NewSchema("ConferenceList",
	model.Field("data", "data", model.ListOf(model.RecordOf(ConferenceSchema)), model.Required()),
	model.Field("meta", "meta", model.RecordOf(PaginationMetaSchema)),
)
