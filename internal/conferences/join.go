package conferences

import "github.com/danmuck/callsdk/internal/model"

// JoinParams adds a call leg to an existing conference.
type JoinParams struct {
	rec model.Record
}

func NewJoinParams(callControlID string) JoinParams {
	return JoinParams{rec: JoinParamsSchema.New().With("callControlID", callControlID)}
}

func DecodeJoinParams(payload map[string]any, opts ...model.Option) (JoinParams, error) {
	rec, err := model.Decode(JoinParamsSchema, payload, opts...)
	if err != nil {
		return JoinParams{}, err
	}
	return JoinParams{rec: rec}, nil
}

func (p JoinParams) Record() model.Record { return JoinParamsSchema.Ensure(p.rec) }

func (p JoinParams) with(name string, v any) JoinParams {
	return JoinParams{rec: p.Record().With(name, v)}
}

func (p JoinParams) CallControlID() string {
	s, _ := p.Record().GetString("callControlID")
	return s
}

func (p JoinParams) SupervisorRole() (SupervisorRole, bool) {
	s, ok := p.Record().GetString("supervisorRole")
	return SupervisorRole(s), ok
}

func (p JoinParams) BeepEnabled() (BeepEnabled, bool) {
	s, ok := p.Record().GetString("beepEnabled")
	return BeepEnabled(s), ok
}

func (p JoinParams) Mute() (bool, bool) { return p.Record().GetBool("mute") }

func (p JoinParams) WhisperCallControlIDs() ([]string, bool) {
	return p.Record().GetStrings("whisperCallControlIDs")
}

func (p JoinParams) WithBeepEnabled(b BeepEnabled) JoinParams {
	return p.with("beepEnabled", string(b))
}

func (p JoinParams) WithClientState(state string) JoinParams {
	return p.with("clientState", state)
}

func (p JoinParams) WithCommandID(id string) JoinParams { return p.with("commandID", id) }

func (p JoinParams) WithEndConferenceOnExit(v bool) JoinParams {
	return p.with("endConferenceOnExit", v)
}

func (p JoinParams) WithHold(v bool) JoinParams { return p.with("hold", v) }

func (p JoinParams) WithHoldAudioURL(url string) JoinParams {
	return p.with("holdAudioURL", url)
}

func (p JoinParams) WithMute(v bool) JoinParams { return p.with("mute", v) }

func (p JoinParams) WithSoftEndConferenceOnExit(v bool) JoinParams {
	return p.with("softEndConferenceOnExit", v)
}

func (p JoinParams) WithStartConferenceOnEnter(v bool) JoinParams {
	return p.with("startConferenceOnEnter", v)
}

func (p JoinParams) WithSupervisorRole(role SupervisorRole) JoinParams {
	return p.with("supervisorRole", string(role))
}

// WithWhisperCallControlIDs limits who hears a whispering supervisor.
func (p JoinParams) WithWhisperCallControlIDs(ids ...string) JoinParams {
	return p.with("whisperCallControlIDs", ids)
}

func (p JoinParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p JoinParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

func (p *JoinParams) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(JoinParamsSchema, data)
	if err != nil {
		return err
	}
	p.rec = rec
	return nil
}

// CreateParams creates a conference from an existing call leg.
type CreateParams struct {
	rec model.Record
}

func NewCreateParams(callControlID, name string) CreateParams {
	return CreateParams{rec: CreateParamsSchema.New().
		With("callControlID", callControlID).
		With("name", name)}
}

func (p CreateParams) Record() model.Record { return CreateParamsSchema.Ensure(p.rec) }

func (p CreateParams) with(name string, v any) CreateParams {
	return CreateParams{rec: p.Record().With(name, v)}
}

func (p CreateParams) Name() string {
	s, _ := p.Record().GetString("name")
	return s
}

func (p CreateParams) MaxParticipants() (int64, bool) {
	return p.Record().GetInt("maxParticipants")
}

func (p CreateParams) WithBeepEnabled(b BeepEnabled) CreateParams {
	return p.with("beepEnabled", string(b))
}

func (p CreateParams) WithClientState(state string) CreateParams {
	return p.with("clientState", state)
}

func (p CreateParams) WithComfortNoise(v bool) CreateParams { return p.with("comfortNoise", v) }

func (p CreateParams) WithCommandID(id string) CreateParams { return p.with("commandID", id) }

func (p CreateParams) WithDurationMinutes(m int) CreateParams {
	return p.with("durationMinutes", m)
}

func (p CreateParams) WithHoldAudioURL(url string) CreateParams {
	return p.with("holdAudioURL", url)
}

func (p CreateParams) WithMaxParticipants(n int) CreateParams {
	return p.with("maxParticipants", n)
}

func (p CreateParams) WithStartConferenceOnCreate(v bool) CreateParams {
	return p.with("startConferenceOnCreate", v)
}

func (p CreateParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p CreateParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }
