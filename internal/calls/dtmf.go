package calls

import "github.com/danmuck/callsdk/internal/model"

// SendDTMFParams sends DTMF digits on one or more call legs.
type SendDTMFParams struct {
	rec model.Record
}

func NewSendDTMFParams(digits string) SendDTMFParams {
	return SendDTMFParams{rec: SendDTMFParamsSchema.New().With("digits", digits)}
}

func DecodeSendDTMFParams(payload map[string]any, opts ...model.Option) (SendDTMFParams, error) {
	rec, err := model.Decode(SendDTMFParamsSchema, payload, opts...)
	if err != nil {
		return SendDTMFParams{}, err
	}
	return SendDTMFParams{rec: rec}, nil
}

func (p SendDTMFParams) Record() model.Record { return SendDTMFParamsSchema.Ensure(p.rec) }

func (p SendDTMFParams) Digits() string {
	s, _ := p.Record().GetString("digits")
	return s
}

func (p SendDTMFParams) CallControlIDs() ([]string, bool) {
	return p.Record().GetStrings("callControlIDs")
}

func (p SendDTMFParams) DurationMillis() (int64, bool) {
	return p.Record().GetInt("durationMillis")
}

func (p SendDTMFParams) ClientState() (string, bool) {
	return p.Record().GetString("clientState")
}

func (p SendDTMFParams) CommandID() (string, bool) {
	return p.Record().GetString("commandID")
}

func (p SendDTMFParams) WithDigits(digits string) SendDTMFParams {
	return SendDTMFParams{rec: p.Record().With("digits", digits)}
}

func (p SendDTMFParams) WithCallControlIDs(ids ...string) SendDTMFParams {
	return SendDTMFParams{rec: p.Record().With("callControlIDs", ids)}
}

// WithDurationMillis sets the tone length; the API accepts 100 to 500.
func (p SendDTMFParams) WithDurationMillis(ms int) SendDTMFParams {
	return SendDTMFParams{rec: p.Record().With("durationMillis", ms)}
}

func (p SendDTMFParams) WithClientState(state string) SendDTMFParams {
	return SendDTMFParams{rec: p.Record().With("clientState", state)}
}

func (p SendDTMFParams) WithCommandID(id string) SendDTMFParams {
	return SendDTMFParams{rec: p.Record().With("commandID", id)}
}

// WithNewCommandID sets a freshly generated command_id.
func (p SendDTMFParams) WithNewCommandID() SendDTMFParams {
	return p.WithCommandID(NewCommandID())
}

func (p SendDTMFParams) Encode() (map[string]any, error) {
	return model.Encode(p.Record())
}

func (p SendDTMFParams) MarshalJSON() ([]byte, error) {
	return model.Marshal(p.Record())
}

func (p *SendDTMFParams) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(SendDTMFParamsSchema, data)
	if err != nil {
		return err
	}
	p.rec = rec
	return nil
}
