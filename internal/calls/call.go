package calls

import "github.com/danmuck/callsdk/internal/model"

// Call is the call state returned by dial and the call status endpoint.
type Call struct {
	rec model.Record
}

func (c Call) Record() model.Record { return CallSchema.Ensure(c.rec) }

func (c Call) CallControlID() string {
	s, _ := c.Record().GetString("callControlID")
	return s
}

func (c Call) CallLegID() (string, bool) {
	return c.Record().GetString("callLegID")
}

func (c Call) CallSessionID() (string, bool) {
	return c.Record().GetString("callSessionID")
}

func (c Call) CallDuration() (int64, bool) {
	return c.Record().GetInt("callDuration")
}

// ClientState returns false when the state is unset or null.
func (c Call) ClientState() (string, bool) {
	return c.Record().GetString("clientState")
}

func (c Call) IsAlive() bool {
	b, _ := c.Record().GetBool("isAlive")
	return b
}

// RecordType is passed through verbatim, including values added by the API
// after this release.
func (c Call) RecordType() CallRecordType {
	s, _ := c.Record().GetString("recordType")
	return CallRecordType(s)
}

func (c Call) StartTime() (string, bool) {
	return c.Record().GetString("startTime")
}

func (c Call) EndTime() (string, bool) {
	return c.Record().GetString("endTime")
}

// CallResponse wraps a Call in the API's data envelope.
type CallResponse struct {
	rec model.Record
}

func DecodeCallResponse(payload map[string]any, opts ...model.Option) (CallResponse, error) {
	rec, err := model.Decode(CallResponseSchema, payload, opts...)
	if err != nil {
		return CallResponse{}, err
	}
	return CallResponse{rec: rec}, nil
}

func (r CallResponse) Record() model.Record { return CallResponseSchema.Ensure(r.rec) }

func (r CallResponse) Data() Call {
	rec, _ := r.Record().GetRecord("data")
	return Call{rec: rec}
}

func (r CallResponse) MarshalJSON() ([]byte, error) { return model.Marshal(r.Record()) }

func (r *CallResponse) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(CallResponseSchema, data)
	if err != nil {
		return err
	}
	r.rec = rec
	return nil
}

// CommandResponse is the acknowledgement returned by call-control actions.
type CommandResponse struct {
	rec model.Record
}

func DecodeCommandResponse(payload map[string]any, opts ...model.Option) (CommandResponse, error) {
	rec, err := model.Decode(CommandResponseSchema, payload, opts...)
	if err != nil {
		return CommandResponse{}, err
	}
	return CommandResponse{rec: rec}, nil
}

func (r CommandResponse) Record() model.Record { return CommandResponseSchema.Ensure(r.rec) }

// Result is "ok" when the command was accepted.
func (r CommandResponse) Result() string {
	data, _ := r.Record().GetRecord("data")
	s, _ := data.GetString("result")
	return s
}
