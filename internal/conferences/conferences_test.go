package conferences

import (
	"encoding/json"
	"testing"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinParamsOnlyRequiredKey(t *testing.T) {
	testlog.Start(t)
	out, err := NewJoinParams("v3:leg").Encode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"call_control_id": "v3:leg"}, out)

	data, err := json.Marshal(NewJoinParams("v3:leg"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"call_control_id":"v3:leg"}`, string(data))
}

func TestJoinParamsSupervisor(t *testing.T) {
	p := NewJoinParams("v3:leg").
		WithSupervisorRole(SupervisorWhisper).
		WithWhisperCallControlIDs("v3:a", "v3:b").
		WithBeepEnabled(BeepOnEnter).
		WithMute(false)

	out, err := p.Encode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"call_control_id":          "v3:leg",
		"supervisor_role":          "whisper",
		"whisper_call_control_ids": []any{"v3:a", "v3:b"},
		"beep_enabled":             "on_enter",
		"mute":                     false,
	}, out)

	back, err := DecodeJoinParams(out)
	require.NoError(t, err)
	assert.True(t, back.Record().Equal(p.Record()))
	role, ok := back.SupervisorRole()
	require.True(t, ok)
	assert.Equal(t, SupervisorWhisper, role)
	mute, ok := back.Mute()
	require.True(t, ok)
	assert.False(t, mute)
}

func TestJoinParamsRejectsUnknownRole(t *testing.T) {
	_, err := DecodeJoinParams(map[string]any{
		"call_control_id": "v3:leg",
		"supervisor_role": "coach",
	})
	require.ErrorIs(t, err, model.ErrUnknownEnumValue)
	assert.Contains(t, err.Error(), "ConferenceJoinParams.supervisor_role")

	var p JoinParams
	err = json.Unmarshal([]byte(`{"mute":true}`), &p)
	assert.ErrorIs(t, err, model.ErrMissingRequiredField)
}

func TestCreateParamsMissingName(t *testing.T) {
	_, err := model.Make(CreateParamsSchema, map[string]any{"callControlID": "v3:leg"})
	fes := model.FieldErrors(err)
	require.Len(t, fes, 1)
	assert.Equal(t, "name", fes[0].Field)

	p := NewCreateParams("v3:leg", "standup").WithMaxParticipants(10)
	n, ok := p.MaxParticipants()
	require.True(t, ok)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, "standup", p.Name())
}

func TestListDecodesConferencesInOrder(t *testing.T) {
	data := []byte(`{
		"data": [
			{"id": "c1", "name": "first", "status": "in_progress", "region": null},
			{"id": "c2", "name": "second", "status": "archived", "end_reason": "host_left",
			 "ended_by": {"call_control_id": "v3:x", "call_session_id": "s1"}}
		],
		"meta": {"page_number": 1, "page_size": 20, "total_pages": 3, "total_results": 41}
	}`)

	var list List
	require.NoError(t, json.Unmarshal(data, &list))
	confs := list.Data()
	require.Len(t, confs, 2)
	assert.Equal(t, "c1", confs[0].ID())
	assert.Equal(t, "c2", confs[1].ID())
	assert.Equal(t, int64(3), list.TotalPages())

	status, _ := confs[0].Status()
	assert.Equal(t, StatusInProgress, status)
	assert.True(t, confs[0].Record().IsNull("region"))

	status, _ = confs[1].Status()
	assert.Equal(t, Status("archived"), status)
	reason, _ := confs[1].EndReason()
	assert.Equal(t, EndReasonHostLeft, reason)
	endedBy, ok := confs[1].EndedBy()
	require.True(t, ok)
	assert.Equal(t, "v3:x", endedBy["call_control_id"])
}

func TestListEmptyData(t *testing.T) {
	list, err := DecodeList(map[string]any{"data": []any{}})
	require.NoError(t, err)
	assert.NotNil(t, list.Data())
	assert.Empty(t, list.Data())
	assert.Equal(t, int64(0), list.TotalPages())

	out, err := model.Encode(list.Record())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"data": []any{}}, out)
}

func TestConferenceRoundTrip(t *testing.T) {
	payload := map[string]any{
		"id":         "c1",
		"name":       "ops",
		"status":     "completed",
		"end_reason": "all_left",
		"region":     "us-east",
		"updated_at": nil,
	}
	c, err := DecodeConference(payload)
	require.NoError(t, err)
	out, err := model.Encode(c.Record())
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}
