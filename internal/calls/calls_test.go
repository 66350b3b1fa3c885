package calls

import (
	"encoding/json"
	"testing"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/testutil/testlog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDTMFDecodeAndEncode(t *testing.T) {
	testlog.Start(t)
	payload := map[string]any{
		"digits":           "1234",
		"call_control_ids": []any{"abc"},
		"duration_millis":  float64(250),
	}

	p, err := DecodeSendDTMFParams(payload)
	require.NoError(t, err)
	assert.Equal(t, "1234", p.Digits())

	ids, ok := p.CallControlIDs()
	require.True(t, ok)
	assert.Equal(t, []string{"abc"}, ids)

	ms, ok := p.DurationMillis()
	require.True(t, ok)
	assert.Equal(t, int64(250), ms)

	_, ok = p.ClientState()
	assert.False(t, ok)

	out, err := p.Encode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"digits":           "1234",
		"call_control_ids": []any{"abc"},
		"duration_millis":  int64(250),
	}, out)
}

func TestSendDTMFJSON(t *testing.T) {
	var p SendDTMFParams
	require.NoError(t, json.Unmarshal([]byte(`{"digits":"1234","call_control_ids":["abc"],"duration_millis":250}`), &p))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"digits":"1234","call_control_ids":["abc"],"duration_millis":250}`, string(data))

	err = json.Unmarshal([]byte(`{"call_control_ids":["abc"]}`), &p)
	assert.ErrorIs(t, err, model.ErrMissingRequiredField)
}

func TestSendDTMFBuilderDoesNotMutateBase(t *testing.T) {
	base := NewSendDTMFParams("1").WithClientState("aGk=")
	longer := base.WithDurationMillis(400)
	other := base.WithDigits("9")

	_, ok := base.DurationMillis()
	assert.False(t, ok)
	assert.Equal(t, "1", base.Digits())
	assert.Equal(t, "9", other.Digits())
	ms, _ := longer.DurationMillis()
	assert.Equal(t, int64(400), ms)
}

func TestZeroValueWrapper(t *testing.T) {
	var p SendDTMFParams
	assert.Equal(t, "", p.Digits())

	_, err := p.Encode()
	assert.ErrorIs(t, err, model.ErrMissingRequiredField)

	var h HangupParams
	out, err := h.Encode()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewCommandID(t *testing.T) {
	a := NewCommandID()
	b := NewCommandID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)

	p := NewHangupParams().WithNewCommandID()
	out, err := p.Encode()
	require.NoError(t, err)
	id, ok := out["command_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestDialParamsEncoding(t *testing.T) {
	p := NewDialParams("conn-1", "+15550000001", "+15550000002").
		WithAnsweringMachineDetection(AMDDetectBeep).
		WithAMDConfig(NewAMDConfig().WithTotalAnalysisTimeMillis(5000)).
		WithCustomHeaders(NewCustomSIPHeader("X-Team", "ops"), NewCustomSIPHeader("X-Trace", "t1")).
		WithWebhook("https://example.com/hook", WebhookPOST).
		WithTimeoutSecs(30)

	out, err := p.Encode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"connection_id":               "conn-1",
		"from":                        "+15550000001",
		"to":                          "+15550000002",
		"answering_machine_detection": "detect_beep",
		"answering_machine_detection_config": map[string]any{
			"total_analysis_time_millis": int64(5000),
		},
		"custom_headers": []any{
			map[string]any{"name": "X-Team", "value": "ops"},
			map[string]any{"name": "X-Trace", "value": "t1"},
		},
		"webhook_url":        "https://example.com/hook",
		"webhook_url_method": "POST",
		"timeout_secs":       int64(30),
	}, out)

	back, err := DecodeDialParams(out)
	require.NoError(t, err)
	assert.True(t, back.Record().Equal(p.Record()))

	headers, ok := back.CustomHeaders()
	require.True(t, ok)
	require.Len(t, headers, 2)
	assert.Equal(t, "X-Team", headers[0].Name())
	assert.Equal(t, "t1", headers[1].Value())

	cfg, ok := back.AMDConfig()
	require.True(t, ok)
	total, _ := cfg.TotalAnalysisTimeMillis()
	assert.Equal(t, int64(5000), total)
}

func TestDialParamsToUnion(t *testing.T) {
	single := NewDialParams("c", "f", "+1")
	assert.Equal(t, []string{"+1"}, single.To())

	many := single.WithTo("+1", "+2")
	assert.Equal(t, []string{"+1", "+2"}, many.To())
	out, err := many.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{"+1", "+2"}, out["to"])

	decoded, err := DecodeDialParams(map[string]any{
		"connection_id": "c",
		"from":          "f",
		"to":            []any{"+3", "+4"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"+3", "+4"}, decoded.To())

	_, err = DecodeDialParams(map[string]any{"connection_id": "c", "from": "f", "to": 5.0})
	assert.ErrorIs(t, err, model.ErrTypeMismatch)

	_, err = NewDialParams("c", "f").Encode()
	assert.ErrorIs(t, err, model.ErrMissingRequiredField)
}

func TestDialParamsStrictEnums(t *testing.T) {
	_, err := DecodeDialParams(map[string]any{
		"connection_id":    "c",
		"from":             "f",
		"to":               "t",
		"media_encryption": "ZRTP",
	})
	require.ErrorIs(t, err, model.ErrUnknownEnumValue)
	fes := model.FieldErrors(err)
	require.Len(t, fes, 1)
	assert.Equal(t, "ZRTP", fes[0].Value)
	assert.Equal(t, "media_encryption", fes[0].Path)

	bad := NewDialParams("c", "f", "t").WithMediaEncryption("ZRTP")
	_, err = bad.Encode()
	assert.ErrorIs(t, err, model.ErrUnknownEnumValue)
}

func TestDialParamsNestedHeaderPath(t *testing.T) {
	_, err := DecodeDialParams(map[string]any{
		"connection_id": "c",
		"from":          "f",
		"to":            "t",
		"custom_headers": []any{
			map[string]any{"name": "a", "value": "1"},
			map[string]any{"name": "b"},
		},
	})
	fes := model.FieldErrors(err)
	require.Len(t, fes, 1)
	assert.ErrorIs(t, fes[0], model.ErrMissingRequiredField)
	assert.Equal(t, "custom_headers[1].value", fes[0].Path)
}

func TestTransferParams(t *testing.T) {
	p := NewTransferParams("sip:agent@example.com").
		WithFrom("+15550000001", "").
		WithTargetLegClientState("dGFyZ2V0").
		WithTimeoutSecs(20)

	out, err := p.Encode()
	require.NoError(t, err)
	assert.NotContains(t, out, "from_display_name")
	assert.Equal(t, "sip:agent@example.com", out["to"])

	back, err := DecodeTransferParams(out)
	require.NoError(t, err)
	assert.Equal(t, "sip:agent@example.com", back.To())
	secs, _ := back.TimeoutSecs()
	assert.Equal(t, int64(20), secs)
}

func TestAnswerParams(t *testing.T) {
	p := NewAnswerParams().
		WithClientState("c3RhdGU=").
		WithStream("wss://example.com/media", StreamTrackBoth)
	out, err := p.Encode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"client_state": "c3RhdGU=",
		"stream_url":   "wss://example.com/media",
		"stream_track": "both_tracks",
	}, out)
}

func TestCallResponsePermissive(t *testing.T) {
	data := []byte(`{
		"data": {
			"call_control_id": "v3:abc",
			"call_leg_id": "leg-1",
			"call_duration": 42,
			"client_state": null,
			"is_alive": true,
			"record_type": "call_v2",
			"start_time": "2026-01-01T00:00:00Z",
			"end_time": null,
			"recording_url": "https://example.com/r.mp3"
		}
	}`)

	var resp CallResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	call := resp.Data()
	assert.Equal(t, "v3:abc", call.CallControlID())
	assert.Equal(t, CallRecordType("call_v2"), call.RecordType())
	assert.True(t, call.IsAlive())
	assert.True(t, call.Record().IsNull("clientState"))
	_, ok := call.ClientState()
	assert.False(t, ok)
	dur, _ := call.CallDuration()
	assert.Equal(t, int64(42), dur)
	assert.Equal(t, "https://example.com/r.mp3", call.Record().Extra()["recording_url"])

	_, err := DecodeCallResponse(map[string]any{
		"data": map[string]any{"call_control_id": "x", "record_type": "call_v2"},
	}, model.WithEnumPolicy("Call.record_type", model.EnumStrict))
	assert.ErrorIs(t, err, model.ErrUnknownEnumValue)
}

func TestCommandResponse(t *testing.T) {
	resp, err := DecodeCommandResponse(map[string]any{"data": map[string]any{"result": "ok"}})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Result())
}
