package verify

import (
	"encoding/json"
	"testing"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParams(t *testing.T) {
	p := NewCreateParams("+13035551234", "vp-1").WithTimeoutSecs(300)
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone_number":"+13035551234","verify_profile_id":"vp-1","timeout_secs":300}`, string(data))
	assert.Equal(t, "+13035551234", p.PhoneNumber())

	out, err := p.WithCustomCode("").Encode()
	require.NoError(t, err)
	assert.Equal(t, "", out["custom_code"])
}

func TestVerifyCodeParamsRequireBoth(t *testing.T) {
	_, err := model.Make(VerifyCodeParamsSchema, map[string]any{"code": "17686"})
	require.ErrorIs(t, err, model.ErrMissingRequiredField)
	assert.Equal(t, "verifyProfileID", model.FieldErrors(err)[0].Field)

	out, err := NewVerifyCodeParams("17686", "vp-1").Encode()
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestVerificationPermissiveStatus(t *testing.T) {
	var v Verification
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "12ade33a-21c0-473b-b055-b3c836e1c292",
		"status": "rate_limited",
		"type": "whatsapp",
		"timeout_secs": 300
	}`), &v))
	status, ok := v.Status()
	require.True(t, ok)
	assert.Equal(t, Status("rate_limited"), status)
	channel, _ := v.Channel()
	assert.Equal(t, Channel("whatsapp"), channel)

	_, err := DecodeVerification(map[string]any{"id": "x", "status": "rate_limited"},
		model.WithEnumPolicy("Verification.status", model.EnumStrict))
	assert.ErrorIs(t, err, model.ErrUnknownEnumValue)
}

func TestCodeResult(t *testing.T) {
	r, err := DecodeCodeResult(map[string]any{"phone_number": "+1", "response_code": "accepted"})
	require.NoError(t, err)
	assert.True(t, r.Accepted())

	r, err = DecodeCodeResult(map[string]any{"phone_number": "+1", "response_code": "expired"})
	require.NoError(t, err)
	assert.False(t, r.Accepted())
}
