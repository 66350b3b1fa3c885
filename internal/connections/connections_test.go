package connections

import (
	"encoding/json"
	"testing"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCredentialConnectionEncoding(t *testing.T) {
	testlog.Start(t)
	p := NewCreateCredentialConnectionParams("office", "office-user", "s3cret").
		WithActive(true).
		WithAnchorsiteOverride(AnchorsiteChicago).
		WithDTMFType(DTMFRFC2833).
		WithEncryptedMedia("").
		WithInbound(NewInboundSettings().
			WithANINumberFormat(ANIPlusE164).
			WithCodecs("G722", "PCMU").
			WithUnlimitedChannels()).
		WithOutbound(NewOutboundSettings().
			WithOutboundVoiceProfileID("ovp-1").
			WithT38ReinviteSource(T38CallerPassthru)).
		WithRTCPSettings(NewRTCPSettings(RTCPMux).WithReportFrequencySecs(10)).
		WithTags("hq", "sip")

	out, err := p.Encode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"connection_name":     "office",
		"user_name":           "office-user",
		"password":            "s3cret",
		"active":              true,
		"anchorsite_override": "Chicago, IL",
		"dtmf_type":           "RFC 2833",
		"encrypted_media":     nil,
		"inbound": map[string]any{
			"ani_number_format": "+E.164",
			"codecs":            []any{"G722", "PCMU"},
			"channel_limit":     nil,
		},
		"outbound": map[string]any{
			"outbound_voice_profile_id": "ovp-1",
			"t38_reinvite_source":       "caller-passthru",
		},
		"rtcp_settings": map[string]any{
			"port":                  "rtcp-mux",
			"report_frequency_secs": int64(10),
		},
		"tags": []any{"hq", "sip"},
	}, out)

	back, err := DecodeCreateCredentialConnectionParams(out)
	require.NoError(t, err)
	assert.True(t, back.Record().Equal(p.Record()))

	inbound, ok := back.Inbound()
	require.True(t, ok)
	assert.True(t, inbound.Record().IsNull("channelLimit"))
	_, ok = inbound.ChannelLimit()
	assert.False(t, ok)
	codecs, _ := inbound.Codecs()
	assert.Equal(t, []string{"G722", "PCMU"}, codecs)

	outbound, ok := back.Outbound()
	require.True(t, ok)
	src, _ := outbound.T38ReinviteSource()
	assert.Equal(t, T38CallerPassthru, src)
}

func TestCreateCredentialConnectionValidation(t *testing.T) {
	_, err := model.Make(CreateCredentialConnectionParamsSchema, map[string]any{
		"connectionName": "office",
		"userName":       "u",
	})
	fes := model.FieldErrors(err)
	require.Len(t, fes, 1)
	assert.Equal(t, "password", fes[0].Field)

	_, err = DecodeCreateCredentialConnectionParams(map[string]any{
		"connection_name": "office",
		"user_name":       "u",
		"password":        "p",
		"dtmf_type":       "rfc2833",
		"tags":            []any{"ok", 7.0},
		"inbound":         map[string]any{"dnis_number_format": "digits"},
	}, model.CollectAll())
	fes = model.FieldErrors(err)
	require.Len(t, fes, 3)
	assert.Equal(t, "dtmf_type", fes[0].Path)
	assert.ErrorIs(t, fes[0], model.ErrUnknownEnumValue)
	assert.Equal(t, "inbound.dnis_number_format", fes[1].Path)
	assert.Equal(t, "tags[1]", fes[2].Path)
	assert.ErrorIs(t, fes[2], model.ErrTypeMismatch)

	_, err = DecodeCreateCredentialConnectionParams(map[string]any{
		"connection_name":      "office",
		"user_name":            "u",
		"password":             "p",
		"webhook_timeout_secs": nil,
		"active":               nil,
	})
	require.ErrorIs(t, err, model.ErrUnexpectedNull)
	assert.Equal(t, "active", model.FieldErrors(err)[0].Path)
}

func TestCredentialConnectionResponse(t *testing.T) {
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"data": {
			"id": "1293384261075731499",
			"record_type": "credential_connection",
			"active": true,
			"anchorsite_override": "Frankfurt, Germany",
			"dtmf_type": "Inband",
			"tags": [],
			"inbound": {"ani_number_format": "E.164", "channel_limit": 10}
		}
	}`), &payload))

	resp, err := DecodeCredentialConnectionResponse(payload)
	require.NoError(t, err)
	conn := resp.Data()
	assert.Equal(t, "1293384261075731499", conn.ID())
	assert.True(t, conn.Active())

	site, ok := conn.AnchorsiteOverride()
	require.True(t, ok)
	assert.Equal(t, AnchorsiteOverride("Frankfurt, Germany"), site)

	tags, ok := conn.Tags()
	require.True(t, ok)
	assert.Empty(t, tags)

	inbound, _ := conn.Inbound()
	limit, ok := inbound.ChannelLimit()
	require.True(t, ok)
	assert.Equal(t, int64(10), limit)
}
