package jschema

import (
	"encoding/json"
	"testing"

	"github.com/danmuck/callsdk/internal/calls"
	"github.com/danmuck/callsdk/internal/catalog"
	"github.com/danmuck/callsdk/internal/conferences"
	"github.com/danmuck/callsdk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSchemaShape(t *testing.T) {
	js := FromSchema(calls.DialParamsSchema)
	assert.Equal(t, Draft, js.Schema)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, "DialParams", js.Title)
	assert.Equal(t, []string{"connection_id", "to", "from"}, js.Required)

	to := js.Properties["to"]
	require.Len(t, to.AnyOf, 2)
	assert.Equal(t, "string", to.AnyOf[0].Type)
	assert.Equal(t, "array", to.AnyOf[1].Type)

	headers := js.Properties["custom_headers"]
	assert.Equal(t, "array", headers.Type)
	assert.Equal(t, []string{"name", "value"}, headers.Items.Required)

	amd := js.Properties["answering_machine_detection"]
	assert.Contains(t, amd.Enum, "detect_beep")
}

func TestNullableAndPermissive(t *testing.T) {
	js := FromSchema(conferences.ConferenceSchema)

	region := js.Properties["region"]
	assert.Equal(t, []string{"string", "null"}, region.Types)

	status := js.Properties["status"]
	assert.Nil(t, status.Enum)
	assert.Contains(t, status.Examples, "in_progress")

	endedBy := js.Properties["ended_by"]
	assert.Equal(t, []string{"object", "null"}, endedBy.Types)
	assert.Equal(t, "string", endedBy.AdditionalProperties.Type)
}

func TestValidate(t *testing.T) {
	rs, err := Resolve(calls.SendDTMFParamsSchema)
	require.NoError(t, err)

	assert.NoError(t, Validate(rs, []byte(`{"digits":"1234","call_control_ids":["abc"],"duration_millis":250}`)))
	assert.NoError(t, Validate(rs, []byte(`{"digits":"1","extra_key":true}`)))
	assert.Error(t, Validate(rs, []byte(`{"call_control_ids":["abc"]}`)))
	assert.Error(t, Validate(rs, []byte(`{"digits":"1","duration_millis":2.5}`)))
	assert.Error(t, Validate(rs, []byte(`{"digits":`)))
}

func TestValidateStrictEnum(t *testing.T) {
	rs, err := Resolve(conferences.JoinParamsSchema)
	require.NoError(t, err)
	assert.NoError(t, Validate(rs, []byte(`{"call_control_id":"x","supervisor_role":"barge"}`)))
	assert.Error(t, Validate(rs, []byte(`{"call_control_id":"x","supervisor_role":"coach"}`)))
}

func TestEveryCatalogSchemaResolvesAndAcceptsExample(t *testing.T) {
	for _, e := range catalog.Entries() {
		rs, err := Resolve(e.Schema)
		require.NoError(t, err, e.Schema.Name())

		for _, nulls := range []bool{false, true} {
			data, err := model.Marshal(catalog.Example(e.Schema, nulls))
			require.NoError(t, err, e.Schema.Name())
			assert.NoError(t, Validate(rs, data), "%s nulls=%v", e.Schema.Name(), nulls)
		}
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(calls.CustomSIPHeaderSchema)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, Draft, doc["$schema"])
	assert.Equal(t, []any{"name", "value"}, doc["required"])
}
