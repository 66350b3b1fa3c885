// Package catalog owns the process-wide registry of every record schema
// the SDK declares.
package catalog

import (
	"sync"

	"github.com/danmuck/callsdk/internal/calls"
	"github.com/danmuck/callsdk/internal/conferences"
	"github.com/danmuck/callsdk/internal/connections"
	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/registry"
	"github.com/danmuck/callsdk/internal/texml"
	"github.com/danmuck/callsdk/internal/verify"
)

var (
	once sync.Once
	reg  *registry.Registry
)

// Registry returns the shared registry, building it on first use.
func Registry() *registry.Registry {
	once.Do(func() {
		reg = New()
	})
	return reg
}

// New builds a fresh registry holding every catalog entry.
func New() *registry.Registry {
	r := registry.New()
	r.MustRegister(Entries()...)
	return r
}

// Entries lists the catalog in declaration order.
func Entries() []registry.Entry {
	return []registry.Entry{
		{Schema: calls.CustomSIPHeaderSchema, Group: "calls", Direction: registry.Shared, Summary: "custom SIP header"},
		{Schema: calls.AnsweringMachineDetectionConfigSchema, Group: "calls", Direction: registry.Request, Summary: "answering machine detection tuning"},
		{Schema: calls.SendDTMFParamsSchema, Group: "calls", Direction: registry.Request, Summary: "send DTMF digits"},
		{Schema: calls.DialParamsSchema, Group: "calls", Direction: registry.Request, Summary: "dial an outbound call"},
		{Schema: calls.AnswerParamsSchema, Group: "calls", Direction: registry.Request, Summary: "answer an incoming call"},
		{Schema: calls.HangupParamsSchema, Group: "calls", Direction: registry.Request, Summary: "hang up a call"},
		{Schema: calls.TransferParamsSchema, Group: "calls", Direction: registry.Request, Summary: "transfer a call"},
		{Schema: calls.CallSchema, Group: "calls", Direction: registry.Response, Summary: "call state"},
		{Schema: calls.CallResponseSchema, Group: "calls", Direction: registry.Response, Summary: "call state envelope"},
		{Schema: calls.CommandResultSchema, Group: "calls", Direction: registry.Response, Summary: "command acknowledgement"},
		{Schema: calls.CommandResponseSchema, Group: "calls", Direction: registry.Response, Summary: "command acknowledgement envelope"},

		{Schema: conferences.JoinParamsSchema, Group: "conferences", Direction: registry.Request, Summary: "join a conference"},
		{Schema: conferences.CreateParamsSchema, Group: "conferences", Direction: registry.Request, Summary: "create a conference"},
		{Schema: conferences.ConferenceSchema, Group: "conferences", Direction: registry.Response, Summary: "conference"},
		{Schema: conferences.PaginationMetaSchema, Group: "conferences", Direction: registry.Response, Summary: "page metadata"},
		{Schema: conferences.ListSchema, Group: "conferences", Direction: registry.Response, Summary: "conference page"},

		{Schema: connections.InboundSettingsSchema, Group: "connections", Direction: registry.Shared, Summary: "inbound call settings"},
		{Schema: connections.OutboundSettingsSchema, Group: "connections", Direction: registry.Shared, Summary: "outbound call settings"},
		{Schema: connections.RTCPSettingsSchema, Group: "connections", Direction: registry.Shared, Summary: "RTCP capture settings"},
		{Schema: connections.CreateCredentialConnectionParamsSchema, Group: "connections", Direction: registry.Request, Summary: "create a credential connection"},
		{Schema: connections.CredentialConnectionSchema, Group: "connections", Direction: registry.Response, Summary: "credential connection"},
		{Schema: connections.CredentialConnectionResponseSchema, Group: "connections", Direction: registry.Response, Summary: "credential connection envelope"},

		{Schema: verify.CreateParamsSchema, Group: "verify", Direction: registry.Request, Summary: "start a verification"},
		{Schema: verify.VerifyCodeParamsSchema, Group: "verify", Direction: registry.Request, Summary: "submit a verification code"},
		{Schema: verify.VerificationSchema, Group: "verify", Direction: registry.Response, Summary: "verification"},
		{Schema: verify.CodeResultSchema, Group: "verify", Direction: registry.Response, Summary: "code check result"},

		{Schema: texml.CustomHeaderSchema, Group: "texml", Direction: registry.Request, Summary: "TeXML custom SIP header"},
		{Schema: texml.CallCreateParamsSchema, Group: "texml", Direction: registry.Request, Summary: "start a TeXML call"},
		{Schema: texml.CallUpdateParamsSchema, Group: "texml", Direction: registry.Request, Summary: "update a TeXML call"},
		{Schema: texml.CallSchema, Group: "texml", Direction: registry.Response, Summary: "TeXML call"},
	}
}

// Lookup resolves a record name against the shared registry.
func Lookup(name string) (*model.Schema, bool) {
	return Registry().Lookup(name)
}
