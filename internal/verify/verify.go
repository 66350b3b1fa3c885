// Package verify declares phone-number verification records.
package verify

import "github.com/danmuck/callsdk/internal/model"

type Channel string

const (
	ChannelSMS       Channel = "sms"
	ChannelCall      Channel = "call"
	ChannelFlashcall Channel = "flashcall"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusInvalid  Status = "invalid"
	StatusExpired  Status = "expired"
	StatusError    Status = "error"
)

// CodeResponse is the outcome of checking a submitted code.
type CodeResponse string

const (
	CodeAccepted CodeResponse = "accepted"
	CodeRejected CodeResponse = "rejected"
)

var (
	ChannelEnum      = model.NewEnum("VerificationChannel", string(ChannelSMS), string(ChannelCall), string(ChannelFlashcall))
	StatusEnum       = model.NewEnum("VerificationStatus", string(StatusPending), string(StatusAccepted), string(StatusInvalid), string(StatusExpired), string(StatusError))
	CodeResponseEnum = model.NewEnum("VerifyCodeResponse", string(CodeAccepted), string(CodeRejected))
)

var CreateParamsSchema = model.NewSchema("CreateVerificationParams",
	model.Field("phoneNumber", "phone_number", model.String, model.Required()),
	model.Field("verifyProfileID", "verify_profile_id", model.String, model.Required()),
	model.Field("customCode", "custom_code", model.String, model.Nullable()),
	model.Field("timeoutSecs", "timeout_secs", model.Int),
	model.Field("extension", "extension", model.String, model.Nullable()),
)

var VerifyCodeParamsSchema = model.NewSchema("VerifyCodeParams",
	model.Field("code", "code", model.String, model.Required()),
	model.Field("verifyProfileID", "verify_profile_id", model.String, model.Required()),
)

var VerificationSchema = model.NewSchema("Verification",
	model.Field("id", "id", model.String, model.Required()),
	model.Field("phoneNumber", "phone_number", model.String),
	model.Field("recordType", "record_type", model.String),
	model.Field("status", "status", model.EnumOf(StatusEnum), model.Permissive()),
	model.Field("timeoutSecs", "timeout_secs", model.Int),
	model.Field("type", "type", model.EnumOf(ChannelEnum), model.Permissive()),
	model.Field("verifyProfileID", "verify_profile_id", model.String),
	model.Field("createdAt", "created_at", model.String),
	model.Field("updatedAt", "updated_at", model.String),
)

var CodeResultSchema = model.NewSchema("VerifyCodeResult",
	model.Field("phoneNumber", "phone_number", model.String, model.Required()),
	model.Field("responseCode", "response_code", model.EnumOf(CodeResponseEnum), model.Permissive(), model.Required()),
)

// CreateParams starts a verification on a channel chosen by the endpoint.
type CreateParams struct {
	rec model.Record
}

func NewCreateParams(phoneNumber, verifyProfileID string) CreateParams {
	return CreateParams{rec: CreateParamsSchema.New().
		With("phoneNumber", phoneNumber).
		With("verifyProfileID", verifyProfileID)}
}

func (p CreateParams) Record() model.Record { return CreateParamsSchema.Ensure(p.rec) }

func (p CreateParams) PhoneNumber() string {
	s, _ := p.Record().GetString("phoneNumber")
	return s
}

func (p CreateParams) WithCustomCode(code string) CreateParams {
	return CreateParams{rec: p.Record().With("customCode", code)}
}

func (p CreateParams) WithTimeoutSecs(secs int) CreateParams {
	return CreateParams{rec: p.Record().With("timeoutSecs", secs)}
}

// WithExtension sets DTMF digits dialed after the call connects. Only the
// call channel uses it.
func (p CreateParams) WithExtension(ext string) CreateParams {
	return CreateParams{rec: p.Record().With("extension", ext)}
}

func (p CreateParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p CreateParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

type VerifyCodeParams struct {
	rec model.Record
}

func NewVerifyCodeParams(code, verifyProfileID string) VerifyCodeParams {
	return VerifyCodeParams{rec: VerifyCodeParamsSchema.New().
		With("code", code).
		With("verifyProfileID", verifyProfileID)}
}

func (p VerifyCodeParams) Record() model.Record { return VerifyCodeParamsSchema.Ensure(p.rec) }

func (p VerifyCodeParams) Encode() (map[string]any, error) { return model.Encode(p.Record()) }

func (p VerifyCodeParams) MarshalJSON() ([]byte, error) { return model.Marshal(p.Record()) }

// Verification is a verification as returned by the API.
type Verification struct {
	rec model.Record
}

func DecodeVerification(payload map[string]any, opts ...model.Option) (Verification, error) {
	rec, err := model.Decode(VerificationSchema, payload, opts...)
	if err != nil {
		return Verification{}, err
	}
	return Verification{rec: rec}, nil
}

func (v Verification) Record() model.Record { return VerificationSchema.Ensure(v.rec) }

func (v Verification) ID() string {
	s, _ := v.Record().GetString("id")
	return s
}

func (v Verification) Status() (Status, bool) {
	s, ok := v.Record().GetString("status")
	return Status(s), ok
}

func (v Verification) Channel() (Channel, bool) {
	s, ok := v.Record().GetString("type")
	return Channel(s), ok
}

func (v Verification) MarshalJSON() ([]byte, error) { return model.Marshal(v.Record()) }

func (v *Verification) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(VerificationSchema, data)
	if err != nil {
		return err
	}
	v.rec = rec
	return nil
}

type CodeResult struct {
	rec model.Record
}

func DecodeCodeResult(payload map[string]any, opts ...model.Option) (CodeResult, error) {
	rec, err := model.Decode(CodeResultSchema, payload, opts...)
	if err != nil {
		return CodeResult{}, err
	}
	return CodeResult{rec: rec}, nil
}

func (r CodeResult) Record() model.Record { return CodeResultSchema.Ensure(r.rec) }

func (r CodeResult) Accepted() bool {
	s, _ := r.Record().GetString("responseCode")
	return CodeResponse(s) == CodeAccepted
}
