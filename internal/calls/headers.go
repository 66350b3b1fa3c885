package calls

import "github.com/danmuck/callsdk/internal/model"

// CustomSIPHeader is an extra header added to the outbound SIP INVITE.
type CustomSIPHeader struct {
	rec model.Record
}

func NewCustomSIPHeader(name, value string) CustomSIPHeader {
	return CustomSIPHeader{rec: CustomSIPHeaderSchema.New().With("name", name).With("value", value)}
}

func (h CustomSIPHeader) Record() model.Record { return CustomSIPHeaderSchema.Ensure(h.rec) }

func (h CustomSIPHeader) Name() string {
	s, _ := h.Record().GetString("name")
	return s
}

func (h CustomSIPHeader) Value() string {
	s, _ := h.Record().GetString("value")
	return s
}

func customHeaders(r model.Record) ([]CustomSIPHeader, bool) {
	recs, ok := r.GetRecords("customHeaders")
	if !ok {
		return nil, false
	}
	out := make([]CustomSIPHeader, len(recs))
	for i, rec := range recs {
		out[i] = CustomSIPHeader{rec: rec}
	}
	return out, true
}

// AMDConfig tunes answering machine detection.
type AMDConfig struct {
	rec model.Record
}

func NewAMDConfig() AMDConfig {
	return AMDConfig{rec: AnsweringMachineDetectionConfigSchema.New()}
}

func (c AMDConfig) Record() model.Record {
	return AnsweringMachineDetectionConfigSchema.Ensure(c.rec)
}

func (c AMDConfig) TotalAnalysisTimeMillis() (int64, bool) {
	return c.Record().GetInt("totalAnalysisTimeMillis")
}

func (c AMDConfig) GreetingDurationMillis() (int64, bool) {
	return c.Record().GetInt("greetingDurationMillis")
}

func (c AMDConfig) WithAfterGreetingSilenceMillis(ms int) AMDConfig {
	return AMDConfig{rec: c.Record().With("afterGreetingSilenceMillis", ms)}
}

func (c AMDConfig) WithBetweenWordsSilenceMillis(ms int) AMDConfig {
	return AMDConfig{rec: c.Record().With("betweenWordsSilenceMillis", ms)}
}

func (c AMDConfig) WithGreetingDurationMillis(ms int) AMDConfig {
	return AMDConfig{rec: c.Record().With("greetingDurationMillis", ms)}
}

func (c AMDConfig) WithInitialSilenceMillis(ms int) AMDConfig {
	return AMDConfig{rec: c.Record().With("initialSilenceMillis", ms)}
}

func (c AMDConfig) WithMaximumNumberOfWords(n int) AMDConfig {
	return AMDConfig{rec: c.Record().With("maximumNumberOfWords", n)}
}

func (c AMDConfig) WithSilenceThreshold(n int) AMDConfig {
	return AMDConfig{rec: c.Record().With("silenceThreshold", n)}
}

func (c AMDConfig) WithTotalAnalysisTimeMillis(ms int) AMDConfig {
	return AMDConfig{rec: c.Record().With("totalAnalysisTimeMillis", ms)}
}
