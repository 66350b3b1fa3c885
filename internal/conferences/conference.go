package conferences

import "github.com/danmuck/callsdk/internal/model"

// Conference is a conference as returned by the API.
type Conference struct {
	rec model.Record
}

func DecodeConference(payload map[string]any, opts ...model.Option) (Conference, error) {
	rec, err := model.Decode(ConferenceSchema, payload, opts...)
	if err != nil {
		return Conference{}, err
	}
	return Conference{rec: rec}, nil
}

func (c Conference) Record() model.Record { return ConferenceSchema.Ensure(c.rec) }

func (c Conference) ID() string {
	s, _ := c.Record().GetString("id")
	return s
}

func (c Conference) Name() string {
	s, _ := c.Record().GetString("name")
	return s
}

// Status may hold a value newer than the known constants.
func (c Conference) Status() (Status, bool) {
	s, ok := c.Record().GetString("status")
	return Status(s), ok
}

func (c Conference) EndReason() (EndReason, bool) {
	s, ok := c.Record().GetString("endReason")
	return EndReason(s), ok
}

func (c Conference) EndedBy() (map[string]string, bool) {
	return c.Record().GetStringMap("endedBy")
}

func (c Conference) Region() (string, bool) {
	return c.Record().GetString("region")
}

func (c Conference) MarshalJSON() ([]byte, error) { return model.Marshal(c.Record()) }

func (c *Conference) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(ConferenceSchema, data)
	if err != nil {
		return err
	}
	c.rec = rec
	return nil
}

// List is one page of conferences.
type List struct {
	rec model.Record
}

func DecodeList(payload map[string]any, opts ...model.Option) (List, error) {
	rec, err := model.Decode(ListSchema, payload, opts...)
	if err != nil {
		return List{}, err
	}
	return List{rec: rec}, nil
}

func (l List) Record() model.Record { return ListSchema.Ensure(l.rec) }

func (l List) Data() []Conference {
	recs, _ := l.Record().GetRecords("data")
	out := make([]Conference, len(recs))
	for i, rec := range recs {
		out[i] = Conference{rec: rec}
	}
	return out
}

// TotalPages returns zero when the page carries no meta.
func (l List) TotalPages() int64 {
	meta, _ := l.Record().GetRecord("meta")
	n, _ := meta.GetInt("totalPages")
	return n
}

func (l List) MarshalJSON() ([]byte, error) { return model.Marshal(l.Record()) }

func (l *List) UnmarshalJSON(data []byte) error {
	rec, err := model.Unmarshal(ListSchema, data)
	if err != nil {
		return err
	}
	l.rec = rec
	return nil
}
