package model

// Option configures a Codec.
type Option func(*converter)

// CollectAll reports every field violation instead of stopping at the first.
// The returned error joins one FieldError per violation.
func CollectAll() Option {
	return func(c *converter) { c.collect = true }
}

// WithEnumPolicy overrides the enum policy of one field, addressed as
// "SchemaName.wire_name".
func WithEnumPolicy(field string, p EnumPolicy) Option {
	return func(c *converter) {
		if c.policies == nil {
			c.policies = make(map[string]EnumPolicy)
		}
		c.policies[field] = p
	}
}

// RetainUnknown makes Encode re-emit payload keys kept from decode.
func RetainUnknown() Option {
	return func(c *converter) { c.unknown = true }
}

// Codec decodes and encodes records with a fixed set of options. A Codec is
// immutable and safe for concurrent use.
type Codec struct {
	conv converter
}

// NewCodec builds a Codec from opts.
func NewCodec(opts ...Option) *Codec {
	var conv converter
	for _, opt := range opts {
		opt(&conv)
	}
	if conv.policies != nil {
		policies := make(map[string]EnumPolicy, len(conv.policies))
		for k, v := range conv.policies {
			policies[k] = v
		}
		conv.policies = policies
	}
	return &Codec{conv: conv}
}

// Decode converts payload into a record of schema s.
func (c *Codec) Decode(s *Schema, payload map[string]any) (Record, error) {
	if s == nil {
		return Record{}, ErrNoSchema
	}
	return c.conv.decodeRecord(s, payload, location{})
}

// Encode lowers r to a wire payload. Unset optional fields are omitted.
func (c *Codec) Encode(r Record) (map[string]any, error) {
	return c.conv.encodeRecord(r, location{})
}

// Validate runs the encode-time checks on r without producing output.
func (c *Codec) Validate(r Record) error {
	_, err := c.conv.encodeRecord(r, location{})
	return err
}

// Decode converts payload into a record of schema s.
func Decode(s *Schema, payload map[string]any, opts ...Option) (Record, error) {
	return NewCodec(opts...).Decode(s, payload)
}

// Encode lowers r to a wire payload.
func Encode(r Record, opts ...Option) (map[string]any, error) {
	return NewCodec(opts...).Encode(r)
}

// Validate reports whether r is complete and well-typed.
func (r Record) Validate(opts ...Option) error {
	return NewCodec(opts...).Validate(r)
}
