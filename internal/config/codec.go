package config

import (
	"fmt"
	"sort"

	"github.com/danmuck/callsdk/internal/model"
)

// CodecOptions converts the decode section into model options.
func (c Config) CodecOptions() ([]model.Option, error) {
	var opts []model.Option
	if c.Decode.CollectAll {
		opts = append(opts, model.CollectAll())
	}
	if c.Decode.RetainUnknown {
		opts = append(opts, model.RetainUnknown())
	}
	keys := make([]string, 0, len(c.Decode.EnumPolicies))
	for key := range c.Decode.EnumPolicies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p, err := model.ParseEnumPolicy(c.Decode.EnumPolicies[key])
		if err != nil {
			return nil, fmt.Errorf("enum_policies[%q]: %w", key, err)
		}
		opts = append(opts, model.WithEnumPolicy(key, p))
	}
	return opts, nil
}

// Codec builds the codec described by the decode section.
func (c Config) Codec() (*model.Codec, error) {
	opts, err := c.CodecOptions()
	if err != nil {
		return nil, err
	}
	return model.NewCodec(opts...), nil
}
