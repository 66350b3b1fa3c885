package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pingSchema = model.NewSchema("PingParams",
		model.Field("target", "target", model.String, model.Required()),
	)
	pongSchema = model.NewSchema("Pong",
		model.Field("latency", "latency_ms", model.Int),
		model.Field("status", "status", model.String),
	)
)

func TestRegisterAndLookup(t *testing.T) {
	testlog.Start(t)
	r := New()
	require.NoError(t, r.Register(Entry{Schema: pongSchema, Group: "ping", Direction: Response}))
	require.NoError(t, r.Register(Entry{Schema: pingSchema, Group: "ping", Direction: Request, Summary: "ping a host"}))

	s, ok := r.Lookup("PingParams")
	require.True(t, ok)
	assert.Same(t, pingSchema, s)

	_, ok = r.Lookup("Missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"PingParams", "Pong"}, r.Names())
	assert.Equal(t, 2, r.Len())

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, Info{
		Name:      "PingParams",
		Group:     "ping",
		Direction: Request,
		Fields:    1,
		Required:  []string{"target"},
		Summary:   "ping a host",
	}, list[0])
	assert.Equal(t, "Pong", list[1].Name)
	assert.Nil(t, list[1].Required)
}

func TestRegisterRejectsDuplicatesAndInvalid(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Entry{Schema: pingSchema, Group: "ping", Direction: Request}))

	err := r.Register(Entry{Schema: pingSchema, Group: "ping", Direction: Request})
	assert.ErrorIs(t, err, ErrSchemaExists)

	assert.ErrorIs(t, r.Register(Entry{Group: "ping", Direction: Request}), ErrSchemaNil)
	assert.ErrorIs(t, r.Register(Entry{Schema: pongSchema, Direction: Response}), ErrInvalidEntry)
	assert.ErrorIs(t, r.Register(Entry{Schema: pongSchema, Group: "ping", Direction: "sideways"}), ErrInvalidEntry)

	lower := model.NewSchema("pong", model.Field("a", "a", model.String))
	assert.ErrorIs(t, r.Register(Entry{Schema: lower, Group: "ping", Direction: Shared}), ErrInvalidEntry)

	assert.Panics(t, func() {
		r.MustRegister(Entry{Schema: pingSchema, Group: "ping", Direction: Request})
	})
}

func TestDescribe(t *testing.T) {
	r := New()
	r.MustRegister(Entry{Schema: pongSchema, Group: "ping", Direction: Response})

	fields, err := r.Describe("Pong")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "latency_ms", fields[0].WireName)
	assert.Equal(t, model.KindInt, fields[0].Type.Kind)

	_, err = r.Describe("Nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConcurrentLookup(t *testing.T) {
	r := New()
	r.MustRegister(Entry{Schema: pingSchema, Group: "ping", Direction: Request})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Lookup("PingParams"); !ok {
					t.Errorf("lookup failed")
					return
				}
				_ = r.List()
			}
		}()
	}
	wg.Wait()
}

func TestIsValidName(t *testing.T) {
	cases := map[string]bool{
		"SendDTMFParams":   true,
		"TeXMLCallCreate2": true,
		"":                 false,
		"lower":            false,
		"With Space":       false,
		"Under_score":      false,
		"9Lives":           false,
	}
	for name, want := range cases {
		assert.Equal(t, want, isValidName(name), name)
	}
}
