// Package inspect serves the record catalog over HTTP: schema listing,
// JSON Schema export, and decode/validate of raw payloads.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/danmuck/callsdk/internal/auth"
	"github.com/danmuck/callsdk/internal/config"
	"github.com/danmuck/callsdk/internal/jschema"
	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/observability"
	"github.com/danmuck/callsdk/internal/registry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/jsonschema-go/jsonschema"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// Server is the inspector HTTP service.
type Server struct {
	Name     string
	Addr     string
	Registry *registry.Registry
	Started  time.Time

	router  *gin.Engine
	state   atomic.Pointer[state]
	schemas *lru.Cache[string, *jsonschema.Resolved]
}

// state is swapped as a whole on reload.
type state struct {
	cfg     config.Config
	codec   *model.Codec
	collect *model.Codec
}

// New builds a server for reg configured by cfg. Routes are registered by
// RegisterRoutes.
func New(cfg config.Config, reg *registry.Registry) (*Server, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("inspect: %w", registry.ErrSchemaNil)
	}
	cache, err := lru.New[string, *jsonschema.Resolved](cfg.SchemaCacheSize)
	if err != nil {
		return nil, fmt.Errorf("inspect: schema cache: %w", err)
	}

	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CorsOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", observability.HeaderRequestID},
			ExposeHeaders: []string{observability.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		Name:     cfg.Name,
		Addr:     cfg.Addr,
		Registry: reg,
		Started:  time.Now(),
		router:   r,
		schemas:  cache,
	}
	if err := s.Apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// Config returns the configuration currently in effect.
func (s *Server) Config() config.Config {
	return s.state.Load().cfg
}

// Apply swaps the decode options. Requests in flight keep the codec they
// started with.
func (s *Server) Apply(cfg config.Config) error {
	opts, err := cfg.CodecOptions()
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	collect := append(append([]model.Option(nil), opts...), model.CollectAll())
	s.state.Store(&state{
		cfg:     cfg,
		codec:   model.NewCodec(opts...),
		collect: model.NewCodec(collect...),
	})
	return nil
}

func (s *Server) RegisterRoutes() {
	r := s.router
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Started).String(),
			"service": s.Name,
		})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   s.Registry.Len() > 0,
			"records": s.Registry.Len(),
			"service": s.Name,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/records", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"records": s.Registry.Names()})
	})
	r.GET("/records/:name", s.withEntry(s.describe))
	r.GET("/records/:name/schema", s.withEntry(s.schema))

	post := r.Group("/records/:name")
	if token := s.Config().AuthToken; token != "" {
		post.Use(auth.RequireBearer(auth.StaticToken{Token: token}))
	}
	post.POST("/decode", s.withEntry(s.decode))
	post.POST("/validate", s.withEntry(s.validate))
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info().Str("service", s.Name).Str("addr", s.Addr).Int("records", s.Registry.Len()).Msg("inspector listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("inspect: shutdown: %w", err)
		}
		log.Info().Str("service", s.Name).Msg("inspector stopped")
		return nil
	}
}

type entryHandler func(c *gin.Context, entry registry.Entry)

func (s *Server) withEntry(h entryHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		entry, ok := s.Registry.Entry(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("record %q not found", name)})
			return
		}
		h(c, entry)
	}
}

func (s *Server) describe(c *gin.Context, entry registry.Entry) {
	c.JSON(http.StatusOK, gin.H{
		"name":      entry.Schema.Name(),
		"group":     entry.Group,
		"direction": entry.Direction,
		"summary":   entry.Summary,
		"fields":    fieldViews(entry.Schema),
	})
}

func (s *Server) schema(c *gin.Context, entry registry.Entry) {
	c.JSON(http.StatusOK, jschema.FromSchema(entry.Schema))
}

func (s *Server) decode(c *gin.Context, entry registry.Entry) {
	name := entry.Schema.Name()
	payload, ok := s.readPayload(c, name)
	if !ok {
		return
	}
	st := s.state.Load()
	rec, err := st.codec.Decode(entry.Schema, payload)
	if err != nil {
		observability.RecordDecode(name, observability.OutcomeInvalid)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": s.errorViews(name, err)})
		return
	}
	out, err := st.codec.Encode(rec)
	if err != nil {
		log.Error().Str("record", name).Err(err).Msg("re-encode of decoded record failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	observability.RecordDecode(name, observability.OutcomeOK)
	c.JSON(http.StatusOK, gin.H{"record": out, "unknown": rec.Extra()})
}

func (s *Server) validate(c *gin.Context, entry registry.Entry) {
	name := entry.Schema.Name()
	body, ok := s.readBody(c, name)
	if !ok {
		return
	}
	payload, err := model.ParsePayload(body)
	if err != nil {
		observability.RecordDecode(name, observability.OutcomeBadBody)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"valid": true}
	rs, err := s.resolved(entry.Schema)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := jschema.Validate(rs, body); err != nil {
		resp["valid"] = false
		resp["schema_error"] = err.Error()
	}
	if _, err := s.state.Load().collect.Decode(entry.Schema, payload); err != nil {
		resp["valid"] = false
		resp["errors"] = s.errorViews(name, err)
		observability.RecordDecode(name, observability.OutcomeInvalid)
	} else {
		observability.RecordDecode(name, observability.OutcomeOK)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) readBody(c *gin.Context, name string) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		observability.RecordDecode(name, observability.OutcomeBadBody)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (s *Server) readPayload(c *gin.Context, name string) (map[string]any, bool) {
	body, ok := s.readBody(c, name)
	if !ok {
		return nil, false
	}
	payload, err := model.ParsePayload(body)
	if err != nil {
		observability.RecordDecode(name, observability.OutcomeBadBody)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return payload, true
}

func (s *Server) resolved(schema *model.Schema) (*jsonschema.Resolved, error) {
	if rs, ok := s.schemas.Get(schema.Name()); ok {
		return rs, nil
	}
	rs, err := jschema.Resolve(schema)
	if err != nil {
		return nil, err
	}
	s.schemas.Add(schema.Name(), rs)
	return rs, nil
}

func (s *Server) errorViews(record string, err error) []ErrorView {
	views := errorViews(err)
	for _, v := range views {
		observability.RecordFieldError(record, v.Kind)
	}
	return views
}
