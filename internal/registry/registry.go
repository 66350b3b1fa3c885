package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/rs/zerolog/log"
)

var (
	ErrSchemaExists = errors.New("registry: schema already registered")
	ErrSchemaNil    = errors.New("registry: schema is nil")
	ErrInvalidEntry = errors.New("registry: invalid entry")
	ErrNotFound     = errors.New("registry: schema not found")
)

// Direction says whether a record is sent to the API or received from it.
type Direction string

const (
	Request  Direction = "request"
	Response Direction = "response"
	Shared   Direction = "shared"
)

// Entry binds a schema to the API resource it belongs to.
type Entry struct {
	Schema    *model.Schema
	Group     string // API resource, e.g. "calls"
	Direction Direction
	Summary   string
}

// Info is the listing view of an entry.
type Info struct {
	Name      string    `json:"name"`
	Group     string    `json:"group"`
	Direction Direction `json:"direction"`
	Fields    int       `json:"fields"`
	Required  []string  `json:"required"`
	Summary   string    `json:"summary,omitempty"`
}

// Registry stores record schemas by name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{items: make(map[string]Entry)}
}

// ValidateEntry checks the entry's schema, group, and name format.
func ValidateEntry(e Entry) error {
	if e.Schema == nil {
		return ErrSchemaNil
	}
	if strings.TrimSpace(e.Group) == "" {
		return fmt.Errorf("%w: %s has no group", ErrInvalidEntry, e.Schema.Name())
	}
	if !isValidName(e.Schema.Name()) {
		return fmt.Errorf("%w: invalid record name %q", ErrInvalidEntry, e.Schema.Name())
	}
	switch e.Direction {
	case Request, Response, Shared:
	default:
		return fmt.Errorf("%w: %s has direction %q", ErrInvalidEntry, e.Schema.Name(), e.Direction)
	}
	return nil
}

// Register adds an entry keyed by its schema name.
func (r *Registry) Register(e Entry) error {
	if err := ValidateEntry(e); err != nil {
		return err
	}
	name := e.Schema.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrSchemaExists, name)
	}
	r.items[name] = e
	log.Debug().Str("record", name).Str("group", e.Group).Msg("schema registered")
	return nil
}

// MustRegister is Register for package-level catalogs.
func (r *Registry) MustRegister(entries ...Entry) {
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*model.Schema, bool) {
	e, ok := r.Entry(name)
	return e.Schema, ok
}

func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[name]
	return e, ok
}

// Describe returns the field table of the schema registered under name.
func (r *Registry) Describe(name string) ([]model.FieldDescriptor, error) {
	s, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return model.Describe(s), nil
}

// Names returns registered record names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns deterministic entry info ordered by group then name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	list := make([]Info, 0, len(r.items))
	for name, e := range r.items {
		list = append(list, Info{
			Name:      name,
			Group:     e.Group,
			Direction: e.Direction,
			Fields:    e.Schema.Len(),
			Required:  e.Schema.Required(),
			Summary:   e.Summary,
		})
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Group != list[j].Group {
			return list[i].Group < list[j].Group
		}
		return list[i].Name < list[j].Name
	})
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// isValidName accepts exported Go-style identifiers: an upper-case letter
// followed by letters and digits.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isUpper {
			return false
		}
		if !(isUpper || isLower || isDigit) {
			return false
		}
	}
	return true
}
