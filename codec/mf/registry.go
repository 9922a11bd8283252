package mf

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ugparu/mfcore"
	"github.com/ugparu/mfcore/utils"
	"github.com/ugparu/mfcore/utils/logger"
)

// Descriptor names a type or format that has a statically declared identifier.
type Descriptor string

// Registry maps descriptors to identifiers. Collaborators populate it at startup.
type Registry struct {
	mu  sync.RWMutex
	ids map[Descriptor]uuid.UUID
}

// DefaultRegistry is the process-wide registry used by Register and IdentifierFor.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[Descriptor]uuid.UUID),
	}
}

func (*Registry) String() string {
	return "mf.Registry"
}

func validateEntry(desc Descriptor, id uuid.UUID) error {
	if desc == "" {
		return utils.InvalidArgumentError{Arg: "descriptor", Reason: "empty"}
	}
	if id == uuid.Nil {
		return utils.InvalidArgumentError{Arg: "id", Reason: fmt.Sprintf("nil identifier for %q", desc)}
	}
	return nil
}

// Register associates id with desc. Registering a descriptor twice is an error.
func (r *Registry) Register(desc Descriptor, id uuid.UUID) error {
	if err := validateEntry(desc, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.ids[desc]; ok {
		return utils.InvalidArgumentError{
			Arg:    "descriptor",
			Reason: fmt.Sprintf("%q already registered as %s", desc, prev),
		}
	}
	r.ids[desc] = id
	logger.Debugf(r, "registered %s as %s", desc, id)
	return nil
}

// MustRegister is Register that panics on error, for static startup tables.
func (r *Registry) MustRegister(desc Descriptor, id uuid.UUID) {
	if err := r.Register(desc, id); err != nil {
		panic(err)
	}
}

// Lookup returns the identifier registered for desc.
func (r *Registry) Lookup(desc Descriptor) (uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.ids[desc]
	if !ok {
		return uuid.Nil, utils.NotFoundError{Descriptor: string(desc)}
	}
	return id, nil
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Descriptors returns the registered descriptors in sorted order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	descs := make([]Descriptor, 0, len(r.ids))
	for desc := range r.ids {
		descs = append(descs, desc)
	}
	r.mu.RUnlock()

	slices.Sort(descs)
	return descs
}

// LoadYAML registers every entry of a YAML mapping of descriptor to identifier string:
//
//	MFVideoFormat_NV12: 3231564e-0000-0010-8000-00aa00389b71
//
// Either all entries are registered or none.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var doc map[string]string
	if err := yaml.NewDecoder(rd).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode registry: %w", err)
	}

	entries := make(map[Descriptor]uuid.UUID, len(doc))
	for desc, s := range doc {
		id, err := uuid.Parse(s)
		if err != nil {
			return utils.InvalidArgumentError{Arg: desc, Reason: err.Error()}
		}
		if err = validateEntry(Descriptor(desc), id); err != nil {
			return err
		}
		entries[Descriptor(desc)] = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for desc := range entries {
		if _, ok := r.ids[desc]; ok {
			return utils.InvalidArgumentError{Arg: "descriptor", Reason: fmt.Sprintf("%q already registered", desc)}
		}
	}
	for desc, id := range entries {
		r.ids[desc] = id
	}
	logger.Debugf(r, "loaded %d identifiers", len(entries))
	return nil
}

// MarshalJSON encodes the registry as an object of descriptor to identifier string.
func (r *Registry) MarshalJSON() ([]byte, error) {
	r.mu.RLock()
	out := make(map[string]string, len(r.ids))
	for desc, id := range r.ids {
		out[string(desc)] = id.String()
	}
	r.mu.RUnlock()

	return json.Marshal(out)
}

// RegisterPixelFormats registers the video subtype of every known pixel format
// under its name, e.g. "NV12".
func RegisterPixelFormats(r *Registry) error {
	for _, pf := range mfcore.PixelFormats() {
		id, err := SubtypeFor(pf)
		if err != nil {
			return err
		}
		if err = r.Register(Descriptor(pf.String()), id); err != nil {
			return err
		}
	}
	return nil
}

// Register associates id with desc in DefaultRegistry.
func Register(desc Descriptor, id uuid.UUID) error {
	return DefaultRegistry.Register(desc, id)
}

// IdentifierFor looks desc up in DefaultRegistry.
func IdentifierFor(desc Descriptor) (uuid.UUID, error) {
	return DefaultRegistry.Lookup(desc)
}
