// Package codec provides pluggable marshaling for rendered krpc values,
// used by the inspection tooling to emit decoded frames in a chosen format.
package codec

// Codec defines a simple interface for marshaling rendered values.
// Implementations should be deterministic so repeated dumps of the same
// frame compare equal.
type Codec interface {
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Registry maps format/content type aliases to codecs.
type Registry struct{ byType map[string]Codec }

// NewRegistry constructs a registry preloaded with JSON, the only built-in
// that needs no initialization. CBOR is added explicitly via Register.
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[string]Codec)}
	r.Register(JSON())
	return r
}

// Register adds a codec.
func (r *Registry) Register(c Codec) { r.byType[c.ContentType()] = c }

// Get returns a codec by content type, or nil.
func (r *Registry) Get(contentType string) Codec { return r.byType[contentType] }
