package codec

import "sync"

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or media type
	order  []Codec          // registration order, for Detect
}

var defaultRegistry = &Registry{
	codecs: make(map[string]Codec),
}

// Register registers a codec with the default registry
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or media type
func Get(nameOrType string) (Codec, error) {
	return defaultRegistry.Get(nameOrType)
}

// Detect finds a codec whose signature matches the given stream prefix
func Detect(prefix []byte) (Codec, error) {
	return defaultRegistry.Detect(prefix)
}

// List returns all registered codecs
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec using both its name and media type
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	r.codecs[codec.Name()] = codec
	r.codecs[codec.MediaType()] = codec
	r.order = append(r.order, codec)
}

// Get retrieves a codec by name or media type
func (r *Registry) Get(nameOrType string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrType]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// Detect finds a codec whose signature matches the given stream prefix.
// Codecs are consulted in registration order.
func (r *Registry) Detect(prefix []byte) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, codec := range r.order {
		if codec.Sniff(prefix) {
			return codec, nil
		}
	}
	return nil, ErrCodecNotFound
}

// List returns all registered codecs (deduplicated)
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, len(r.order))
	copy(codecs, r.order)
	return codecs
}
