package kvcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// The provider's active namespace was flushed during New.
	Flushed()

	// A read found no value for key.
	Miss(key string)

	// A transform rejected the bytes stored under key.
	TransformFailed(key string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Flushed()                      {}
func (NopHooks) Miss(string)                   {}
func (NopHooks) TransformFailed(string, error) {}
