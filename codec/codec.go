// Package codec holds encode/decode pairs for values kept in kvcache.
//
// A Decode method value is a ready-made transform:
//
//	n, ok, err := kvcache.GetWith(ctx, cache, key, codec.Int{}.Decode)
//
// Structured codecs pair with kvcache.StoreAs for values that are not scalars.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
