package core

import "encoding/json"

// Codec translates artifact handles to and from the opaque bytes a Container
// stores. It is the single capability the version store needs from the
// plotting collaborator: the store itself never inspects artifact contents.
type Codec[T any] interface {
	Marshal(artifact T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// RawCodec passes byte slices through unchanged apart from copying, so
// callers and the container never share backing arrays. It is the codec of
// choice when artifacts are already serialized (the CLI always uses it).
type RawCodec struct{}

// Marshal returns a copy of the artifact bytes.
func (RawCodec) Marshal(artifact []byte) ([]byte, error) {
	cp := make([]byte, len(artifact))
	copy(cp, artifact)
	return cp, nil
}

// Unmarshal returns a copy of the stored bytes.
func (RawCodec) Unmarshal(data []byte) ([]byte, error) {
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// JSONCodec stores artifacts as their JSON encoding. Any type that
// encoding/json can round-trip works as an artifact handle with it.
type JSONCodec[T any] struct{}

// Marshal encodes the artifact as JSON.
func (JSONCodec[T]) Marshal(artifact T) ([]byte, error) {
	return json.Marshal(artifact)
}

// Unmarshal decodes a stored JSON blob back into the artifact type.
func (JSONCodec[T]) Unmarshal(data []byte) (T, error) {
	var artifact T
	if err := json.Unmarshal(data, &artifact); err != nil {
		return artifact, err
	}
	return artifact, nil
}
