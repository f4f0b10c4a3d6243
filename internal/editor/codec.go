package editor

import "encoding/json"

// Codec converts a collection to and from its stored form.
type Codec[T any] interface {
	Encode(items []T) ([]byte, error)
	Decode(data []byte) ([]T, error)
}

// JSON stores a collection as a JSON array.
type JSON[T any] struct{}

// Encode implements Codec. A nil collection is stored as [].
func (JSON[T]) Encode(items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// Decode implements Codec. A stored null decodes to an empty collection.
func (JSON[T]) Decode(data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
