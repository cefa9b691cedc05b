package blueprint

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Hash is an insertion-ordered string-keyed mapping. It is the unit of
// rendered output: one Hash per input object, keys in field declaration
// order. Transformers mutate it in place after all fields are written.
//
// Hash implements json.Marshaler, yaml.Marshaler, and msgpack.CustomEncoder
// so that key order survives every codec.
//
// A Hash is not safe for concurrent mutation.
type Hash struct {
	keys   []string
	values map[string]any
}

// NewHash returns an empty Hash.
func NewHash() *Hash {
	return &Hash{values: make(map[string]any)}
}

// Set writes value under key. New keys append to the key order; existing
// keys keep their position.
func (h *Hash) Set(key string, value any) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key.
func (h *Hash) Get(key string) (any, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (h *Hash) Delete(key string) bool {
	if _, ok := h.values[key]; !ok {
		return false
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
	return true
}

// Rename moves the value under from to the key to, preserving position.
// If to already exists elsewhere, its old entry is removed. Reports whether
// from was present.
func (h *Hash) Rename(from, to string) bool {
	v, ok := h.values[from]
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	if _, exists := h.values[to]; exists {
		h.Delete(to)
	}
	delete(h.values, from)
	h.values[to] = v
	for i, k := range h.keys {
		if k == from {
			h.keys[i] = to
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (h *Hash) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of keys.
func (h *Hash) Len() int {
	return len(h.keys)
}

// ToMap returns a shallow unordered copy of the mapping.
func (h *Hash) ToMap() map[string]any {
	out := make(map[string]any, len(h.keys))
	for k, v := range h.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the hash as a JSON object in key order.
func (h *Hash) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range h.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(h.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the hash as a YAML mapping node in key order.
func (h *Hash) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range h.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(h.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// EncodeMsgpack encodes the hash as a msgpack map in key order.
func (h *Hash) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(h.keys)); err != nil {
		return err
	}
	for _, k := range h.keys {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(h.values[k]); err != nil {
			return err
		}
	}
	return nil
}
