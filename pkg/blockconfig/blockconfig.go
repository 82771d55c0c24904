// Package blockconfig decodes the wire format for a block list: a JSON
// array of externally tagged {"type": <kind>, "data": <package>} objects,
// one per block, dispatched through a registry of known block kinds.
package blockconfig

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/blockflowhq/blockflow/pkg/weave"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decoder parses one block kind's wire "data" object into a weave.Node
// ready to hand to the weaver. blockID is the block's position in the
// wire list: the wire format carries no explicit id field (block ids are
// "set post-weave" per the block contract), so the decoder assigns each
// package's id from its list position.
type Decoder func(blockID uint32, data []byte) (weave.Node, error)

// Registry is a closed set of known block kinds, keyed by their wire tag.
// An empty Registry is ready to use; Builtin returns one pre-populated
// with the engine's reference block kinds.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry creates an empty kind registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds kind to the registry. Registering the same kind twice
// overwrites the earlier decoder; callers that want a closed registry
// should call Register once per kind at startup.
func (r *Registry) Register(kind string, decode Decoder) {
	r.decoders[kind] = decode
}

// UnknownKindError is returned when a wire entry names a kind with no
// registered decoder.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return "unknown block kind: " + e.Kind
}

type taggedEntry struct {
	Type string              `json:"type"`
	Data stdjson.RawMessage `json:"data"`
}

// DecodePackages parses a JSON array of tagged block entries into a list
// of weave.Node, ready to hand to weave.Weave in the same order they
// appeared in the document.
func (r *Registry) DecodePackages(data []byte) ([]weave.Node, error) {
	var entries []taggedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "parsing block list")
	}

	nodes := make([]weave.Node, len(entries))
	for i, entry := range entries {
		decode, ok := r.decoders[entry.Type]
		if !ok {
			return nil, &UnknownKindError{Kind: entry.Type}
		}
		node, err := decode(uint32(i), entry.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding block %d (kind %q)", i, entry.Type)
		}
		nodes[i] = node
	}
	return nodes, nil
}
