package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hashi/core"
)

// Island is one entry of the dictionary form.
type Island struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	N int `yaml:"n"`
}

// Document is the dictionary form as stored in YAML.
type Document struct {
	Islands []Island `yaml:"islands"`
}

// DecodeYAML reads the dictionary form from r and returns the coordinate to
// degree mapping. Duplicate coordinates, unknown fields and an empty island
// list are rejected with core.ErrMalformedInput. Degrees are checked when
// the board is built.
func DecodeYAML(r io.Reader) (map[core.Point]int, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", core.ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedInput, err)
	}
	if len(doc.Islands) == 0 {
		return nil, fmt.Errorf("%w: no islands", core.ErrMalformedInput)
	}

	islands := make(map[core.Point]int, len(doc.Islands))
	for _, is := range doc.Islands {
		p := core.Point{X: is.X, Y: is.Y}
		if _, dup := islands[p]; dup {
			return nil, fmt.Errorf("%w: duplicate island at (%d,%d)", core.ErrMalformedInput, p.X, p.Y)
		}
		islands[p] = is.N
	}

	return islands, nil
}

// ParseYAML is DecodeYAML over a byte slice.
func ParseYAML(data []byte) (map[core.Point]int, error) {
	return DecodeYAML(bytes.NewReader(data))
}

// EncodeYAML writes the islands of b in dictionary form, in vertex index
// order. Bridges are not written.
func EncodeYAML(w io.Writer, b *core.Board) error {
	doc := Document{Islands: make([]Island, 0, b.Len())}
	for _, v := range b.Vertices() {
		doc.Islands = append(doc.Islands, Island{X: v.X, Y: v.Y, N: v.N})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encode yaml: %w", err)
	}

	return enc.Close()
}
