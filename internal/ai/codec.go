package ai

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var networkHeader = [8]byte{'T', 'E', 'T', 'R', 'I', 'S', 'A', 'I'}

// maxLayerSize bounds decoded layer sizes so corrupt input cannot request
// huge allocations.
const maxLayerSize = 1 << 16

var (
	// ErrBadHeader means the data does not start with the network header.
	ErrBadHeader = errors.New("ai: bad network header")
	// ErrLayerMismatch means a network's shape does not fit its use.
	ErrLayerMismatch = errors.New("ai: layer size mismatch")
)

// MarshalBinary encodes the network as the header, the layer count and sizes
// as little-endian int32, then each layer's weights and biases as float32.
func (n *Network) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(networkHeader[:])

	sizes := n.Sizes()
	w := func(v any) {
		binary.Write(&buf, binary.LittleEndian, v) //nolint:errcheck // bytes.Buffer writes do not fail
	}
	w(int32(len(sizes)))
	for _, s := range sizes {
		w(int32(s))
	}
	for _, l := range n.layers {
		for _, v := range l.weights {
			w(float32(v))
		}
		for _, v := range l.biases {
			w(float32(v))
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces n with the network encoded in data.
func (n *Network) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil || header != networkHeader {
		return ErrBadHeader
	}

	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("ai: read layer count: %w", err)
	}
	if count < 2 || count > 16 {
		return fmt.Errorf("ai: %d layers: %w", count, ErrLayerMismatch)
	}

	sizes32 := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, sizes32); err != nil {
		return fmt.Errorf("ai: read layer sizes: %w", err)
	}
	sizes := make([]int, count)
	for i, s := range sizes32 {
		if s <= 0 || s > maxLayerSize {
			return fmt.Errorf("ai: layer size %d: %w", s, ErrLayerMismatch)
		}
		sizes[i] = int(s)
	}

	decoded, err := NewNetwork(sizes...)
	if err != nil {
		return err
	}

	for li := range decoded.layers {
		l := &decoded.layers[li]
		if err := readFloats(r, l.weights); err != nil {
			return fmt.Errorf("ai: read layer %d weights: %w", li, err)
		}
		if err := readFloats(r, l.biases); err != nil {
			return fmt.Errorf("ai: read layer %d biases: %w", li, err)
		}
	}
	if r.Len() != 0 {
		return fmt.Errorf("ai: %d trailing bytes after network", r.Len())
	}

	*n = *decoded
	return nil
}

func readFloats(r io.Reader, dst []float64) error {
	raw := make([]float32, len(dst))
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return err
	}
	for i, v := range raw {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("non-finite value at %d", i)
		}
		dst[i] = float64(v)
	}
	return nil
}

// UnmarshalNetwork decodes a network and checks it has the default input and
// output sizes.
func UnmarshalNetwork(data []byte) (*Network, error) {
	n := &Network{}
	if err := n.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	if n.InputSize() != InputSize || n.OutputSize() != OutputSize {
		return nil, fmt.Errorf("ai: network shape %v, want %d inputs and %d outputs: %w",
			n.Sizes(), InputSize, OutputSize, ErrLayerMismatch)
	}
	return n, nil
}
