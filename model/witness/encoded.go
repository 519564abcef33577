package witness

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/onflow/flow-witness/model/encoding/cbor"
)

// MaxDecodedSize is the largest uncompressed witness accepted when decoding.
const MaxDecodedSize = 64 << 20

// ErrWitnessTooLarge is returned when decoding a witness would exceed MaxDecodedSize.
var ErrWitnessTooLarge = errors.New("decoded witness exceeds size limit")

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Errorf("could not create zstd encoder: %w", err))
	}
	decoder, err = zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(MaxDecodedSize),
	)
	if err != nil {
		panic(fmt.Errorf("could not create zstd decoder: %w", err))
	}
}

// EncodedStateWitness is the wire form of a StateWitness: canonical CBOR,
// compressed with zstd. Encoding the same witness always yields the same bytes.
type EncodedStateWitness struct {
	data    []byte
	rawSize int
}

// Encode serializes and compresses the witness.
func Encode(w *StateWitness) (*EncodedStateWitness, error) {
	raw, err := cbor.EncMode.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("could not encode witness: %w", err)
	}
	if len(raw) > MaxDecodedSize {
		return nil, fmt.Errorf("could not encode witness of %d bytes: %w", len(raw), ErrWitnessTooLarge)
	}
	return &EncodedStateWitness{
		data:    encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)),
		rawSize: len(raw),
	}, nil
}

// NewEncodedStateWitness wraps bytes received or loaded from storage. The raw
// size is unknown until the witness is decoded.
func NewEncodedStateWitness(data []byte) *EncodedStateWitness {
	return &EncodedStateWitness{data: data}
}

// Decode decompresses and deserializes the witness.
func (e *EncodedStateWitness) Decode() (*StateWitness, error) {
	raw, err := decoder.DecodeAll(e.data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("could not decompress witness: %w", ErrWitnessTooLarge)
		}
		return nil, fmt.Errorf("could not decompress witness: %w", err)
	}
	if len(raw) > MaxDecodedSize {
		return nil, fmt.Errorf("could not decompress witness: %w", ErrWitnessTooLarge)
	}

	var w StateWitness
	err = cbor.DecMode.Unmarshal(raw, &w)
	if err != nil {
		return nil, fmt.Errorf("could not decode witness: %w", err)
	}
	e.rawSize = len(raw)
	return &w, nil
}

// Bytes returns the compressed encoding.
func (e *EncodedStateWitness) Bytes() []byte {
	return e.data
}

// Size returns the size of the compressed encoding in bytes.
func (e *EncodedStateWitness) Size() int {
	return len(e.data)
}

// RawSize returns the size of the uncompressed encoding in bytes.
func (e *EncodedStateWitness) RawSize() int {
	return e.rawSize
}
