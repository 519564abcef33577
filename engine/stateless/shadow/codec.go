package shadow

import (
	"time"

	"github.com/onflow/flow-witness/model/witness"
)

//go:generate mockery --name=WitnessCodec --output=mock --outpkg=mock --case=underscore

// WitnessCodec converts state witnesses to and from their wire form.
type WitnessCodec interface {
	Encode(w *witness.StateWitness) (*witness.EncodedStateWitness, error)
	Decode(encoded *witness.EncodedStateWitness) (*witness.StateWitness, error)
}

// wireCodec is the CBOR and zstd wire codec of state witnesses.
type wireCodec struct{}

var _ WitnessCodec = wireCodec{}

func (wireCodec) Encode(w *witness.StateWitness) (*witness.EncodedStateWitness, error) {
	return witness.Encode(w)
}

func (wireCodec) Decode(encoded *witness.EncodedStateWitness) (*witness.StateWitness, error) {
	return encoded.Decode()
}

// checkCodec encodes the witness and decodes it again, recording sizes and
// timings. The decoded copy is discarded.
func (v *Validator) checkCodec(w *witness.StateWitness) (*witness.EncodedStateWitness, error) {
	shard := w.ShardID()

	start := time.Now()
	encoded, err := v.codec.Encode(w)
	if err != nil {
		return nil, &CodecError{Op: OpEncode, err: err}
	}
	v.metrics.WitnessEncoded(shard, time.Since(start))
	v.metrics.WitnessSize(shard, encoded.RawSize(), encoded.Size())

	start = time.Now()
	_, err = v.codec.Decode(encoded)
	if err != nil {
		return nil, &CodecError{Op: OpDecode, err: err}
	}
	v.metrics.WitnessDecoded(shard, time.Since(start))

	return encoded, nil
}
