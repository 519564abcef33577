package cbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/model/encoding/cbor"
)

func TestCanonicalMapOrdering(t *testing.T) {
	// maps are iterated in random order, the encoding must not be
	for i := 0; i < 20; i++ {
		a, err := cbor.EncMode.Marshal(map[string]uint64{"a": 1, "bb": 2, "c": 3, "dddd": 4})
		require.NoError(t, err)
		b, err := cbor.EncMode.Marshal(map[string]uint64{"dddd": 4, "c": 3, "bb": 2, "a": 1})
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestRoundTrip(t *testing.T) {
	type value struct {
		Name  string
		Count uint64
		Data  []byte
	}

	original := value{Name: "chunk", Count: 7, Data: []byte{1, 2, 3}}
	b, err := cbor.EncMode.Marshal(original)
	require.NoError(t, err)

	var decoded value
	require.NoError(t, cbor.DecMode.Unmarshal(b, &decoded))
	assert.Equal(t, original, decoded)
}

func TestDecodeInvalid(t *testing.T) {
	var v struct{ A uint64 }
	err := cbor.DecMode.Unmarshal([]byte{0xff, 0x00, 0x13}, &v)
	assert.Error(t, err)

	// {"A": 1, "A": 2}
	var m map[string]uint64
	err = cbor.DecMode.Unmarshal([]byte{0xa2, 0x61, 'A', 0x01, 0x61, 'A', 0x02}, &m)
	assert.Error(t, err)
}
