package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// EncMode is the canonical CBOR encoding mode: map keys are sorted and
// integers use their shortest form, so equal values always encode to equal bytes.
var EncMode = func() cbor.EncMode {
	options := cbor.CanonicalEncOptions()
	options.Time = cbor.TimeUnixMicro
	encMode, err := options.EncMode()
	if err != nil {
		panic(fmt.Errorf("could not initialize cbor encoding mode: %w", err))
	}
	return encMode
}()

// DecMode rejects duplicate map keys and bounds nesting and collection sizes.
var DecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels:  64,
		MaxArrayElements: 1 << 20,
		MaxMapPairs:      1 << 20,
	}.DecMode()
	if err != nil {
		panic(fmt.Errorf("could not initialize cbor decoding mode: %w", err))
	}
	return decMode
}()
