package csvfixture

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// attributeTag is the struct tag DecodeAttributes reads field names from
const attributeTag = "fixture"

// DecodeAttributes binds one keyed attribute mapping, as returned by
// LoadKeyedAttributes, into the struct out points to. Field names come from
// the `fixture` struct tag and values are converted weakly, so "3" fills an
// int and "true" a bool. A nil attrs leaves out untouched.
//
//	type tagSet struct {
//		Region string `fixture:"region"`
//		Shards int    `fixture:"shards"`
//	}
func DecodeAttributes(attrs map[string]string, out any) error {
	if attrs == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          attributeTag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("csvfixture: invalid attribute target: %w", err)
	}
	if err := decoder.Decode(attrs); err != nil {
		return fmt.Errorf("csvfixture: failed to decode attributes: %w", err)
	}
	return nil
}
