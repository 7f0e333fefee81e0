// Package options decodes the loosely typed option maps used by the
// configuration surface into typed option structs.
package options

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/philipp01105/logfacade/core"
)

// Decode copies in onto out, which must be a pointer to a struct tagged
// with `option:"name"`. Input is weakly typed ("true", "10" and "1s" all
// work) and unknown keys are an error.
func Decode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "option",
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// ParseLevel parses an optional level option. An empty string yields
// ok=false without error.
func ParseLevel(s string) (level core.Level, ok bool, err error) {
	if s == "" {
		return core.AllLevel, false, nil
	}
	level, err = core.ParseLevel(s)
	if err != nil {
		return core.AllLevel, false, err
	}
	return level, true, nil
}
