package providers

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/goliatone/go-assets/core"
)

// DecodeOptions maps the verbatim endpoint options payload onto a family
// config struct. Decoding is weakly typed because the service serializes
// numbers loosely; json tag names keep the wire schema authoritative.
func DecodeOptions(options core.ProviderOptions, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("providers: options decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(options)); err != nil {
		return fmt.Errorf("providers: invalid provider options: %w", err)
	}
	return nil
}
