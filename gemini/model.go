// Package gemini resolves the model endpoint and performs the single
// generateContent exchange against the Google AI API.
package gemini

import (
	"fmt"
	"strings"

	"github.com/minios-linux/mdtranslate/clierr"
	"github.com/minios-linux/mdtranslate/config"
)

// DefaultModel is used when no override names another model.
const DefaultModel = "gemini-2.5-flash"

// endpointTemplate expands a short model name into the generateContent URL.
const endpointTemplate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// ResolveModel picks exactly one model identifier from the overrides, in
// the order given (highest precedence first). An override that is present
// but blank after trimming is a configuration error, not a fall-through;
// an absent override yields to the next tier. With no overrides at all the
// built-in default applies.
func ResolveModel(overrides ...config.Override) (string, error) {
	for _, o := range overrides {
		if !o.Set {
			continue
		}
		v := strings.TrimSpace(o.Value)
		if v == "" {
			return "", &clierr.InvalidModel{Source: o.Source}
		}
		return v, nil
	}
	return DefaultModel, nil
}

// Endpoint expands a model identifier into the callable URL. Identifiers
// that are already fully qualified HTTP(S) URLs pass through verbatim, so
// callers can point at custom or proxied endpoints.
func Endpoint(model string) string {
	if strings.HasPrefix(model, "http://") || strings.HasPrefix(model, "https://") {
		return model
	}
	return fmt.Sprintf(endpointTemplate, model)
}
