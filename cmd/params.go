package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bnema/bonita-cli/bonita"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type paramsFlags struct {
	inline string
	file   string
}

func (f *paramsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.inline, "params", "", "Contract inputs as a JSON or YAML object")
	cmd.Flags().StringVar(&f.file, "params-file", "", "Read contract inputs from a JSON or YAML file")
	cmd.MarkFlagsMutuallyExclusive("params", "params-file")
}

// load returns nil when no params were given, so the engine receives no body.
func (f *paramsFlags) load() (bonita.Params, error) {
	source := "--params"
	raw := f.inline
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, fmt.Errorf("read params file: %w", err)
		}
		source = f.file
		raw = string(data)
	}

	return parseParams(source, raw)
}

func parseParams(source, raw string) (bonita.Params, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var params map[string]any
	if err := yaml.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("parse %s: expected a JSON or YAML object: %w", source, err)
	}
	if params == nil {
		return nil, fmt.Errorf("parse %s: expected a JSON or YAML object", source)
	}

	normalized, err := normalizeYAML(params)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	return bonita.Params(normalized.(map[string]any)), nil
}

// normalizeYAML converts nested maps decoded with non-string keys so the
// result can be encoded as JSON.
func normalizeYAML(value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			normalized, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[key] = normalized
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", key)
			}
			normalized, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[name] = normalized
		}
		return out, nil
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			normalized, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil
	default:
		return value, nil
	}
}
