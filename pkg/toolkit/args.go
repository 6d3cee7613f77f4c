package toolkit

import "strings"

// Argument readers for the raw map produced by request.GetArguments().
// Absent keys and explicit nulls mean unset; present values of the wrong
// type are validation failures.

// RequiredString returns the string at key or a validation error.
func RequiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", validationErrorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", validationErrorf("%s must be a non-empty string", key)
	}
	return s, nil
}

// OptionalString returns the string at key, or "" when unset.
func OptionalString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", validationErrorf("%s must be a string", key)
	}
	return s, nil
}

// OptionalFloat returns the number at key, or nil when unset.
func OptionalFloat(args map[string]any, key string) (*float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	case int64:
		f := float64(n)
		return &f, nil
	default:
		return nil, validationErrorf("%s must be a number", key)
	}
}

// OptionalBool returns the boolean at key, or nil when unset.
func OptionalBool(args map[string]any, key string) (*bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, validationErrorf("%s must be a boolean", key)
	}
	return &b, nil
}

// SymbolList parses a comma-separated symbol list at key, validating and
// normalizing each entry.
func SymbolList(args map[string]any, key string) ([]string, error) {
	raw, err := RequiredString(args, key)
	if err != nil {
		return nil, err
	}

	var symbols []string
	for _, part := range strings.Split(raw, ",") {
		symbol, err := Symbol(part)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}
	return symbols, nil
}
