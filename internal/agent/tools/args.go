package tools

import "fmt"

func stringArg(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s parameter must be a string", key)
	}
	if s == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return s, nil
}

func stringListArg(args map[string]interface{}, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%s parameter is required", key)
	}

	switch list := v.(type) {
	case []string:
		return list, nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", key, i)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s parameter must be a list of strings", key)
	}
}
