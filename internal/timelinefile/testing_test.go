package timelinefile

import "gopkg.in/yaml.v3"

func unmarshal(s string, v any) error {
	return yaml.Unmarshal([]byte(s), v)
}
