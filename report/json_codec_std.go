//go:build !jsonv2

package report

import "encoding/json"

func jsonMarshalIndent(value any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(value, prefix, indent)
}
