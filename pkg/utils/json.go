package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor com indentação, para logs de
// depuração.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var out bytes.Buffer
		if err := stdjson.Indent(&out, raw, "", "\t"); err != nil {
			return string(raw)
		}
		return out.String()
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}
