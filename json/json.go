package json

import (
	"bytes"
	sysjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/qjpcpu/qjson"
)

var jiter = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyMarshal colorful json
func PrettyMarshal(v interface{}) []byte {
	return qjson.PrettyMarshal(v)
}

// Marshal same as sys marshal
func Marshal(v interface{}) ([]byte, error) {
	return jiter.Marshal(v)
}

// Unmarshal same as sys unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return jiter.Unmarshal(data, v)
}

// MarshalIndent marshal and indent with two spaces
func MarshalIndent(v interface{}) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err = sysjson.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MustMarshal must marshal successful
func MustMarshal(v interface{}) []byte {
	data, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
