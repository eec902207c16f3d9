package utils

import (
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa qualquer valor como JSON indentado
func PrettyJSON(in any) (string, error) {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}

// PrettyYAML serializa o valor passando por JSON, para respeitar as tags json dos tipos
func PrettyYAML(in any) (string, error) {
	buffer, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	var generic any
	if err := json.Unmarshal(buffer, &generic); err != nil {
		return "", err
	}

	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
