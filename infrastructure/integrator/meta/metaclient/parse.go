package metaclient

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Helpers de deserialização tolerante. Payloads da Graph API carregam
// campos folha opcionais e tipos inconsistentes (números como string);
// folhas ausentes ou mal formadas viram valores padrão, nunca erro.

func asString(raw map[string]interface{}, key string) string {
	if value, ok := raw[key].(string); ok {
		return value
	}
	return ""
}

func asInt64(raw map[string]interface{}, key string) int64 {
	switch value := raw[key].(type) {
	case float64:
		return int64(value)
	case string:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func asFloat64(raw map[string]interface{}, key string) float64 {
	switch value := raw[key].(type) {
	case float64:
		return value
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func asObject(raw map[string]interface{}, key string) map[string]interface{} {
	if value, ok := raw[key].(map[string]interface{}); ok {
		return value
	}
	return nil
}

func asArray(raw map[string]interface{}, key string) []interface{} {
	if value, ok := raw[key].([]interface{}); ok {
		return value
	}
	return nil
}

// actionValue procura a entrada de um tipo de ação em um array de
// {action_type, value} e devolve o value como string. Ausente vale o
// defaultValue informado.
func actionValue(actions []interface{}, actionType, defaultValue string) string {
	for _, rawAction := range actions {
		action, ok := rawAction.(map[string]interface{})
		if !ok {
			continue
		}

		if asString(action, "action_type") != actionType {
			continue
		}

		if value, ok := action["value"].(string); ok {
			return value
		}
	}

	return defaultValue
}
