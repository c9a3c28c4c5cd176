package metadomain

import "strings"

// NormalizeStatus converte sinônimos de status em valores da API.
// Qualquer entrada fora do conjunto fechado é rejeitada com
// ErrInvalidStatus.
func NormalizeStatus(status string) (string, error) {
	switch strings.ToLower(status) {
	case "a", "active":
		return "ACTIVE", nil
	case "p", "paused":
		return "PAUSED", nil
	default:
		return "", ErrInvalidStatus
	}
}
