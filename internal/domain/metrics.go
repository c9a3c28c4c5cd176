package domain

import "time"

// AccountMetrics é o snapshot agregado de performance de uma conta em um
// ciclo. Gravado uma vez por conta por ciclo, nunca lido de volta pelo core.
type AccountMetrics struct {
	AccountID   string    `json:"account_id"`
	Spend       float64   `json:"spend"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	CreatedAt   time.Time `json:"created_at"`
}
