package domain

// TelegramChannel identifica o destino das notificações de uma conta monitorada
type TelegramChannel struct {
	BotToken string `json:"bot_token"`
	ChatID   int64  `json:"chat_id"`
}

// MonitoredAccount representa uma conta de anúncios monitorada pelo worker.
// A lista é carregada uma única vez na inicialização do processo e permanece
// imutável durante toda a execução.
type MonitoredAccount struct {
	ID          int    `json:"id"`
	AccountID   string `json:"account_id"`
	AccessToken string `json:"access_token"`
	IsActive    bool   `json:"is_active"`
	// Intervalo de monitoramento em minutos. Carregado do banco, porém o
	// worker usa um único intervalo global configurado por ambiente.
	IntervalMinutes int             `json:"interval"`
	Telegram        TelegramChannel `json:"telegram_config"`
}
