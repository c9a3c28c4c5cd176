package worker

import (
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

// AdPlatform define as operações da plataforma de anúncios que o worker
// consome
type AdPlatform interface {
	// GetAdsByAccount busca os anúncios da conta com insights embutidos
	GetAdsByAccount(account *domain.MonitoredAccount) ([]domain.Ad, error)

	// UpdateAdStatus aplica o status alvo nos anúncios cujo nome contém o filtro
	UpdateAdStatus(account *domain.MonitoredAccount, nameFilter, status string) ([]domain.Ad, error)

	// GetAccountBalance lê o saldo da conta pronto para exibição
	GetAccountBalance(account *domain.MonitoredAccount) (*domain.AccountBalance, error)
}

// Notifier define a interface de envio de notificações de texto para o
// canal de destino de uma conta
type Notifier interface {
	Send(channel domain.TelegramChannel, text string) error
}

// Processor processa o ciclo completo de uma conta monitorada
type Processor interface {
	ProcessAccount(account *domain.MonitoredAccount) error
}
