package worker

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ad-monitor-worker/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
	"github.com/vfg2006/ad-monitor-worker/internal/worker/mocks"
	"go.uber.org/mock/gomock"
)

func newTestProcessor(
	platform AdPlatform,
	notifier Notifier,
	metricsRepo *repomocks.MockAccountMetricsRepository,
) *AccountProcessor {
	cfg := &config.Config{}
	cfg.Meta.TrackedActionType = testActionType

	return NewAccountProcessor(platform, notifier, metricsRepo, PolicyThresholds{MaxCostPerAction: 5.0}, cfg)
}

func testAccount() *domain.MonitoredAccount {
	return &domain.MonitoredAccount{
		ID:        1,
		AccountID: "act_123",
		Telegram: domain.TelegramChannel{
			BotToken: "bot-token",
			ChatID:   -100123,
		},
	}
}

func TestAccountProcessor_ProcessAccount_SemAnuncios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return([]domain.Ad{}, nil)

	// Exatamente uma notificação, nenhuma chamada de saldo, mudança de
	// status ou snapshot
	mockNotifier.EXPECT().
		Send(account.Telegram, "🔍 Account act_123 has no active ads").
		Return(nil).
		Times(1)

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.NoError(t, err)
}

func TestAccountProcessor_ProcessAccount_CicloCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	ads := []domain.Ad{
		{
			ID:              "1",
			Name:            "A",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusActive,
			Insights:        &domain.AdInsights{Impressions: 100, Clicks: 10, Conversions: 2, Spend: 14.4},
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "7.2"}},
		},
		{
			ID:              "2",
			Name:            "B",
			Status:          domain.AdStatusPaused,
			EffectiveStatus: domain.AdStatusPaused,
			Insights:        &domain.AdInsights{Impressions: 50, Clicks: 5, Conversions: 1, Spend: 3.0},
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "3.0"}},
		},
		{
			ID:              "3",
			Name:            "C",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusActive,
			Insights:        &domain.AdInsights{Impressions: 200, Clicks: 20, Conversions: 4, Spend: 16.0},
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "4.0"}},
		},
	}

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return(ads, nil)

	mockPlatform.EXPECT().
		GetAccountBalance(account).
		Return(&domain.AccountBalance{
			ID:             "act_123",
			Currency:       "THB",
			AvailableFunds: "฿1500.00",
		}, nil)

	// A acima do teto é pausado, B abaixo do teto volta a ativo, C não muda
	mockPlatform.EXPECT().
		UpdateAdStatus(account, "A", domain.AdStatusPaused).
		Return([]domain.Ad{}, nil)
	mockPlatform.EXPECT().
		UpdateAdStatus(account, "B", domain.AdStatusActive).
		Return([]domain.Ad{}, nil)

	var sent []string
	mockNotifier.EXPECT().
		Send(account.Telegram, gomock.Any()).
		DoAndReturn(func(_ domain.TelegramChannel, text string) error {
			sent = append(sent, text)
			return nil
		}).
		Times(2)

	var snapshot *domain.AccountMetrics
	mockMetricsRepo.EXPECT().
		SaveSnapshot(gomock.Any()).
		DoAndReturn(func(metrics *domain.AccountMetrics) error {
			snapshot = metrics
			return nil
		})

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.NoError(t, err)

	// Duas mensagens por ciclo: saldo e status agregado
	assert.Len(t, sent, 2)
	assert.Equal(t, "💰 Account balance act_123: ฿1500.00", sent[0])

	expected := "🧠 Updated ad status: A to PAUSED\n" +
		"🟢 Ad active: A:💰7.2\n" +
		"🧠 Updated ad status: B to ACTIVE\n" +
		"❌ Ad paused: B:💰3\n" +
		"🟢 Ad active: C:💰4"
	assert.Equal(t, expected, sent[1])

	// Snapshot agrega as métricas de todos os anúncios buscados
	assert.NotNil(t, snapshot)
	assert.Equal(t, "act_123", snapshot.AccountID)
	assert.Equal(t, int64(350), snapshot.Impressions)
	assert.Equal(t, int64(35), snapshot.Clicks)
	assert.Equal(t, int64(7), snapshot.Conversions)
	assert.InDelta(t, 33.4, snapshot.Spend, 0.0001)
}

func TestAccountProcessor_ProcessAccount_TodosPausados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	// Um anúncio pausado pela campanha e um reprovado: nenhum limpa o flag
	ads := []domain.Ad{
		{
			ID:              "1",
			Name:            "A",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusCampaignPaused,
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "1.0"}},
		},
		{
			ID:              "2",
			Name:            "B",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusDisapproved,
		},
	}

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return(ads, nil)

	mockPlatform.EXPECT().
		GetAccountBalance(account).
		Return(&domain.AccountBalance{AvailableFunds: "$10.00"}, nil)

	var sent []string
	mockNotifier.EXPECT().
		Send(account.Telegram, gomock.Any()).
		DoAndReturn(func(_ domain.TelegramChannel, text string) error {
			sent = append(sent, text)
			return nil
		}).
		Times(2)

	mockMetricsRepo.EXPECT().
		SaveSnapshot(gomock.Any()).
		Return(nil)

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.NoError(t, err)

	expected := "❌ Ad paused: A:💰1\n" +
		"❌ Ad disapproved: B waiting for deletion\n" +
		"🚨 Account act_123 all ads are paused"
	assert.Equal(t, expected, sent[1])
}

func TestAccountProcessor_ProcessAccount_ErroAoBuscarAnuncios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return(nil, errors.New("timeout"))

	// Erro de busca propaga sem notificar nesta camada
	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "act_123")
}

func TestAccountProcessor_ProcessAccount_ErroAoBuscarSaldo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return([]domain.Ad{{ID: "1", Name: "A"}}, nil)

	mockPlatform.EXPECT().
		GetAccountBalance(account).
		Return(nil, errors.New("saldo indisponível"))

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.Error(t, err)
}

func TestAccountProcessor_ProcessAccount_ErroAoAplicarMudanca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	ads := []domain.Ad{
		{
			ID:              "1",
			Name:            "A",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusActive,
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "7.2"}},
		},
	}

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return(ads, nil)

	mockPlatform.EXPECT().
		GetAccountBalance(account).
		Return(&domain.AccountBalance{AvailableFunds: "$10.00"}, nil)

	mockPlatform.EXPECT().
		UpdateAdStatus(account, "A", domain.AdStatusPaused).
		Return(nil, errors.New("falha de rede"))

	// Só a mensagem de saldo sai: o loop por anúncio aborta no erro e nada
	// agregado é enviado nem persistido
	mockNotifier.EXPECT().
		Send(account.Telegram, "💰 Account balance act_123: $10.00").
		Return(nil).
		Times(1)

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "A")
}

func TestAccountProcessor_ProcessAccount_FalhaDeEntregaNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	ads := []domain.Ad{
		{
			ID:              "1",
			Name:            "C",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusActive,
			Insights:        &domain.AdInsights{Spend: 4.0},
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "4.0"}},
		},
	}

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return(ads, nil)

	mockPlatform.EXPECT().
		GetAccountBalance(account).
		Return(&domain.AccountBalance{AvailableFunds: "$10.00"}, nil)

	mockNotifier.EXPECT().
		Send(account.Telegram, gomock.Any()).
		Return(errors.New("chat not found")).
		Times(2)

	// O snapshot ainda é gravado mesmo com a entrega falhando
	mockMetricsRepo.EXPECT().
		SaveSnapshot(gomock.Any()).
		Return(nil)

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.NoError(t, err)
}

func TestAccountProcessor_ProcessAccount_FalhaDeSnapshotNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdPlatform(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)
	mockMetricsRepo := repomocks.NewMockAccountMetricsRepository(ctrl)

	account := testAccount()

	ads := []domain.Ad{
		{
			ID:              "1",
			Name:            "C",
			Status:          domain.AdStatusActive,
			EffectiveStatus: domain.AdStatusActive,
			CostPerActions:  []domain.CostPerAction{{ActionType: testActionType, Value: "4.0"}},
		},
	}

	mockPlatform.EXPECT().
		GetAdsByAccount(account).
		Return(ads, nil)

	mockPlatform.EXPECT().
		GetAccountBalance(account).
		Return(&domain.AccountBalance{AvailableFunds: "$10.00"}, nil)

	mockNotifier.EXPECT().
		Send(account.Telegram, gomock.Any()).
		Return(nil).
		Times(2)

	mockMetricsRepo.EXPECT().
		SaveSnapshot(gomock.Any()).
		Return(errors.New("conexão perdida"))

	processor := newTestProcessor(mockPlatform, mockNotifier, mockMetricsRepo)

	err := processor.ProcessAccount(account)
	assert.NoError(t, err)
}
