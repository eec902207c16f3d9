package reporting

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// HierarchyFetcher busca a árvore campanhas → anúncios → criativos de uma conta
type HierarchyFetcher interface {
	FetchTree(ctx context.Context, accountID string, dateRange domain.DateRange) ([]*domain.Campaign, error)
}

// TimezoneResolver resolve o fuso da conta; nunca falha
type TimezoneResolver interface {
	ResolveTimezone(ctx context.Context, accountID string) domain.AccountTimezone
}

// DailySpendFetcher traz a série de gasto diário da conta
type DailySpendFetcher interface {
	FetchDailySpend(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.DailySpend, error)
}

// Reporter é o ponto de entrada usado pela API e pela CLI
type Reporter interface {
	// GetReport executa o pipeline completo para o intervalo DD-MM-YYYY informado.
	// since e until vazios usam os últimos 30 dias no fuso da conta.
	GetReport(ctx context.Context, since, until string) (*domain.Report, error)
}
