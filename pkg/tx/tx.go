package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager оборачивает trm-менеджер транзакций поверх pgx.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в serializable-транзакции: диспатч и обслуживание
// очереди конкурируют за одни и те же строки, уровень ниже здесь не
// используется.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
