package subscription

import (
	"context"

	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
)

type ExpireOverdue struct {
	repo domain.Repository
}

func NewExpireOverdue(repo domain.Repository) *ExpireOverdue {
	return &ExpireOverdue{repo: repo}
}

// Execute marca como expiradas as assinaturas ativas com vigência vencida.
// Chamado pela varredura periódica; idempotente.
func (uc *ExpireOverdue) Execute(ctx context.Context) (int64, error) {
	return uc.repo.ExpireOverdue(ctx)
}
