package subscription

import "github.com/barbearia-america/agenda-api/internal/models"

// ResolvePrice aplica o desconto da assinatura ao preço do serviço.
//
// O serviço sai de graça apenas quando existe assinatura ativa E o serviço
// está incluso no plano. Qualquer outro estado (pendente, expirada,
// cancelada, inexistente) cobra o preço cheio. Sem efeito colateral.
func ResolvePrice(svc *models.Service, sub *models.Subscription) float64 {
	if svc == nil {
		return 0
	}

	if sub != nil && Status(sub.Status) == StatusActive && svc.IncludedForSubscriber {
		return 0
	}

	return svc.Price
}
