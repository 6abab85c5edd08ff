package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid confere se o domínio do e-mail resolve (MX ou A/AAAA).
// Barra erro de digitação no cadastro; não garante que a caixa exista.
func IsEmailDomainValid(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	if records, err := net.LookupMX(domain); err == nil && len(records) > 0 {
		return true
	}

	// domínios sem MX ainda podem receber direto no A/AAAA
	addrs, err := net.LookupIP(domain)
	return err == nil && len(addrs) > 0
}
