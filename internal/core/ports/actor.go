package ports

import "github.com/anuragsoft/company-portal/internal/core/domain"

// Actor is the authenticated caller, extracted from the JWT by the transport
// layer and passed to every use case that makes an authorization decision.
type Actor struct {
	ID   string
	Role domain.Role
}
