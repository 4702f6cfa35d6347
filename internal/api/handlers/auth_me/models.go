package auth_me

import "github.com/most-gh/mddroner-booking/internal/domain"

// IdentityResponse текущий пользователь
type IdentityResponse struct {
	ID     int64  `json:"id"`
	OpenID string `json:"openId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// FromDomainIdentity конвертирует identity, nil остается nil
func FromDomainIdentity(i *domain.Identity) *IdentityResponse {
	if i == nil {
		return nil
	}
	return &IdentityResponse{
		ID:     i.ID,
		OpenID: i.OpenID,
		Name:   i.Name,
		Email:  i.Email,
		Role:   string(i.Role),
	}
}
