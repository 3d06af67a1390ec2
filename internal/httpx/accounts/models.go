package accounts

import (
	"time"

	"github.com/google/uuid"

	"fiber-ent-x-moderation/ent"
)

// ConnectRequest represents the account connect request body
// swagger:model ConnectRequest
type ConnectRequest struct {
	AccessToken string `json:"access_token" example:"<OAuth2 token>"`
	Label       string `json:"label,omitempty" example:"brand account"`
}

// AccountView is the public shape of a connected account. The stored
// credential never appears here.
// swagger:model AccountView
type AccountView struct {
	ID             uuid.UUID  `json:"id"`
	Provider       string     `json:"provider"`
	Handle         string     `json:"handle"`
	ProviderUserID string     `json:"provider_user_id"`
	Label          string     `json:"label,omitempty"`
	IsActive       bool       `json:"is_active"`
	LastUsedAt     *time.Time `json:"last_used_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toView(a *ent.SocialAccount) AccountView {
	v := AccountView{
		ID:             a.ID,
		Provider:       string(a.Provider),
		Handle:         a.Handle,
		ProviderUserID: a.ProviderUserID,
		Label:          a.Label,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
	if !a.LastUsedAt.IsZero() {
		t := a.LastUsedAt
		v.LastUsedAt = &t
	}
	return v
}
