package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/ent/identity"
	"fiber-ent-x-moderation/ent/user"
	"fiber-ent-x-moderation/internal/config"
	"fiber-ent-x-moderation/internal/httpx/kit"
	"fiber-ent-x-moderation/internal/httpx/mw"
)

// RegisterHandler creates a new user and a password identity, then returns JWTs.
//
//	@Summary      Register (password)
//	@Description  Create user + password identity, then issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.RegisterRequest  true  "register"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil || req.Identifier == "" || req.Password == "" {
			return kit.BadRequest("identifier and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		defer func() { _ = tx.Rollback() }()

		u, err := tx.User.Create().SetDisplayName(req.DisplayName).Save(ctx)
		if err != nil {
			return kit.InternalError("create user failed", err.Error())
		}
		_, err = tx.Identity.Create().SetProvider(identity.ProviderPassword).SetIdentifier(req.Identifier).SetSecretHash(hash).SetUser(u).Save(ctx)
		if err != nil {
			return kit.BadRequest("identifier already exists", nil)
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}

		return issueTokens(c, cfg, "user:"+u.ID.String())
	}
}

// LoginHandler authenticates a user via password identity and returns JWTs.
//
//	@Summary      Login (password)
//	@Description  Authenticate by identifier/password and issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Identifier == "" || req.Password == "" {
			return kit.BadRequest("identifier and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		idn, err := client.Identity.Query().
			Where(identity.ProviderEQ(identity.ProviderPassword), identity.IdentifierEQ(req.Identifier)).
			WithUser().
			Only(ctx)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if idn.SecretHash == nil || !VerifyPassword(req.Password, *idn.SecretHash) {
			return fiber.ErrUnauthorized
		}
		u := idn.Edges.User
		if u == nil {
			return kit.InternalError("identity has no user", nil)
		}
		if !u.IsActive {
			return fiber.ErrForbidden
		}

		_ = client.User.UpdateOne(u).SetLastLoginAt(time.Now().UTC()).Exec(ctx)

		return issueTokens(c, cfg, "user:"+u.ID.String())
	}
}

// RefreshHandler issues a new access token using refresh cookie.
//
//	@Summary      Refresh Access Token
//	@Description  Mint new access token from refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		claims, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, claims.Subject, claims.Kind, claims.Roles)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// LogoutHandler clears refresh cookie
//
//	@Summary      Logout (clear refresh)
//	@Description  Clear refresh cookie; access tokens expire naturally
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MeHandler returns the current user profile.
//
//	@Summary      Who am I
//	@Description  Return current user
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/me [get]
func MeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.User.Query().Where(user.IDEQ(uid)).Only(ctx)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		return kit.OK(c, fiber.Map{
			"id":            u.ID,
			"display_name":  u.DisplayName,
			"is_active":     u.IsActive,
			"last_login_at": u.LastLoginAt,
			"created_at":    u.CreatedAt,
		})
	}
}

func issueTokens(c *fiber.Ctx, cfg *config.Config, sub string) error {
	access, _, err := SignAccess(cfg, sub, "user", nil)
	if err != nil {
		return kit.InternalError("sign access failed", err.Error())
	}
	refresh, _, err := SignRefresh(cfg, sub, "user")
	if err != nil {
		return kit.InternalError("sign refresh failed", err.Error())
	}
	SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
	return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
}
