// Package accounts manages connected X accounts and their stored credentials.
package accounts

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/ent/socialaccount"
	"fiber-ent-x-moderation/ent/user"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/httpx/kit"
	"fiber-ent-x-moderation/internal/httpx/mw"
	"fiber-ent-x-moderation/internal/secretx"
	"fiber-ent-x-moderation/internal/xapi"
)

// ConnectHandler verifies a token against the vendor, seals it, and stores
// the account for the current user.
//
//	@Summary      Connect account
//	@Description  Verify access token with the vendor and store the account
//	@Tags         accounts
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body   accounts.ConnectRequest  true  "connect"
//	@Success      201   {object}  accounts.AccountView
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/accounts [post]
func ConnectHandler(client *ent.Client, sealer *secretx.Sealer, newClient social.ClientFactory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req ConnectRequest
		if err := c.BodyParser(&req); err != nil || req.AccessToken == "" {
			return kit.BadRequest("access_token required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		// The token must resolve to a real account before it is stored.
		me, err := newClient(req.AccessToken).MeUser(ctx)
		if err != nil {
			return kit.BadRequest("token verification failed", xapi.ErrorString(err))
		}

		sealed, err := sealer.Seal(req.AccessToken)
		if err != nil {
			return kit.InternalError("seal token failed", err.Error())
		}

		acct, err := client.SocialAccount.Create().
			SetHandle(me.Username).
			SetProviderUserID(me.ID).
			SetAccessTokenSealed(sealed).
			SetLabel(req.Label).
			SetOwnerID(uid).
			Save(ctx)
		if ent.IsConstraintError(err) {
			return kit.BadRequest("account already connected", me.Username)
		}
		if err != nil {
			return kit.InternalError("store account failed", err.Error())
		}
		return kit.Created(c, toView(acct))
	}
}

// ListHandler returns the current user's connected accounts.
//
//	@Summary      List accounts
//	@Tags         accounts
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200   {array}  accounts.AccountView
//	@Router       /api/v1/accounts [get]
func ListHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rows, err := client.SocialAccount.Query().
			Where(socialaccount.HasOwnerWith(user.IDEQ(uid))).
			Order(ent.Desc(socialaccount.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("list accounts failed", err.Error())
		}
		return kit.OK(c, lo.Map(rows, func(a *ent.SocialAccount, _ int) AccountView { return toView(a) }))
	}
}

// DisconnectHandler removes a connected account and its stored credential.
//
//	@Summary      Disconnect account
//	@Tags         accounts
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "account id"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/accounts/{id} [delete]
func DisconnectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid account id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		n, err := client.SocialAccount.Delete().
			Where(socialaccount.IDEQ(id), socialaccount.HasOwnerWith(user.IDEQ(uid))).
			Exec(ctx)
		if err != nil {
			return kit.InternalError("delete account failed", err.Error())
		}
		if n == 0 {
			return kit.NotFound("account not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// FindOwned loads an account by id scoped to the owner. Shared by the block
// run endpoint.
func FindOwned(ctx context.Context, client *ent.Client, owner uuid.UUID, id uuid.UUID) (*ent.SocialAccount, error) {
	return client.SocialAccount.Query().
		Where(socialaccount.IDEQ(id), socialaccount.HasOwnerWith(user.IDEQ(owner))).
		Only(ctx)
}
