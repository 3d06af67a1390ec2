package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/config"
	"fiber-ent-x-moderation/internal/httpx/accounts"
	"fiber-ent-x-moderation/internal/httpx/auth"
	"fiber-ent-x-moderation/internal/httpx/blocksapi"
	"fiber-ent-x-moderation/internal/httpx/executions"
	"fiber-ent-x-moderation/internal/httpx/kit"
	"fiber-ent-x-moderation/internal/httpx/mw"
	"fiber-ent-x-moderation/internal/redisx"
	"fiber-ent-x-moderation/internal/runner"
	"fiber-ent-x-moderation/internal/secretx"
)

// Deps bundles everything the routes need.
type Deps struct {
	Config *config.Config
	Client *ent.Client
	Runner *runner.Runner
	Sealer *secretx.Sealer
	RDB    *redisx.Client // optional: distributed rate limiting
	// NewClient builds vendor clients for raw tokens, used when an account
	// is first connected. The runner carries its own copy.
	NewClient social.ClientFactory
}

// Register mounts health, docs, and the versioned API.
func Register(app *fiber.App, d Deps) {
	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	parse := func(token string) (string, string, []string, error) {
		claims, err := auth.ParseAndValidate(d.Config, token)
		if err != nil {
			return "", "", nil, err
		}
		return claims.Subject, claims.Kind, claims.Roles, nil
	}

	api := app.Group("/api/v1",
		mw.JWTMiddlewareDynamic(parse),
		mw.RateLimitDefault(d.RDB, 60, 120),
	)

	ag := api.Group("/auth")
	ag.Post("/register", auth.RegisterHandler(d.Config, d.Client))
	ag.Post("/login", auth.LoginHandler(d.Config, d.Client))
	ag.Post("/refresh", auth.RefreshHandler(d.Config))
	ag.Post("/logout", auth.LogoutHandler())
	ag.Get("/me", mw.RequireUser(), auth.MeHandler(d.Client))

	acc := api.Group("/accounts", mw.RequireUser())
	acc.Post("/", accounts.ConnectHandler(d.Client, d.Sealer, d.NewClient))
	acc.Get("/", accounts.ListHandler(d.Client))
	acc.Delete("/:id", accounts.DisconnectHandler(d.Client))

	bl := api.Group("/blocks")
	bl.Get("/", blocksapi.ListHandler(d.Runner.Registry))
	bl.Get("/:id", blocksapi.GetHandler(d.Runner.Registry))
	bl.Post("/:id/run", mw.RequireUser(), blocksapi.RunHandler(d.Runner, d.Client))

	ex := api.Group("/executions", mw.RequireUser())
	ex.Get("/", executions.ListHandler(d.Client))
	ex.Get("/:id", executions.GetHandler(d.Client))

	api.Get("/search/executions", mw.RequireUser(), executions.SearchHandler(d.Runner.ES, runner.ExecutionIndex))
}

// NewApp builds the Fiber app with the shared error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
}
