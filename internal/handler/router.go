package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salonbook/internal/domain/user"
	"salonbook/internal/handler/api"
	"salonbook/internal/handler/middleware"
	"salonbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, reviewHandler *api.ReviewHandler, moderationHandler *api.ModerationHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reviewHandler, moderationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, reviewHandler *api.ReviewHandler, moderationHandler *api.ModerationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			// Detail is public but owners see their own pending/rejected rows
			detail := reviews.Group("")
			detail.Use(authMiddleware.OptionalAuth())
			addRoutes(detail, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: reviewHandler.Get},
			})

			authed := reviews.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
				{Method: http.MethodGet, Path: "/eligibility", Handler: reviewHandler.CheckEligibility},
				{Method: http.MethodPut, Path: "/:id", Handler: reviewHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
			})
		}

		salons := apiGroup.Group("/salons")
		{
			addRoutes(salons, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListBySalon},
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: reviewHandler.SalonRatingStats},
			})
		}

		staff := apiGroup.Group("/staff")
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: reviewHandler.StaffRatingStats},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByUser},
			})
		}

		moderation := apiGroup.Group("/moderation")
		moderation.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleModerator))
		{
			addRoutes(moderation, []route{
				{Method: http.MethodGet, Path: "/reviews", Handler: moderationHandler.ListPending},
				{Method: http.MethodPost, Path: "/reviews/:id/approve", Handler: moderationHandler.Approve},
				{Method: http.MethodPost, Path: "/reviews/:id/reject", Handler: moderationHandler.Reject},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
