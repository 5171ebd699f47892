// Package router contains routing and server setup for the console.
package router

import (
	"blogpilot/config"
	"blogpilot/internal/delivery/api/middleware"
	"blogpilot/internal/delivery/api/router/handler"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	DashboardHandler  *handler.DashboardHandler
	BlogHandler       *handler.BlogHandler
	GenerationHandler *handler.GenerationHandler
	CreditHandler     *handler.CreditHandler
	ScheduleHandler   *handler.ScheduleHandler
	PostHandler       *handler.PostHandler
	KeywordHandler    *handler.KeywordHandler
	AdminHandler      *handler.AdminHandler
	SessionGate       *middleware.SessionGate
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	dashboardHandler  *handler.DashboardHandler
	blogHandler       *handler.BlogHandler
	generationHandler *handler.GenerationHandler
	creditHandler     *handler.CreditHandler
	scheduleHandler   *handler.ScheduleHandler
	postHandler       *handler.PostHandler
	keywordHandler    *handler.KeywordHandler
	adminHandler      *handler.AdminHandler
	sessionGate       *middleware.SessionGate
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		dashboardHandler:  params.DashboardHandler,
		blogHandler:       params.BlogHandler,
		generationHandler: params.GenerationHandler,
		creditHandler:     params.CreditHandler,
		scheduleHandler:   params.ScheduleHandler,
		postHandler:       params.PostHandler,
		keywordHandler:    params.KeywordHandler,
		adminHandler:      params.AdminHandler,
		sessionGate:       params.SessionGate,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the console routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// Public auth routes
	e.GET("/login", r.authHandler.LoginPage)
	e.POST("/login", r.authHandler.Login)
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/logout", r.authHandler.Logout)

	// Everything below requires a session
	protected := e.Group("")
	protected.Use(r.sessionGate.Require)

	protected.GET("/", r.dashboardHandler.GetDashboard)
	protected.GET("/session", r.authHandler.Whoami)

	creditsGroup := protected.Group("/credits")
	{
		creditsGroup.GET("", r.creditHandler.GetCredits)
		creditsGroup.GET("/history", r.creditHandler.GetHistory)
		creditsGroup.POST("/recharge", r.creditHandler.RequestRecharge)
		creditsGroup.GET("/estimate", r.creditHandler.Estimate)
	}

	blogsGroup := protected.Group("/blogs")
	{
		blogsGroup.GET("", r.blogHandler.ListBlogs)
		blogsGroup.POST("/select/:id", r.blogHandler.SelectBlog)
		blogsGroup.POST("/deselect", r.blogHandler.DeselectBlog)
		blogsGroup.GET("/draft", r.blogHandler.GetDraft)
		blogsGroup.PATCH("/draft", r.blogHandler.UpdateDraft)
		blogsGroup.POST("/draft/save", r.blogHandler.SaveDraft)
		blogsGroup.POST("/draft/analyze", r.blogHandler.AnalyzeDraft)
		blogsGroup.DELETE("/:id", r.blogHandler.DeleteBlog)
	}

	protected.GET("/schedule", r.scheduleHandler.GetSchedule)
	protected.PUT("/schedule", r.scheduleHandler.SaveSchedule)

	generationGroup := protected.Group("/generation")
	{
		generationGroup.POST("", r.generationHandler.StartGeneration)
		generationGroup.GET("/current", r.generationHandler.CurrentGeneration)
		generationGroup.POST("/cancel", r.generationHandler.CancelGeneration)
		generationGroup.GET("/:id", r.generationHandler.GetGeneration)
	}

	postsGroup := protected.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListPosts)
		postsGroup.POST("/:id/publish", r.postHandler.PublishPost)
		postsGroup.POST("/:id/track", r.postHandler.TrackPost)
		postsGroup.POST("/:id/export/:kind", r.postHandler.ExportPost)
	}
	protected.GET("/artifacts/*", r.postHandler.GetArtifact)

	keywordsGroup := protected.Group("/keywords")
	{
		keywordsGroup.GET("/search", r.keywordHandler.SearchKeywords)
		keywordsGroup.GET("/tracking", r.keywordHandler.GetTracking)
	}

	adminGroup := protected.Group("/admin")
	{
		adminGroup.GET("", r.adminHandler.GetDashboard)
		adminGroup.PUT("/policy", r.adminHandler.UpdatePolicy)
		adminGroup.POST("/credits/grant", r.adminHandler.GrantCredits)
		adminGroup.POST("/credits/decide", r.adminHandler.DecidePayment)
	}
}
