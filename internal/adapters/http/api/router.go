package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/api/handlers"
)

type Router struct {
	auth      *handlers.AuthHandler
	chat      *handlers.ChatHandler
	careers   *handlers.CareerHandler
	roadmaps  *handlers.RoadmapHandler
	profile   *handlers.ProfileHandler
	sessionMW echo.MiddlewareFunc
}

func NewRouter(auth *handlers.AuthHandler, chat *handlers.ChatHandler, careers *handlers.CareerHandler, roadmaps *handlers.RoadmapHandler, profile *handlers.ProfileHandler, sessionMW echo.MiddlewareFunc) *Router {
	return &Router{auth: auth, chat: chat, careers: careers, roadmaps: roadmaps, profile: profile, sessionMW: sessionMW}
}

// Register wires every route under the API base path. Only the session
// exchange itself is reachable without a resolvable session.
func (r *Router) Register(g *echo.Group) {
	auth := g.Group("/auth")
	auth.POST("/session", r.auth.CreateSession)

	protected := auth.Group("", r.sessionMW)
	protected.GET("/me", r.auth.Me)
	protected.POST("/logout", r.auth.Logout)

	chat := g.Group("/chat", r.sessionMW)
	chat.POST("/send", r.chat.Send)
	chat.GET("/history", r.chat.History)

	careers := g.Group("/careers", r.sessionMW)
	careers.GET("/explore", r.careers.Explore)
	careers.POST("/recommend", r.careers.Recommend)

	roadmap := g.Group("/roadmap", r.sessionMW)
	roadmap.POST("/generate", r.roadmaps.Generate)
	roadmap.GET("/list", r.roadmaps.List)
	roadmap.GET("/:roadmapId", r.roadmaps.Get)

	user := g.Group("/user", r.sessionMW)
	user.GET("/profile", r.profile.Profile)
}
