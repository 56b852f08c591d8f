package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/nomnomnow/backend/config"
	"github.com/nomnomnow/backend/places"
	"github.com/nomnomnow/backend/picker"
	"github.com/nomnomnow/backend/store"
)

type Server struct {
	cfg      *config.Config
	store    *store.Store
	picker   *picker.Client
	places   *places.Client
	upgrader websocket.Upgrader

	// now is swapped out in tests to pin the prompt clock.
	now func() time.Time
}

func New(cfg *config.Config, st *store.Store, pickerClient *picker.Client, placesClient *places.Client) *Server {
	return &Server{
		cfg:      cfg,
		store:    st,
		picker:   pickerClient,
		places:   placesClient,
		upgrader: websocket.Upgrader{},
		now:      time.Now,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secret := s.cfg.Auth.JWTSecret

	r.GET("/api/users/:username", AuthOptional(secret), s.handlePublicProfile)

	authed := r.Group("/api", AuthRequired(secret))
	{
		authed.POST("/chat", s.handleChat)
		authed.POST("/discover", s.handleDiscover)

		authed.GET("/profile", s.handleGetProfile)
		authed.PATCH("/profile", s.handleUpdateProfile)
		authed.GET("/profile/username-check", s.handleUsernameCheck)

		authed.GET("/restaurants", s.handleListRestaurants)
		authed.POST("/restaurants", s.handleSaveRestaurant)
		authed.PATCH("/restaurants/:id", s.handleUpdateRestaurant)
		authed.DELETE("/restaurants/:id", s.handleDeleteRestaurant)

		authed.GET("/friends", s.handleListFriends)
		authed.GET("/friends/search", s.handleFriendSearch)
		authed.POST("/friends/requests", s.handleSendFriendRequest)
		authed.GET("/friends/requests", s.handlePendingRequests)
		authed.GET("/friends/requests/sent", s.handleSentRequests)
		authed.POST("/friends/requests/:id/accept", s.handleAcceptFriendRequest)
		authed.DELETE("/friends/requests/:id", s.handleDeleteFriendRequest)
		authed.DELETE("/friends/:id", s.handleUnfriend)
	}

	r.GET("/ws/picker", AuthRequired(secret), s.handlePickerSocket)

	return r
}

// Handler wraps the router with CORS for browser clients.
func (s *Server) Handler() http.Handler {
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.Cors.Origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return corsWrapper.Handler(s.Router())
}
