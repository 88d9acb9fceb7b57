package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CaCortez384/MiFestival/internal/auth"
	"github.com/CaCortez384/MiFestival/internal/config"
	database "github.com/CaCortez384/MiFestival/internal/db"
	"github.com/CaCortez384/MiFestival/internal/storage"
	"github.com/CaCortez384/MiFestival/internal/store"

	"github.com/CaCortez384/MiFestival/internal/api/handlers"
	"github.com/CaCortez384/MiFestival/internal/api/middleware"
)

type Server struct {
	cfg     *config.Config
	db      *database.Client
	storage *storage.Client
	tokens  *auth.Tokens
	router  *gin.Engine
}

func New(cfg *config.Config, db *database.Client, storage *storage.Client) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		db:      db,
		storage: storage,
		tokens:  auth.NewTokens(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour),
		router:  gin.Default(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	// CORS Configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

	// "Authorization" must be allowed so the frontend can send the JWT
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	festivals := store.NewGorm(s.db.DB)

	authHandler := handlers.NewAuthHandler(s.db.DB, s.tokens)
	festivalHandler := handlers.NewFestivalHandler(festivals)
	artistHandler := handlers.NewArtistHandler(festivals, s.db.DB)
	candidateHandler := handlers.NewCandidateHandler(s.db.DB)
	posterHandler := handlers.NewPosterHandler(festivals, s.storage)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "mifestival"})
	})

	// API Group
	v1 := s.router.Group("/api/v1")
	{
		// ==========================================
		// PUBLIC ROUTES (No Token Required)
		// ==========================================
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		// Shared festival pages: anyone with the link can view
		v1.GET("/festivals/:id", festivalHandler.GetFestival)
		v1.GET("/festivals/:id/grid", festivalHandler.GetGrid)
		v1.GET("/festivals/:id/poster", posterHandler.GetPoster)
		v1.GET("/candidates", candidateHandler.GetCandidates)

		// ==========================================
		// EDITOR ROUTES (Guest Sentinel Allowed)
		// ==========================================
		// A missing token resolves to the guest principal; guests own
		// guest-sentinel festivals, which are not durable.
		editor := v1.Group("/")
		editor.Use(middleware.OptionalAuth(s.tokens))
		{
			editor.POST("/festivals", festivalHandler.CreateFestival)
			editor.PATCH("/festivals/:id", festivalHandler.UpdateFestival)

			editor.GET("/festivals/:id/pool", artistHandler.Pool)
			editor.POST("/festivals/:id/artists", artistHandler.AddArtist)
			editor.PUT("/festivals/:id/assignments", artistHandler.Assign)
			editor.POST("/festivals/:id/assignments/unassign", artistHandler.Unassign)
			editor.POST("/festivals/:id/artists/remove", artistHandler.Remove)

			editor.POST("/festivals/:id/poster", posterHandler.UploadPoster)
		}

		// ==========================================
		// PROTECTED ROUTES (JWT Token Required)
		// ==========================================
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(s.tokens))
		{
			protected.GET("/me/festivals", festivalHandler.MyFestivals)

			// --- ADMIN ONLY ---
			protected.POST("/candidates", middleware.RequireRole("admin"), candidateHandler.AddCandidate)
		}
	}
}

// Start runs the server on the configured port
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
