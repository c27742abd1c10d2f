package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/SscSPs/shop_management_app/internal/platform/config"
	"github.com/SscSPs/shop_management_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// adminSubject is the JWT subject for the single shared operator session.
const adminSubject = "admin"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication. Login is rate
// limited per IP to slow down credential guessing.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login authenticates the shared admin account and returns a JWT token.
// Credentials come from the environment; there is no user table.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if h.cfg.AdminUsername == "" || h.cfg.AdminPassword == "" {
		logger.Error("Login attempted but admin credentials are not configured")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Login is not configured"})
		return
	}

	usernameOK := utils.SecureCompare(req.Username, h.cfg.AdminUsername)
	passwordOK := utils.SecureCompare(req.Password, h.cfg.AdminPassword)
	if !usernameOK || !passwordOK {
		logger.Warn("Failed login attempt", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(adminSubject, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration / time.Second),
	})
}
