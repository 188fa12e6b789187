package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
	"github.com/wealthfolio/networth_backend/internal/middleware"
	"github.com/wealthfolio/networth_backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler handles Google sign-in. Two flows are supported: the
// redirect flow (login -> Google -> callback -> frontend) and a direct POST
// of an ID token obtained by the frontend via Google Identity Services.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	auth               *AuthHandler
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	auth *AuthHandler,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		auth:               auth,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(
		services.GoogleOAuth,
		services.User,
		NewAuthHandler(services.User, services.Token, cfg),
		cfg,
	)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.GET("/callback", h.CallbackGoogle)
		google.POST("", h.SignInWithIDToken)
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	// State round-trips through a short-lived cookie for CSRF protection.
	c.SetCookie(oauthStateCookieName, state, 600, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// CallbackGoogle godoc
// @Summary Google sign-in callback
// @Description Handles the redirect back from Google, provisions the user, and
// @Description forwards the browser to the frontend with a session established.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	userInfo, err := h.googleOAuthService.GetUserInfo(c.Request.Context(), oauth2Token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch user info from Google"})
		return
	}

	user, err := h.userService.EnsureUser(c.Request.Context(), userInfo.Email, userInfo.Name)
	if err != nil {
		logger.Error("Failed to provision user from Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	resp, err := h.auth.startSession(c, user)
	if err != nil {
		logger.Error("Failed to start session after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	redirect := h.cfg.FrontendBaseURL + "/auth/callback?token=" + url.QueryEscape(resp.Token)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// SignInWithIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained by the frontend, provisions the
// @Description user if needed, and returns an application session.
// @Tags oauth
// @Accept json
// @Produce json
// @Param signin body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *GoogleOAuthHandler) SignInWithIDToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Rejected Google ID token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google ID token is missing an email claim"})
		return
	}

	user, err := h.userService.EnsureUser(c.Request.Context(), email, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to provision user from Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	resp, err := h.auth.startSession(c, user)
	if err != nil {
		logger.Error("Failed to start session after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
