package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/domain"
	"communitycalendar/internal/i18n"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest is the request body for POST /api/register.
type RegisterRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Name         *string `json:"name"`
	RegisterCode string  `json:"registerCode"`
}

// validate checks fields in declaration order and returns the message key
// of the first failing rule; callers send that single message verbatim.
func (req RegisterRequest) validate() (string, bool) {
	if !emailRegexp.MatchString(strings.TrimSpace(req.Email)) {
		return "error.invalid_email", false
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		return "error.password_too_short", false
	}
	if req.Name != nil {
		n := utf8.RuneCountInString(*req.Name)
		if n < 1 {
			return "error.name_required", false
		}
		if n > 100 {
			return "error.name_too_long", false
		}
	}
	if strings.TrimSpace(req.RegisterCode) == "" {
		return "error.register_code_required", false
	}
	return "", true
}

// RegisterResponse is the response body for POST /api/register.
type RegisterResponse struct {
	OK bool `json:"ok"`
}

// LoginRequest is the request body for POST /api/auth/login. The captcha
// fields carry the client-side arithmetic challenge.
type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	CaptchaA      int    `json:"captchaA"`
	CaptchaB      int    `json:"captchaB"`
	CaptchaAnswer int    `json:"captchaAnswer"`
}

// LoginResponse is the response body for POST /api/auth/login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
	T       *i18n.Translator
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, t *i18n.Translator) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
		T:       t,
	}
}

func (c *AuthController) msg(r *http.Request, key string) string {
	return c.T.T(helpers.Locale(r), key)
}

// Register godoc
// @Summary Register a new admin
// @Description Self-service enrollment gated by a shared registration code. Codes are multi-use until deactivated.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} helpers.ErrorResponse "validation failure, first failing rule"
// @Failure 401 {object} helpers.ErrorResponse "unknown or inactive registration code"
// @Failure 409 {object} helpers.ErrorResponse "email already registered"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, "error.invalid_body"))
		return
	}
	if key, ok := req.validate(); !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, key))
		return
	}
	err := c.Service.Register(r.Context(), domain.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		RegisterCode: req.RegisterCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRegistrationCode):
			helpers.WriteJSONError(w, http.StatusUnauthorized, c.msg(r, "error.invalid_register_code"))
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusConflict, c.msg(r, "error.email_taken"))
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.unexpected"))
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegisterResponse{OK: true})
}

// Login godoc
// @Summary Log in
// @Description Authenticates with email, password, and the re-submitted arithmetic challenge. Returns a Bearer token for mutating event operations.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials and challenge answer"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, "error.invalid_body"))
		return
	}
	token, err := c.Service.Login(r.Context(), domain.Credentials{
		Email:         req.Email,
		Password:      req.Password,
		CaptchaA:      req.CaptchaA,
		CaptchaB:      req.CaptchaB,
		CaptchaAnswer: req.CaptchaAnswer,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCaptchaFailed):
			helpers.WriteJSONError(w, http.StatusUnauthorized, c.msg(r, "error.captcha_failed"))
		case errors.Is(err, domain.ErrInvalidCredentials):
			helpers.WriteJSONError(w, http.StatusUnauthorized, c.msg(r, "error.invalid_credentials"))
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.unexpected"))
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer"})
}
