package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/logging"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
)

// UserService is what the auth endpoints need from the user layer.
type UserService interface {
	TokenValidator
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthHandler struct {
	users  UserService
	logger logging.Logger
}

func NewAuthHandler(users UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type meResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		status, _ := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(r.Context(), "registration failed", "error", err)
		}
		writeError(w, err)
		return
	}

	h.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	JSONResponse(w, http.StatusOK, messageResponse{Message: "User registered successfully"})
}

// Token handles POST /token (form encoded username and password)
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	h.login(w, r, r.PostForm.Get("username"), r.PostForm.Get("password"))
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.login(w, r, req.Username, req.Password)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, username, password string) {
	token, err := h.users.Login(r.Context(), username, password)
	if err != nil {
		status, _ := statusFor(err)
		if status == http.StatusUnauthorized {
			ErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: common.TokenType})
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	JSONResponse(w, http.StatusOK, meResponse{ID: user.ID, Username: user.UserName, Email: user.Email})
}
