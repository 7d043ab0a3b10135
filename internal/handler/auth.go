package handler

import (
	"net/http"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/service"
)

// AuthHandler обрабатывает эндпоинты регистрации и входа
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignupRequest представляет тело запроса на регистрацию
type SignupRequest struct {
	Username string      `json:"username" validate:"required,max=50" msg:"Username is required"`
	Email    string      `json:"email" validate:"required,email,max=100" msg:"A valid email is required"`
	Password string      `json:"password" validate:"required" msg:"Password is required"`
	FullName string      `json:"fullName" validate:"required,max=100" msg:"Full name is required"`
	Role     domain.Role `json:"role"`
}

// LoginRequest представляет тело запроса на вход
type LoginRequest struct {
	Username string `json:"username" validate:"required" msg:"Username is required"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// Signup обрабатывает POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// Login обрабатывает POST /api/auth/login. Токен не выдается, возвращается профиль
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}
