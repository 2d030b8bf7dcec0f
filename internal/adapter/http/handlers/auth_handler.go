package handlers

import (
	"errors"
	"log"
	"net/http"

	request "espaco_castro/internal/adapter/http/dto/request"
	response "espaco_castro/internal/adapter/http/dto/response"
	"espaco_castro/internal/usecase"

	"github.com/gin-gonic/gin"
)

const msgInvalidCredentials = "Credenciais inválidas"

// AuthHandler handles the admin credential check.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login compares the submitted pair against the server-held secrets and, on
// success, answers with the bearer token for the admin endpoints.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnauthorized, response.AdminLoginResponse{Success: false, Message: msgInvalidCredentials})
		return
	}

	token, err := h.usecase.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrCredentialsNotConfigured) {
			log.Printf("[auth][handler] login failed err=%v", err)
			c.JSON(http.StatusInternalServerError, response.AdminLoginResponse{Success: false, Message: "Configuração de autenticação ausente"})
			return
		}
		c.JSON(http.StatusUnauthorized, response.AdminLoginResponse{Success: false, Message: msgInvalidCredentials})
		return
	}

	c.JSON(http.StatusOK, response.AdminLoginResponse{Success: true, Token: token})
}
