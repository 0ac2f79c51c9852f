package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/model"
	"github.com/deppfellow/request-params/internal/server"
)

type UserHandler struct {
	Handler
}

func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
	}
}

// CreateUser returns the validated user unchanged. Nothing is stored.
func (h *UserHandler) CreateUser(c echo.Context, u *model.User) (*model.User, error) {
	return u, nil
}

func (h *UserHandler) ValidateUsername(c echo.Context, q *model.UsernameQuery) (*model.Message, error) {
	return &model.Message{Message: "Username is valid"}, nil
}
