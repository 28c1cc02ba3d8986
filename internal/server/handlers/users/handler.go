package users

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/userdesk/userdesk/internal/server/validation"
	"github.com/userdesk/userdesk/internal/users"
	"go.uber.org/zap"
)

type Handler struct {
	usersSvc *users.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(usersSvc *users.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		usersSvc: usersSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/users")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	draft := users.UserDraft{
		UserBase: users.UserBase{
			Name:    req.Name,
			Email:   req.Email,
			IsAdmin: req.IsAdmin,
		},
		Password: req.Password,
	}

	user, err := h.usersSvc.Create(c.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newUserResponse(user))
}

func (h *Handler) list(c *fiber.Ctx) error {
	all, err := h.usersSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	responses := lo.Map(all, func(user users.User, _ int) UserResponse {
		return newUserResponse(&user)
	})

	return c.JSON(responses)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.usersSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	return c.JSON(newUserResponse(user))
}

func (h *Handler) patch(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := getUserID(c)
	if err != nil {
		return err
	}

	update := users.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	}

	user, err := h.usersSvc.Update(c.Context(), id, update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return c.JSON(newUserResponse(user))
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.usersSvc.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, users.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, users.ErrDuplicateEmail):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
