package handlers

import (
	"shopconsole.io/configs/configslog"
	"shopconsole.io/handlers"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/queryparams"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EntityHandler exposes list, get, create, update and delete for one
// tenant scoped resource.
type EntityHandler[T any] struct {
	name    string
	service services.IEntityService[T]
}

func NewEntityHandler[T any](name string, service services.IEntityService[T]) *EntityHandler[T] {
	return &EntityHandler[T]{name: name, service: service}
}

func (h *EntityHandler[T]) List(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("List query could not be parsed", zap.String("resource", h.name), zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	result, err := h.service.List(c.UserContext(), orgMail, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *EntityHandler[T]) Get(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	entity, err := h.service.Get(c.UserContext(), orgMail, id)
	if err != nil {
		return err
	}
	return c.JSON(entity)
}

func (h *EntityHandler[T]) Create(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	entity := new(T)
	if err := c.BodyParser(entity); err != nil {
		return apperrors.Validation("invalid %s payload", h.name)
	}
	if err := h.service.Create(c.UserContext(), orgMail, entity); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}

func (h *EntityHandler[T]) Update(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	entity := new(T)
	if err := c.BodyParser(entity); err != nil {
		return apperrors.Validation("invalid %s payload", h.name)
	}
	if err := h.service.Update(c.UserContext(), orgMail, id, entity); err != nil {
		return err
	}
	return c.JSON(entity)
}

func (h *EntityHandler[T]) Delete(c *fiber.Ctx) error {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return err
	}
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), orgMail, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Register mounts the five routes under router.
func (h *EntityHandler[T]) Register(router fiber.Router) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}
