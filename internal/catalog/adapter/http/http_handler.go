package http

import (
	"context"
	"errors"

	"storefront-api/internal/catalog/domain/model"
	"storefront-api/internal/catalog/usecase"
	"storefront-api/internal/shared/contextkeys"
	apperrors "storefront-api/internal/shared/errors"
	"storefront-api/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// HTTPHandler exposes the storefront content surface: the generic collection
// CRUD routes plus the media upload/delete endpoints.
type HTTPHandler struct {
	CatalogUC usecase.CatalogUsecase
	MediaUC   usecase.MediaUsecase
	Log       logger.Logger
}

// NewCatalogHTTPHandler creates the HTTP handler for the catalog module.
func NewCatalogHTTPHandler(catalogUC usecase.CatalogUsecase, mediaUC usecase.MediaUsecase, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		CatalogUC: catalogUC,
		MediaUC:   mediaUC,
		Log:       log.WithComponent("http"),
	}
}

// RegisterRoutes registers every route of the content surface. The media
// routes go first; the wildcard collection routes would swallow them
// otherwise.
func (h *HTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/api/upload-images", h.UploadImages)
	router.Delete("/api/delete-image", h.DeleteImage)

	router.Get("/:collection", h.ListRecords)
	router.Post("/:collection", h.CreateRecord)
	router.Get("/:collection/:id", h.GetRecord)
	router.Put("/:collection/:id", h.UpdateRecord)
	router.Delete("/:collection/:id", h.DeleteRecord)
}

// collection validates the collection path parameter and enriches the request
// context for logging. Unknown names get a 404, matching an unrouted path.
func (h *HTTPHandler) collection(c *fiber.Ctx, op string) (string, bool) {
	name := c.Params("collection")
	if !model.IsKnownCollection(name) {
		return "", false
	}
	ctx := context.WithValue(c.UserContext(), contextkeys.CollectionKey, name)
	ctx = context.WithValue(ctx, contextkeys.OperationKey, op)
	c.SetUserContext(ctx)
	return name, true
}

// respondError maps usecase errors onto the wire format the storefront UI
// expects: a status code and an {error} body.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	status := apperrors.HTTPStatus(err)

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == fiber.StatusNotFound && notFoundMessage != "" {
		message = notFoundMessage
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}

func collectionNotFound(c *fiber.Ctx) error {
	err := apperrors.NewNotFoundError("Collection").WithCause(apperrors.ErrUnknownCollection)
	return respondError(c, err, "")
}
