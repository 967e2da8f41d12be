package http

import (
	"fmt"

	"storefront-api/internal/catalog/domain/model"
	"storefront-api/internal/catalog/usecase"

	"github.com/gofiber/fiber/v2"
)

// Collection handlers implement the uniform CRUD contract shared by
// products, event-products, events and testimonials.

func (h *HTTPHandler) ListRecords(c *fiber.Ctx) error {
	collection, ok := h.collection(c, "list")
	if !ok {
		return collectionNotFound(c)
	}
	h.Log.Debugf("Listing %s via HTTP", collection)

	records, err := h.CatalogUC.ListRecords(c.UserContext(), usecase.ListRecordsRequest{Collection: collection})
	if err != nil {
		h.Log.Errorf("Failed to list %s: %v", collection, err)
		return respondError(c, err, "")
	}
	if records == nil {
		records = []model.Record{}
	}
	return c.JSON(records)
}

func (h *HTTPHandler) GetRecord(c *fiber.Ctx) error {
	collection, ok := h.collection(c, "get")
	if !ok {
		return collectionNotFound(c)
	}

	record, err := h.CatalogUC.GetRecord(c.UserContext(), usecase.GetRecordRequest{
		Collection: collection,
		ID:         c.Params("id"),
	})
	if err != nil {
		return respondError(c, err, notFoundMessage(collection))
	}
	return c.JSON(record)
}

func (h *HTTPHandler) CreateRecord(c *fiber.Ctx) error {
	collection, ok := h.collection(c, "create")
	if !ok {
		return collectionNotFound(c)
	}

	var payload model.Record
	if err := c.BodyParser(&payload); err != nil {
		h.Log.Errorf("Failed to parse request body for %s: %v", collection, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.CatalogUC.CreateRecord(c.UserContext(), usecase.CreateRecordRequest{
		Collection: collection,
		Data:       payload,
	})
	if err != nil {
		h.Log.Errorf("Failed to create record in %s: %v", collection, err)
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *HTTPHandler) UpdateRecord(c *fiber.Ctx) error {
	collection, ok := h.collection(c, "update")
	if !ok {
		return collectionNotFound(c)
	}

	var payload model.Record
	if err := c.BodyParser(&payload); err != nil {
		h.Log.Errorf("Failed to parse request body for %s: %v", collection, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.CatalogUC.UpdateRecord(c.UserContext(), usecase.UpdateRecordRequest{
		Collection: collection,
		ID:         c.Params("id"),
		Patch:      payload,
	})
	if err != nil {
		return respondError(c, err, notFoundMessage(collection))
	}
	return c.JSON(record)
}

func (h *HTTPHandler) DeleteRecord(c *fiber.Ctx) error {
	collection, ok := h.collection(c, "delete")
	if !ok {
		return collectionNotFound(c)
	}

	record, err := h.CatalogUC.DeleteRecord(c.UserContext(), usecase.DeleteRecordRequest{
		Collection: collection,
		ID:         c.Params("id"),
	})
	if err != nil {
		return respondError(c, err, notFoundMessage(collection))
	}
	return c.JSON(record)
}

func notFoundMessage(collection string) string {
	return fmt.Sprintf("%s not found", model.CollectionLabel(collection))
}
