package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Media handlers implement the upload/delete surface the admin UI uses to
// manage images before embedding their paths in records.

func (h *HTTPHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		h.Log.Errorf("Failed to parse multipart form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files uploaded"})
	}

	paths, err := h.MediaUC.UploadImages(c.UserContext(), form.File["images"])
	if err != nil {
		return respondError(c, err, "")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d file(s) uploaded successfully", len(paths)),
		"paths":   paths,
	})
}

func (h *HTTPHandler) DeleteImage(c *fiber.Ctx) error {
	var body struct {
		ImagePath string `json:"imagePath"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.Log.Debugf("Failed to parse delete-image body: %v", err)
	}

	if err := h.MediaUC.DeleteImage(c.UserContext(), body.ImagePath); err != nil {
		return respondError(c, err, "Image not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image deleted successfully",
	})
}
