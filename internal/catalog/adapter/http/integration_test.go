package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"storefront-api/internal/catalog/adapter/persistence/jsonfile"
	"storefront-api/internal/catalog/adapter/persistence/localdisk"
	"storefront-api/internal/catalog/config"
	"storefront-api/internal/catalog/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationApp wires a fiber app against real temp-dir-backed stores,
// the way the catalog module does in production. The fiber config mirrors
// the server's, notably the raised body limit, so upload requests travel
// the same pipeline they would in a deployment.
func newIntegrationApp(t *testing.T, document string) (*fiber.App, string) {
	t.Helper()

	dataFile := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(document), 0o644))
	uploadsRoot := t.TempDir()

	store, err := jsonfile.New(dataFile, testLogger{})
	require.NoError(t, err)
	media, err := localdisk.New(filepath.Join(uploadsRoot, "products"), testLogger{})
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.UploadBodyLimit(),
	})
	app.Static("/uploads", uploadsRoot)
	h := NewCatalogHTTPHandler(
		usecase.NewCatalogUsecase(store, testLogger{}),
		usecase.NewMediaUsecase(media, cfg.UploadMaxFiles, cfg.UploadMaxBytes, testLogger{}),
		testLogger{},
	)
	h.RegisterRoutes(app)
	return app, uploadsRoot
}

func TestEventsLifecycle_EndToEnd(t *testing.T) {
	app, _ := newIntegrationApp(t, `{"products": [], "events": []}`)

	// Create assigns id "1" on an empty collection.
	body := []byte(`{"title": "Meetup", "location": "Jakarta", "description": "Monthly community meetup", "status": "upcoming", "logo": "/uploads/products/x.png"}`)
	req := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "1", created["id"])
	assert.Equal(t, "Meetup", created["title"])

	// Get returns the same record.
	resp, err = app.Test(httptest.NewRequest("GET", "/events/1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, created, got)

	// Update merges the patch and leaves every other field unchanged.
	req = httptest.NewRequest("PUT", "/events/1", bytes.NewReader([]byte(`{"status": "completed"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var updated map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "Meetup", updated["title"])
	assert.Equal(t, "Jakarta", updated["location"])
	assert.Equal(t, "/uploads/products/x.png", updated["logo"])

	// Delete returns the removed record; a subsequent get is a 404.
	resp, err = app.Test(httptest.NewRequest("DELETE", "/events/1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var removed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&removed))
	assert.Equal(t, "completed", removed["status"])

	resp, err = app.Test(httptest.NewRequest("GET", "/events/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestNumericIDsResolveViaStringComparison(t *testing.T) {
	app, _ := newIntegrationApp(t, `{"products": [{"id": 3, "name": "Mug"}]}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/products/3", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUploadThenDelete_EndToEnd(t *testing.T) {
	app, uploadsRoot := newIntegrationApp(t, `{"products": []}`)

	buf, contentType := multipartUpload(t, []uploadFile{
		{name: "a.png", contentType: "image/png", content: []byte("png-bytes")},
		{name: "b.jpg", contentType: "image/jpeg", content: []byte("jpg-bytes")},
	})
	req := httptest.NewRequest("POST", "/api/upload-images", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Paths   []string `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	require.Len(t, result.Paths, 2)
	for _, p := range result.Paths {
		assert.Contains(t, p, "/uploads/products/")
	}

	// The stored files exist on disk and are served statically.
	for _, p := range result.Paths {
		name := filepath.Base(p)
		_, err := os.Stat(filepath.Join(uploadsRoot, "products", name))
		require.NoError(t, err)

		staticResp, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, staticResp.StatusCode)
	}

	// Delete the first image; a second delete of the same path is a 404.
	deleteBody, err := json.Marshal(map[string]string{"imagePath": result.Paths[0]})
	require.NoError(t, err)

	req = httptest.NewRequest("DELETE", "/api/delete-image", bytes.NewReader(deleteBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/delete-image", bytes.NewReader(deleteBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	staticResp, err := app.Test(httptest.NewRequest("GET", result.Paths[0], nil))
	require.NoError(t, err)
	assert.Equal(t, 404, staticResp.StatusCode)
}

func TestUploadFileAtSizeCap_EndToEnd(t *testing.T) {
	app, uploadsRoot := newIntegrationApp(t, `{"products": []}`)

	// A file at the 5 MiB cap must clear the server body limit and be stored.
	buf, contentType := multipartUpload(t, []uploadFile{
		{name: "large.png", contentType: "image/png", content: bytes.Repeat([]byte("a"), 5*1024*1024)},
	})
	req := httptest.NewRequest("POST", "/api/upload-images", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		Success bool     `json:"success"`
		Paths   []string `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	require.Len(t, result.Paths, 1)

	info, err := os.Stat(filepath.Join(uploadsRoot, "products", filepath.Base(result.Paths[0])))
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024*1024), info.Size())
}

func TestUploadFileOverSizeCap_EndToEnd(t *testing.T) {
	app, uploadsRoot := newIntegrationApp(t, `{"products": []}`)

	buf, contentType := multipartUpload(t, []uploadFile{
		{name: "huge.png", contentType: "image/png", content: bytes.Repeat([]byte("a"), 6*1024*1024)},
	})
	req := httptest.NewRequest("POST", "/api/upload-images", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result["error"], "size limit")

	// Nothing was written to the media store.
	entries, err := os.ReadDir(filepath.Join(uploadsRoot, "products"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordCRUDDoesNotTouchStoredImages(t *testing.T) {
	app, uploadsRoot := newIntegrationApp(t, `{"products": []}`)

	buf, contentType := multipartUpload(t, []uploadFile{
		{name: "a.png", contentType: "image/png", content: []byte("png-bytes")},
	})
	req := httptest.NewRequest("POST", "/api/upload-images", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		Paths []string `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Paths, 1)

	// Create a product referencing the image, then delete the record. The
	// file must survive; media cleanup is the caller's responsibility.
	createBody, err := json.Marshal(map[string]interface{}{"name": "Mug", "images": result.Paths})
	require.NoError(t, err)
	req = httptest.NewRequest("POST", "/products", bytes.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/products/1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	_, err = os.Stat(filepath.Join(uploadsRoot, "products", filepath.Base(result.Paths[0])))
	assert.NoError(t, err)
}
