package http

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"storefront-api/internal/shared/logger"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for handler tests.
type testLogger struct{}

func (testLogger) Debug(args ...interface{})                         {}
func (testLogger) Info(args ...interface{})                          {}
func (testLogger) Warn(args ...interface{})                          {}
func (testLogger) Error(args ...interface{})                         {}
func (testLogger) Fatal(args ...interface{})                         {}
func (testLogger) Debugf(format string, args ...interface{})         {}
func (testLogger) Infof(format string, args ...interface{})          {}
func (testLogger) Warnf(format string, args ...interface{})          {}
func (testLogger) Errorf(format string, args ...interface{})         {}
func (testLogger) Fatalf(format string, args ...interface{})         {}
func (t testLogger) WithFields(map[string]interface{}) logger.Logger { return t }
func (t testLogger) WithContext(context.Context) logger.Logger       { return t }
func (t testLogger) WithComponent(string) logger.Logger              { return t }

// multipartUpload builds a multipart body carrying the given files under the
// "images" field, with explicit per-part content types.
type uploadFile struct {
	name        string
	contentType string
	content     []byte
}

func multipartUpload(t *testing.T, files []uploadFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
