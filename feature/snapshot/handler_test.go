package snapshot

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandleExport(t *testing.T) {
	svc, client := newTestService(t, 0)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	client.On("BucketExists", mock.Anything, "estoque").Return(true, nil)
	client.On("PutObject", mock.Anything, "estoque", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	status, body := do(t, app, "POST", "/api/snapshots")
	assert.Equal(t, 201, status)

	var resp ExportResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Snapshot)
	assert.True(t, strings.HasPrefix(resp.Snapshot.Key, "snapshots/estoque-"))
}

func TestHandleExport_Failure(t *testing.T) {
	svc, client := newTestService(t, 0)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	client.On("BucketExists", mock.Anything, "estoque").Return(false, assert.AnError)

	status, body := do(t, app, "POST", "/api/snapshots")
	assert.Equal(t, 500, status)

	var resp ExportResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Erro ao exportar estoque")
}

func TestHandleList(t *testing.T) {
	svc, client := newTestService(t, 0)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	client.On("ListObjects", mock.Anything, "estoque", mock.Anything).Return(listing())

	status, body := do(t, app, "GET", "/api/snapshots")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandleGet(t *testing.T) {
	svc, client := newTestService(t, 0)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	client.On("GetObject", mock.Anything, "estoque", "snapshots/estoque-20260101T000000Z-aaaaaaaa.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	status, _ := do(t, app, "GET", "/api/snapshots/estoque-20260101T000000Z-aaaaaaaa.json")
	assert.Equal(t, 404, status)

	status, _ = do(t, app, "GET", "/api/snapshots/other.json")
	assert.Equal(t, 400, status)
}
