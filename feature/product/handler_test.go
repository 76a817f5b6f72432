package product_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"stock-counter/feature/counting"
	"stock-counter/feature/inventory/testutil"
	"stock-counter/feature/product"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.NewDB(t)
	app := fiber.New()
	feature := product.NewFeature(db, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleScan(t *testing.T) {
	app, db := setupTestApp(t)
	testutil.SeedProduct(t, db, "123", "Arroz", 3)

	t.Run("Found", func(t *testing.T) {
		status, body := postJSON(t, app, "/api/escanear", `{"codigo_barra":"123"}`)
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Produto encontrado: Arroz", body["message"])
		assert.Equal(t, "123", body["codigo_barra"])
		assert.Equal(t, "Arroz", body["nome"])
	})

	t.Run("NotFound", func(t *testing.T) {
		status, body := postJSON(t, app, "/api/escanear", `{"codigo_barra":"999"}`)
		assert.Equal(t, 200, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, product.MsgNotFound, body["message"])
		assert.Equal(t, "999", body["codigo_barra"])
		_, hasName := body["nome"]
		assert.False(t, hasName)
	})

	t.Run("ExactMatchOnly", func(t *testing.T) {
		status, body := postJSON(t, app, "/api/escanear", `{"codigo_barra":" 123\n"}`)
		assert.Equal(t, 200, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, product.MsgNotFound, body["message"])
		assert.Equal(t, " 123\n", body["codigo_barra"])
	})

	t.Run("LongUnknownBarcode", func(t *testing.T) {
		long := strings.Repeat("7", 200)
		status, body := postJSON(t, app, "/api/escanear", `{"codigo_barra":"`+long+`"}`)
		assert.Equal(t, 200, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, product.MsgNotFound, body["message"])
		assert.Equal(t, long, body["codigo_barra"])
	})

	t.Run("MissingBarcode", func(t *testing.T) {
		status, body := postJSON(t, app, "/api/escanear", `{}`)
		assert.Equal(t, 400, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Campo obrigatório: codigo_barra", body["message"])
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		status, body := postJSON(t, app, "/api/escanear", `{"codigo_barra":`)
		assert.Equal(t, 400, status)
		assert.Equal(t, false, body["success"])
	})
}

func TestHandleRegister(t *testing.T) {
	app, db := setupTestApp(t)

	status, body := postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"555","nome":"Sabao"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, `Produto "Sabao" cadastrado com sucesso.`, body["message"])
	assert.Equal(t, 0, testutil.Stock(t, db, "555"))

	status, body = postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"555","nome":"Outro"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, product.MsgDuplicate, body["message"])

	// first registration unchanged
	_, body = postJSON(t, app, "/api/escanear", `{"codigo_barra":"555"}`)
	assert.Equal(t, "Sabao", body["nome"])

	status, body = postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"556","nome":"   "}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Campo obrigatório: nome", body["message"])

	status, body = postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"  ","nome":"Vazio"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Campo obrigatório: codigo_barra", body["message"])

	status, body = postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"`+strings.Repeat("8", 129)+`","nome":"Longo"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Campo muito longo: codigo_barra (máximo 128)", body["message"])
}

func TestHandleList(t *testing.T) {
	app, db := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dados_completos", nil))
	require.NoError(t, err)
	var empty []product.ProductView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	testutil.SeedProduct(t, db, "123", "Arroz", 15)
	testutil.SeedProduct(t, db, "456", "Feijao", 0)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/dados_completos", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rows []product.ProductView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	assert.Equal(t, []product.ProductView{
		{Barcode: "123", Name: "Arroz", Stock: 15},
		{Barcode: "456", Name: "Feijao", Stock: 0},
	}, rows)
}

func TestHandleList_ReflectsRegisterAndSessions(t *testing.T) {
	db := testutil.NewDB(t)
	app := fiber.New()
	require.NoError(t, product.NewFeature(db, zap.NewNop()).Load(app))
	require.NoError(t, counting.NewFeature(db, zap.NewNop()).Load(app))

	list := func() []product.ProductView {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest("GET", "/api/dados_completos", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
		var rows []product.ProductView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
		return rows
	}

	_, body := postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"111","nome":"Arroz"}`)
	require.Equal(t, true, body["success"])
	_, body = postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"222","nome":"Feijao"}`)
	require.Equal(t, true, body["success"])
	assert.Equal(t, []product.ProductView{
		{Barcode: "111", Name: "Arroz", Stock: 0},
		{Barcode: "222", Name: "Feijao", Stock: 0},
	}, list())

	_, body = postJSON(t, app, "/api/salvar_contagem", `{"111":{"quantidade":4},"333":{"quantidade":9},"222":{"quantidade":2},"111":{"quantidade":1}}`)
	require.Equal(t, true, body["success"])

	// duplicate registration leaves stock alone
	_, body = postJSON(t, app, "/api/cadastrar_produto", `{"codigo_barra":"111","nome":"Outro"}`)
	require.Equal(t, false, body["success"])

	_, body = postJSON(t, app, "/api/salvar_contagem", `{"222":{"quantidade":-3}}`)
	require.Equal(t, true, body["success"])

	assert.Equal(t, []product.ProductView{
		{Barcode: "111", Name: "Arroz", Stock: 5},
		{Barcode: "222", Name: "Feijao", Stock: -1},
	}, list())
	assert.Equal(t, 5, testutil.Stock(t, db, "111"))
	assert.Equal(t, -1, testutil.Stock(t, db, "222"))
}
