package graphqlapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	handler := NewHandler(testSchema(t))
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Post("/graphql", handler.HandleGraphQL)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestHandleGraphQLJSON(t *testing.T) {
	app := testApp(t)

	resp, body := postJSON(t, app, `{"query":"mutation { signup(email: \"a@b.com\", password: \"long-enough\", firstName: \"A\", lastName: \"B\") { token } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["errors"])

	payload := body["data"].(map[string]interface{})["signup"].(map[string]interface{})
	assert.NotEmpty(t, payload["token"])
}

func TestHandleGraphQLRejectsMalformedBody(t *testing.T) {
	app := testApp(t)

	resp, body := postJSON(t, app, `{"query": 42`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "GRAPHQL_MALFORMED_REQUEST", body["code"])

	resp, body = postJSON(t, app, `{"query":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "GRAPHQL_MALFORMED_REQUEST", body["code"])
}

func multipartRequest(t *testing.T, operations, fileMap string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("operations", operations))
	require.NoError(t, w.WriteField("map", fileMap))
	for key, content := range files {
		part, err := w.CreateFormFile(key, key+".pdf")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/graphql", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// parseApp exposes parseMultipart behind a test route so the decoded request
// can be inspected without executing a query.
func parseApp(t *testing.T, capture **request) *fiber.App {
	t.Helper()

	handler := NewHandler(testSchema(t))
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Post("/graphql", func(c *fiber.Ctx) error {
		req, err := handler.parseMultipart(c)
		if err != nil {
			return err
		}
		*capture = req
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestParseMultipartInjectsUploads(t *testing.T) {
	var parsed *request
	app := parseApp(t, &parsed)

	req := multipartRequest(t,
		`{"query":"mutation ($cv: Upload!) { x }","variables":{"cv":null}}`,
		`{"0":["variables.cv"]}`,
		map[string][]byte{"0": []byte("resume bytes")},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, parsed)
	assert.Equal(t, `mutation ($cv: Upload!) { x }`, parsed.Query)

	up, ok := parsed.Variables["cv"].(*applicant.Upload)
	require.True(t, ok, "file part must land in variables as an upload")
	assert.Equal(t, "0.pdf", up.Filename)
	assert.Equal(t, []byte("resume bytes"), up.Content)
}

func TestParseMultipartTooManyFiles(t *testing.T) {
	var parsed *request
	app := parseApp(t, &parsed)

	req := multipartRequest(t,
		`{"query":"mutation { x }","variables":{}}`,
		`{"0":["variables.a"],"1":["variables.b"],"2":["variables.c"]}`,
		map[string][]byte{"0": {1}, "1": {2}, "2": {3}},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, parsed)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "GRAPHQL_TOO_MANY_FILES", body["code"])
}

func TestSetVariable(t *testing.T) {
	up := &applicant.Upload{Filename: "cv.pdf", Content: []byte("x")}

	t.Run("top level", func(t *testing.T) {
		vars := map[string]interface{}{"cv": nil}
		require.NoError(t, setVariable(vars, "variables.cv", up))
		assert.Same(t, up, vars["cv"])
	})

	t.Run("nested path", func(t *testing.T) {
		vars := map[string]interface{}{}
		require.NoError(t, setVariable(vars, "variables.input.cv", up))
		nested := vars["input"].(map[string]interface{})
		assert.Same(t, up, nested["cv"])
	})

	t.Run("invalid prefix", func(t *testing.T) {
		assert.Error(t, setVariable(map[string]interface{}{}, "cv", up))
		assert.Error(t, setVariable(map[string]interface{}{}, "query.cv", up))
	})
}
