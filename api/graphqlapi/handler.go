package graphqlapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

const (
	maxUploadFiles = 2
	maxUploadBytes = 10 << 20
)

// Error Registry
var ErrRegistry = errx.NewRegistry("GRAPHQL")

// Error codes
var (
	CodeMalformedRequest = ErrRegistry.Register("MALFORMED_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Malformed GraphQL request")
	CodeTooManyFiles     = ErrRegistry.Register("TOO_MANY_FILES", errx.TypeValidation, http.StatusBadRequest, "Too many files in upload request")
	CodeFileTooLarge     = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusRequestEntityTooLarge, "Uploaded file exceeds the size limit")
)

func ErrMalformedRequest() *errx.Error {
	return ErrRegistry.New(CodeMalformedRequest)
}

func ErrTooManyFiles() *errx.Error {
	return ErrRegistry.New(CodeTooManyFiles)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

// request is the standard GraphQL POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests against the schema. It accepts plain JSON
// POSTs and multipart uploads following the graphql-multipart-request-spec.
type Handler struct {
	schema graphql.Schema
}

// NewHandler creates a new GraphQL handler instance
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// HandleGraphQL serves POST /graphql.
func (h *Handler) HandleGraphQL(c *fiber.Ctx) error {
	var req request

	contentType := string(c.Request().Header.ContentType())
	if strings.HasPrefix(contentType, "multipart/form-data") {
		parsed, err := h.parseMultipart(c)
		if err != nil {
			return err
		}
		req = *parsed
	} else {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return ErrMalformedRequest().WithDetail("parse_error", err.Error())
		}
	}

	if strings.TrimSpace(req.Query) == "" {
		return ErrMalformedRequest().WithDetail("query", "missing or empty")
	}

	// The auth middleware never rejects; resolvers that need an admin check
	// the principal themselves.
	ctx := auth.WithPrincipal(c.UserContext(), auth.PrincipalFromFiber(c))

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})
	return c.JSON(result)
}

// parseMultipart decodes an upload request: an "operations" field with the
// GraphQL body, a "map" field pointing file parts at variable paths, and the
// file parts themselves keyed by the map.
func (h *Handler) parseMultipart(c *fiber.Ctx) (*request, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, ErrMalformedRequest().WithDetail("parse_error", err.Error())
	}

	operations := formValue(form, "operations")
	if operations == "" {
		return nil, ErrMalformedRequest().WithDetail("operations", "missing or empty")
	}

	var req request
	if err := json.Unmarshal([]byte(operations), &req); err != nil {
		return nil, ErrMalformedRequest().WithDetail("operations", err.Error())
	}
	if req.Variables == nil {
		req.Variables = map[string]interface{}{}
	}

	rawMap := formValue(form, "map")
	if rawMap == "" {
		return nil, ErrMalformedRequest().WithDetail("map", "missing or empty")
	}

	var fileMap map[string][]string
	if err := json.Unmarshal([]byte(rawMap), &fileMap); err != nil {
		return nil, ErrMalformedRequest().WithDetail("map", err.Error())
	}
	if len(fileMap) > maxUploadFiles {
		return nil, ErrTooManyFiles().WithDetail("max_files", maxUploadFiles)
	}

	for key, paths := range fileMap {
		headers := form.File[key]
		if len(headers) == 0 {
			return nil, ErrMalformedRequest().WithDetail("file", fmt.Sprintf("no file part for map key %q", key))
		}
		header := headers[0]
		if header.Size > maxUploadBytes {
			return nil, ErrFileTooLarge().
				WithDetail("filename", header.Filename).
				WithDetail("max_bytes", maxUploadBytes)
		}

		up, err := readUpload(header)
		if err != nil {
			return nil, ErrMalformedRequest().WithDetail("file", err.Error())
		}

		for _, path := range paths {
			if err := setVariable(req.Variables, path, up); err != nil {
				return nil, ErrMalformedRequest().WithDetail("map", err.Error())
			}
		}
	}

	return &req, nil
}

func readUpload(header *multipart.FileHeader) (*applicant.Upload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", header.Filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", header.Filename, err)
	}
	if len(content) > maxUploadBytes {
		return nil, fmt.Errorf("file %q exceeds the size limit", header.Filename)
	}

	return &applicant.Upload{
		Filename: header.Filename,
		Content:  content,
	}, nil
}

// setVariable injects value into variables at a dotted map path such as
// "variables.cv". The leading "variables" segment is required.
func setVariable(variables map[string]interface{}, path string, value interface{}) error {
	segments := strings.Split(path, ".")
	if len(segments) < 2 || segments[0] != "variables" {
		return fmt.Errorf("invalid variable path %q", path)
	}

	current := variables
	for _, segment := range segments[1 : len(segments)-1] {
		next, ok := current[segment].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
	return nil
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
