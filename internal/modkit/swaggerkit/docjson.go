// Package swaggerkit mounts the swagger UI and serves the OpenAPI document
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "langrelay/internal/platform/errors"
	pnet "langrelay/internal/platform/net"

	docs "langrelay/internal/services/api/docs"
)

// SpecMutator lets modules adjust the parsed document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is swapped in tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a mutator; api.Mount calls it before routes are served
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

const errorSchemaRef = "#/components/schemas/ErrorResponse"

// exampleRequestID matches the shape chi's RequestID middleware stamps
const exampleRequestID = "langrelay/Ab3dE5fG7h-000042"

// defaults every operation documents unless it declares the status itself
var (
	internalError = perr.Internalf("internal error")
	bodyError     = perr.WithField(perr.Validationf("prompt is required"), "prompt")
)

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "doc parse error", http.StatusInternalServerError)
			return
		}

		downgrade(spec, "/api/v1")
		schemas(spec)["ErrorResponse"] = errorSchema()
		addDefaultErrors(spec)

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// downgrade serves the swag 3.1 output as 3.0.3 with a servers entry, the UI renders nothing newer
func downgrade(spec map[string]any, base string) {
	if v, _ := spec["openapi"].(string); v == "" || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	s, ok := comps["schemas"].(map[string]any)
	if !ok {
		s = map[string]any{}
		comps["schemas"] = s
	}
	return s
}

// errorSchema describes the error half of pnet.Wire from its json tags
func errorSchema() map[string]any {
	props := map[string]any{}
	var required []any
	t := reflect.TypeOf(pnet.Wire{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" || name == "data" {
			continue
		}
		switch f.Type.Kind() {
		case reflect.String:
			props[name] = map[string]any{"type": "string"}
		default:
			props[name] = map[string]any{"type": "integer", "format": "int32"}
		}
		if opts != "omitempty" {
			required = append(required, name)
		}
	}
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties":  props,
		"required":    required,
	}
}

// errorResponse renders err through the envelope handlers write
func errorResponse(err error) (string, map[string]any) {
	status, w := pnet.Error(err, exampleRequestID)
	raw, _ := json.Marshal(w)
	var example map[string]any
	_ = json.Unmarshal(raw, &example)
	return strconv.Itoa(status), map[string]any{
		"description": w.Status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": errorSchemaRef},
				"example": example,
			},
		},
	}
}

// addDefaultErrors gives every operation a 500 and every operation with a body a 400
func addDefaultErrors(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	internalStatus, internal := errorResponse(internalError)
	bodyStatus, body := errorResponse(bodyError)

	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[internalStatus]; !exists {
				resps[internalStatus] = internal
			}
			if _, hasBody := op["requestBody"]; !hasBody {
				continue
			}
			if _, exists := resps[bodyStatus]; !exists {
				resps[bodyStatus] = body
			}
		}
	}
}
