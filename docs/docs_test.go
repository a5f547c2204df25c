package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	BasePath    string                                       `json:"basePath"`
	Paths       map[string]map[string]map[string]interface{} `json:"paths"`
	Definitions map[string]interface{}                       `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestSwaggerListsEveryRoute(t *testing.T) {
	doc := readDoc(t)
	assert.Equal(t, "/api", doc.BasePath)

	routes := map[string]string{
		"/sf2/generate":                    "post",
		"/sf2/sections/{sectionId}":        "get",
		"/reports":                         "get",
		"/reports/top-attendees":           "get",
		"/reports/daily-totals":            "get",
		"/reports/section-totals":          "get",
		"/reports/pdf":                     "get",
		"/sections":                        "get",
		"/sections/{sectionId}/students":   "get",
		"/exports/sf2":                     "post",
		"/exports/{id}":                    "get",
		"/exports/{id}/download":           "get",
		"/admin/jobs/migrate-section-refs": "post",
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		op, ok := doc.Paths[path][method]
		if !assert.True(t, ok, "%s %s", method, path) {
			continue
		}
		assert.NotEmpty(t, op["summary"], path)
		assert.NotEmpty(t, op["tags"], path)
		assert.NotEmpty(t, op["responses"], path)
		if strings.Contains(path, "{") {
			assert.NotEmpty(t, op["parameters"], path)
		}
	}
}

func TestSwaggerDefinitionsResolve(t *testing.T) {
	doc := readDoc(t)
	for _, name := range []string{
		"models.SF2Request", "models.SF2Student", "models.ExportJobRequest", "models.ExportJob",
		"models.ErrorResponse", "models.AttendanceReport", "models.TopAttendee", "models.DailyTotal",
		"models.SectionTotal", "models.SectionGroup", "models.Section", "models.Student",
		"roster.MigrationResult",
	} {
		assert.Contains(t, doc.Definitions, name)
	}

	// ทุก $ref ต้องชี้ไปที่ definition ที่มีอยู่จริง
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	for _, part := range strings.Split(raw, `"#/definitions/`)[1:] {
		name := part[:strings.Index(part, `"`)]
		assert.Contains(t, doc.Definitions, name)
	}
}

func TestSwaggerScopedRoutesDocumentForbidden(t *testing.T) {
	doc := readDoc(t)
	for path, methods := range doc.Paths {
		if strings.HasPrefix(path, "/admin") {
			continue
		}
		for method, op := range methods {
			responses, _ := op["responses"].(map[string]interface{})
			assert.Contains(t, responses, "403", "%s %s", method, path)
		}
	}
}
