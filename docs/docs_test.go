package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "Clinic CMS API", parsed.Info.Title)
	assert.Contains(t, parsed.Paths, "/api/v1/posts")
	assert.Contains(t, parsed.Paths, "/api/v1/pages/{slug}")
	assert.Contains(t, doc, "Page size (default: 20, max: 100)")
}
