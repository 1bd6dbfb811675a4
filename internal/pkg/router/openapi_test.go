package router

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	for _, path := range []string{
		"/submissions/submit-route",
		"/submissions/{id}/approve",
		"/submissions/{id}/reject",
		"/routes/{id}",
		"/routes/lookup",
		"/search/destinations",
		"/route-steps/{step_id}/fares",
		"/stats",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
