package docs

import (
	"encoding/json"

	"github.com/swaggo/swag"
)

// SwaggerSpec represents the parts of the swagger doc the index page uses
type SwaggerSpec struct {
	Paths map[string]map[string]PathInfo `json:"paths"`
}

// PathInfo contains information about an API endpoint
type PathInfo struct {
	Summary     string                 `json:"summary"`
	Description string                 `json:"description"`
	Tags        []string               `json:"tags"`
	Parameters  []interface{}          `json:"parameters"`
	Responses   map[string]interface{} `json:"responses"`
}

// GetSwaggerSpec returns the parsed swagger specification
func GetSwaggerSpec() (*SwaggerSpec, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}

	var spec SwaggerSpec
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}
