// Package endpoints defines one file per API operation. Each endpoint
// implements api.Endpoint, contributing an HTTP route and a matching
// CLI command.
package endpoints

import (
	"github.com/productforge/forge/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},

		// Text-structure extraction endpoints
		&SegmentEndpoint{},
		&NormalizeEndpoint{},
		&TitlesEndpoint{},

		// Design preset endpoints
		&ListPresetsEndpoint{},

		// Upload endpoints
		&ExtractEndpoint{},
		&UploadLogoEndpoint{},

		// Generation endpoint
		&GenerateEndpoint{},

		// Wizard endpoints
		&StartWizardEndpoint{},
		&GetWizardEndpoint{},
		&AnswerWizardEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{},
		&SwaggerUIEndpoint{},
	}
}
