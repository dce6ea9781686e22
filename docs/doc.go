// Package docs provides generated OpenAPI documentation.
//
// Forge API
//
//	@title			Forge API
//	@version		1.0
//	@description	Ebook builder API: chapter segmentation, topic/audience normalization, the assembly wizard, and PDF generation.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/productforge/forge
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/forge/serve.go -o ./swagger --parseDependency --parseInternal
