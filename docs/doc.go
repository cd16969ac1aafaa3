// Package docs provides generated OpenAPI documentation.
//
// Pagina API
//
//	@title			Pagina API
//	@version		1.0
//	@description	Pagination pattern compiler and page label generator.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jackzampolin/pagina
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/pagina/serve.go -o . --outputTypes go --parseDependency --parseInternal
