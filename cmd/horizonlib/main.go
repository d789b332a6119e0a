// filepath: cmd/horizonlib/main.go
package main

import (
	"horizonlib/internal/cli"

	// Import docs for Swagger
	_ "horizonlib/docs"
)

// @title Library Catalog API
// @version 1.0.0
// @description REST API for a library book catalog with search statistics and student book requests.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
