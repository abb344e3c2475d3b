package main

// @title           Membership Backend API
// @version         1.0
// @description     Membership management backend: sign-up/sign-in, membership lifecycle, transaction history and reports.
// @termsOfService  http://example.com/terms/

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8888
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		zap.NewExample().Sugar().Errorf("command failed: %v", err)
		os.Exit(1)
	}
}
