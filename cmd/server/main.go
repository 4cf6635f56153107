// Brochure backend
// @title Brochure API
// @version 0.1.0
// @description A REST API for user accounts and hotel brochure generation history

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"go.uber.org/fx"

	"github.com/brochuregen/backend/internal/components/auth"
	"github.com/brochuregen/backend/internal/components/brochure"
	"github.com/brochuregen/backend/internal/server"
	"github.com/brochuregen/backend/internal/shared/config"
	"github.com/brochuregen/backend/internal/shared/database"
	"github.com/brochuregen/backend/internal/shared/logging"
	"github.com/brochuregen/backend/internal/shared/token"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			token.NewService,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			auth.NewRepo,
			auth.NewService,
			fx.Annotate(auth.NewRouter, fx.ResultTags(`name:"authRouter"`)),
			brochure.NewRepo,
			brochure.NewService,
			fx.Annotate(brochure.NewRouter, fx.ResultTags(`name:"brochureRouter"`)),
		),
		fx.Invoke(
			database.Migrate,
			(*server.Server).Start,
		),
	).Run()
}
