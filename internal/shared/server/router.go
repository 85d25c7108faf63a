package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlens-backend/internal/apilog"
	"scholarlens-backend/internal/essays"
	"scholarlens-backend/internal/evaluations"
	"scholarlens-backend/internal/flows"
	"scholarlens-backend/internal/llm"
	"scholarlens-backend/internal/llm/anthropic"
	"scholarlens-backend/internal/personas"
	"scholarlens-backend/internal/profiles"
	"scholarlens-backend/internal/scholarships"
	"scholarlens-backend/internal/shared/config"
	"scholarlens-backend/internal/shared/server/middleware"
	"scholarlens-backend/internal/shared/server/respond"
	"scholarlens-backend/internal/shared/storage/db"
	localstore "scholarlens-backend/internal/shared/storage/object/local"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var scholarshipRepo scholarships.Repo
	var personaRepo personas.Repo
	var profileRepo profiles.Repo
	var essayRepo essays.Repo
	var evaluationRepo evaluations.Repo
	var apilogRepo apilog.Repo
	if sqlDB != nil {
		scholarshipRepo = &scholarships.PGRepo{DB: sqlDB}
		personaRepo = &personas.PGRepo{DB: sqlDB}
		profileRepo = &profiles.PGRepo{DB: sqlDB}
		essayRepo = &essays.PGRepo{DB: sqlDB}
		evaluationRepo = &evaluations.PGRepo{DB: sqlDB}
		apilogRepo = &apilog.PGRepo{DB: sqlDB}
	} else {
		memScholarships := scholarships.NewMemoryRepo()
		memScholarships.SeedDemo()
		scholarshipRepo = memScholarships
		personaRepo = personas.NewMemoryRepo()
		memProfiles := profiles.NewMemoryRepo()
		memProfiles.SeedDemo()
		profileRepo = memProfiles
		essayRepo = essays.NewMemoryRepo()
		evaluationRepo = evaluations.NewMemoryRepo()
		apilogRepo = apilog.NewMemoryRepo()
	}

	var provider llm.Completer
	if cfg.AnthropicAPIKey != "" {
		p, err := anthropic.New(cfg.AnthropicAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("failed to build anthropic provider, generation will use fallbacks: %v", err)
		} else {
			provider = p
		}
	}
	gen := llm.NewClient(provider, &apilog.Recorder{Repo: apilogRepo}, cfg.LLMTemperature, cfg.LLMMaxTokens)

	personaSvc := &personas.Service{Repo: personaRepo, Scholarships: scholarshipRepo, Gen: gen}
	profileSvc := &profiles.Service{Repo: profileRepo, Store: store, Gen: gen}
	essaySvc := &essays.Service{Repo: essayRepo, Profiles: profileRepo, Personas: personaSvc, Gen: gen}
	evaluationSvc := &evaluations.Service{Repo: evaluationRepo, Essays: essayRepo, Personas: personaSvc, Gen: gen}
	flowSvc := &flows.Service{Personas: personaSvc, Essays: essaySvc, Evaluations: evaluationSvc}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	scholarships.NewHandler(scholarshipRepo).RegisterRoutes(api)
	personas.NewHandler(personaSvc).RegisterRoutes(api)
	profiles.NewHandler(profileSvc).RegisterRoutes(api)
	essays.NewHandler(essaySvc).RegisterRoutes(api)
	evaluations.NewHandler(evaluationSvc).RegisterRoutes(api)
	flows.NewHandler(flowSvc).RegisterRoutes(api)
	apilog.NewHandler(apilogRepo).RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
