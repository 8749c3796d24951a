package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/integrator-go/cmd/internal/config"
	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/importer"
	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

type Server struct {
	store          db.Store
	router         *gin.Engine
	logger         *logging.Logger
	importService  *importer.EquipmentImportService
	catalogService *catalog.CatalogService
	config         *config.Config
}

func NewServer(
	store db.Store,
	logger *logging.Logger,
	importService *importer.EquipmentImportService,
	catalogService *catalog.CatalogService,
	cfg *config.Config,
) *Server {
	server := &Server{
		store:          store,
		logger:         logger,
		importService:  importService,
		catalogService: catalogService,
		config:         cfg,
	}
	router := gin.Default()

	// Настройка CORS
	corsConfig := cors.DefaultConfig()
	if cfg.IsDebug != nil && *cfg.IsDebug {
		// В режиме отладки - локальные origins фронтенда
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	} else {
		// В production origins должны быть настроены явно
		if len(cfg.CORS.AllowedOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		} else {
			logger.Warn("CORS allowed_origins не настроен - внешние origins запрещены")
			corsConfig.AllowOrigins = []string{}
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(corsConfig))

	router.GET("/home", server.HomeHandler)
	router.GET("/api/stats", server.getStatsHandler)

	// --- INTERNAL (воркеры) ---
	// Server-to-server группа для фоновых воркеров синхронизации.
	// Только service-auth, без пользовательских сессий.
	internal := router.Group("/internal/worker")
	internal.Use(ServiceBearerAuthMiddleware("import-worker"))
	internal.Use(ServiceRateLimitMiddleware(100, 200))
	{
		internal.POST("/projects/:project_id/equipment/import", server.ImportEquipmentHandler)
	}

	// --- API V1 ---
	v1 := router.Group("/api/v1")
	{
		// Импорт ограничен по частоте независимо от остального API:
		// разбор xlsx заметно дороже обычного запроса.
		importLimited := v1.Group("/")
		importLimited.Use(ServiceRateLimitMiddleware(cfg.Import.RateLimitRPS, cfg.Import.RateLimitBurst))
		{
			importLimited.POST("/projects/:project_id/equipment/import", server.ImportEquipmentHandler)
		}

		v1.GET("/projects/:project_id/equipment", server.listProjectEquipmentHandler)
		v1.GET("/projects/:project_id/import-batches", server.listImportBatchesHandler)
		v1.GET("/import-batches/:id", server.getImportBatchHandler)
	}

	server.router = router
	return server
}

func (s *Server) Start(address string) error {
	return s.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
