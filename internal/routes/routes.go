package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	"github.com/bandboard/bandboard/internal/cache"
	"github.com/bandboard/bandboard/internal/clock"
	"github.com/bandboard/bandboard/internal/config"
	"github.com/bandboard/bandboard/internal/handlers"
	infraRepo "github.com/bandboard/bandboard/internal/infra/repository"
	"github.com/bandboard/bandboard/internal/middleware"
	ucBand "github.com/bandboard/bandboard/internal/usecase/band"
	ucBoard "github.com/bandboard/bandboard/internal/usecase/board"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clk := clock.RealClock{}

	bandRepo := infraRepo.NewBandGormRepository(db)
	boardRepo := infraRepo.NewBoardGormRepository(db)

	catalogCache := cache.NewCatalogCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBandUC := ucBand.NewCreateBand(bandRepo, auditDispatcher)
	updateBandUC := ucBand.NewUpdateBand(bandRepo, auditDispatcher)
	deleteBandUC := ucBand.NewDeleteBand(bandRepo, auditDispatcher)

	createAnnouncementUC := ucBoard.NewCreateAnnouncement(boardRepo, auditDispatcher, clk)
	updateAnnouncementUC := ucBoard.NewUpdateAnnouncement(boardRepo, auditDispatcher)
	deleteAnnouncementUC := ucBoard.NewDeleteAnnouncement(boardRepo, auditDispatcher)
	bumpAnnouncementUC := ucBoard.NewBumpAnnouncement(boardRepo, auditDispatcher, clk)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, clk)

	musicianHandler := handlers.NewMusicianHandler(db)
	bandHandler := handlers.NewBandHandler(db, createBandUC, updateBandUC, deleteBandUC)
	boardHandler := handlers.NewBoardHandler(
		db,
		clk,
		createAnnouncementUC,
		updateAnnouncementUC,
		deleteAnnouncementUC,
		bumpAnnouncementUC,
	)

	catalogHandler := handlers.NewCatalogHandler(db, catalogCache)
	adminHandler := handlers.NewAdminHandler(db, catalogCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/musicians", musicianHandler.List)
		api.GET("/bands", bandHandler.List)
		api.GET("/announcements", boardHandler.List)

		api.GET("/catalog/cities", catalogHandler.ListCities)
		api.GET("/catalog/instruments", catalogHandler.ListInstruments)
		api.GET("/catalog/styles", catalogHandler.ListStyles)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)
			secured.PATCH("/me/password", meHandler.ChangePassword)

			secured.GET("/me/bands", bandHandler.ListOwn)
			secured.POST("/me/bands", bandHandler.Create)
			secured.PATCH("/me/bands/:id", bandHandler.Update)
			secured.DELETE("/me/bands/:id", bandHandler.Delete)

			secured.GET("/me/announcements", boardHandler.ListOwn)
			secured.POST("/me/announcements", boardHandler.Create)
			secured.PATCH("/me/announcements/:id", boardHandler.Update)
			secured.DELETE("/me/announcements/:id", boardHandler.Delete)
			secured.POST("/me/announcements/:id/bump", boardHandler.Bump)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.PATCH("/musicians/:id/activate", adminHandler.ActivateMusician)

				admin.POST("/catalog/cities", adminHandler.CreateCity)
				admin.POST("/catalog/styles", adminHandler.CreateStyle)
				admin.POST("/catalog/instruments", adminHandler.CreateInstrument)
				admin.POST("/catalog/instrument-categories", adminHandler.CreateInstrumentCategory)
			}
		}
	}
}
