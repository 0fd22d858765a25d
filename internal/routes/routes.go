package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/teripangijo/absen-ppnpn/internal/config"
	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/handlers"
	infraRepo "github.com/teripangijo/absen-ppnpn/internal/infra/repository"
	"github.com/teripangijo/absen-ppnpn/internal/middleware"
	ucAttendance "github.com/teripangijo/absen-ppnpn/internal/usecase/attendance"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	attendanceRepo := infraRepo.NewAttendanceGormRepository(db)

	fence := domain.Geofence{
		Latitude:  cfg.OfficeLat,
		Longitude: cfg.OfficeLon,
		RadiusM:   cfg.GeofenceRadiusM,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	recordUC := ucAttendance.NewRecordAttendance(attendanceRepo, fence, cfg.Timezone)
	manualCreateUC := ucAttendance.NewManualCreateAttendance(attendanceRepo)
	editUC := ucAttendance.NewEditAttendance(attendanceRepo)
	deleteUC := ucAttendance.NewDeleteAttendance(attendanceRepo)
	listRecapUC := ucAttendance.NewListRecap(attendanceRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(recordUC, attendanceRepo)
	employeeHandler := handlers.NewEmployeeHandler(attendanceRepo)
	recapHandler := handlers.NewRecapHandler(listRecapUC, cfg.Timezone)
	exportHandler := handlers.NewExportHandler(listRecapUC, cfg)
	adminAttendanceHandler := handlers.NewAdminAttendanceHandler(
		manualCreateUC,
		editUC,
		deleteUC,
		cfg.Timezone,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone)

	// ======================================================
	// ROUTES PUBLIK
	// ======================================================
	r.GET("/attendance/:id/photo", attendanceHandler.Photo)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/employees", employeeHandler.ListActive)
		api.POST("/attendance", attendanceHandler.Record)

		// ------------------------------
		// ADMIN (JWT)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/recap", recapHandler.List)
			admin.GET("/recap/export", exportHandler.Export)

			admin.GET("/employees", employeeHandler.ListAll)

			admin.POST("/attendance", adminAttendanceHandler.Create)
			admin.PUT("/attendance/:id", adminAttendanceHandler.Edit)
			admin.DELETE("/attendance/:id", adminAttendanceHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
