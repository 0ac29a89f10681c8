package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authUC "helpdesk/internal/application/auth/usecases"
	catalogUC "helpdesk/internal/application/catalog/usecases"
	deviceUC "helpdesk/internal/application/device/usecases"
	reportUC "helpdesk/internal/application/report/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

// Router owns the gin engine and every handler hanging off it.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authMiddleware *middleware.AuthMiddleware

	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	roleHandler    *handlers.RoleHandler
	catalogHandler *handlers.CatalogHandler
	deviceHandler  *handlers.DeviceHandler
	ticketHandler  *handlers.TicketHandler
	reportHandler  *handlers.ReportHandler
}

// NewRouter wires repositories, use cases and handlers onto a fresh
// engine. The store must already point at the configured upload root.
func NewRouter(db *gorm.DB, store storage.Store, cfg *config.Config, log logger.Interface) *Router {
	userRepo := repository.NewUserRepository(db, log)
	roleRepo := repository.NewRoleRepository(db, log)
	deviceRepo := repository.NewDeviceRepository(db, log)
	deviceTypeRepo := repository.NewDeviceTypeRepository(db, log)
	priorityRepo := repository.NewPriorityRepository(db, log)
	statusRepo := repository.NewStatusRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	fileRepo := repository.NewFileRepository(db, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	sanitize := sanitizer.NewService()

	authHandler := handlers.NewAuthHandler(
		authUC.NewLoginUseCase(userRepo, roleRepo, hasher, jwtService, log),
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewRegisterUserUseCase(userRepo, roleRepo, hasher, log),
		userUC.NewGetUserUseCase(userRepo, roleRepo, log),
		userUC.NewListUsersUseCase(userRepo, roleRepo, log),
		userUC.NewUpdateProfileUseCase(userRepo, roleRepo, log),
		userUC.NewAdminUpdateUserUseCase(userRepo, roleRepo, log),
		userUC.NewChangePasswordUseCase(userRepo, hasher, hasher, log),
		userUC.NewResetPasswordUseCase(userRepo, hasher, log),
		userUC.NewChangeUserRoleUseCase(userRepo, roleRepo, log),
		userUC.NewDeleteUserUseCase(userRepo, log),
	)

	roleHandler := handlers.NewRoleHandler(
		userUC.NewCreateRoleUseCase(roleRepo, log),
		userUC.NewUpdateRoleUseCase(roleRepo, log),
		userUC.NewDeleteRoleUseCase(roleRepo, userRepo, log),
		userUC.NewListRolesUseCase(roleRepo, log),
	)

	catalogHandler := handlers.NewCatalogHandler(
		catalogUC.NewCreateDeviceTypeUseCase(deviceTypeRepo, log),
		catalogUC.NewUpdateDeviceTypeUseCase(deviceTypeRepo, log),
		catalogUC.NewDeleteDeviceTypeUseCase(deviceTypeRepo, deviceRepo, log),
		catalogUC.NewListDeviceTypesUseCase(deviceTypeRepo, log),
		catalogUC.NewCreatePriorityUseCase(priorityRepo, log),
		catalogUC.NewUpdatePriorityUseCase(priorityRepo, log),
		catalogUC.NewDeletePriorityUseCase(priorityRepo, ticketRepo, log),
		catalogUC.NewListPrioritiesUseCase(priorityRepo, log),
		catalogUC.NewCreateStatusUseCase(statusRepo, log),
		catalogUC.NewUpdateStatusUseCase(statusRepo, log),
		catalogUC.NewDeleteStatusUseCase(statusRepo, ticketRepo, log),
		catalogUC.NewListStatusesUseCase(statusRepo, log),
	)

	deviceHandler := handlers.NewDeviceHandler(
		deviceUC.NewCreateDeviceUseCase(deviceRepo, deviceTypeRepo, log),
		deviceUC.NewUpdateDeviceUseCase(deviceRepo, deviceTypeRepo, log),
		deviceUC.NewDeleteDeviceUseCase(deviceRepo, ticketRepo, log),
		deviceUC.NewGetDeviceUseCase(deviceRepo, log),
		deviceUC.NewListDevicesUseCase(deviceRepo, log),
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, deviceRepo, priorityRepo, userRepo, sanitize, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, deviceRepo, statusRepo, sanitize, log),
		ticketUC.NewChangeTicketStatusUseCase(ticketRepo, statusRepo, sanitize, log),
		ticketUC.NewAmendClosedTicketUseCase(ticketRepo, deviceRepo, priorityRepo, statusRepo, sanitize, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, fileRepo, store, log),
		ticketUC.NewAssignTechnicianUseCase(ticketRepo, assignmentRepo, userRepo, roleRepo, log),
		ticketUC.NewUnassignTechnicianUseCase(ticketRepo, assignmentRepo, log),
		ticketUC.NewUploadFilesUseCase(ticketRepo, assignmentRepo, fileRepo, store, log),
		ticketUC.NewDeleteFileUseCase(ticketRepo, assignmentRepo, fileRepo, store, log),
	)

	reportHandler := handlers.NewReportHandler(
		reportUC.NewExportTicketsUseCase(ticketRepo, log),
	)

	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		logger:         log,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, userRepo, roleRepo, log),
		authHandler:    authHandler,
		userHandler:    userHandler,
		roleHandler:    roleHandler,
		catalogHandler: catalogHandler,
		deviceHandler:  deviceHandler,
		ticketHandler:  ticketHandler,
		reportHandler:  reportHandler,
	}
}

// SetupRoutes registers middleware and every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.CORS.AllowedOrigins))

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "helpdesk API", "docs": "/ping"})
	})
	r.engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.engine.POST("/login", r.authHandler.Login)

	// Attachments are served directly off disk.
	r.engine.Static("/uploads", r.cfg.Storage.UploadDir)

	authed := r.engine.Group("/")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.GET("/me", r.userHandler.Me)
		authed.PUT("/me", r.userHandler.UpdateMe)
		authed.POST("/me/password", r.userHandler.ChangeMyPassword)

		authed.GET("/devices", r.deviceHandler.ListDevices)
		authed.GET("/devices/:device_id", r.deviceHandler.GetDevice)

		authed.GET("/device-types", r.catalogHandler.ListDeviceTypes)
		authed.GET("/priorities", r.catalogHandler.ListPriorities)
		authed.GET("/statuses", r.catalogHandler.ListStatuses)

		authed.POST("/tickets", r.ticketHandler.CreateTicket)
		authed.GET("/tickets", r.ticketHandler.ListTickets)
		authed.GET("/tickets/:ticket_id", r.ticketHandler.GetTicket)
		authed.PATCH("/tickets/:ticket_id", r.ticketHandler.UpdateTicket)
		authed.DELETE("/tickets/:ticket_id", r.ticketHandler.DeleteTicket)
		authed.POST("/tickets/:ticket_id/status", r.ticketHandler.ChangeStatus)
		authed.POST("/tickets/:ticket_id/edit-closed", r.ticketHandler.AmendClosed)
		authed.POST("/tickets/:ticket_id/assign", r.ticketHandler.Assign)
		authed.DELETE("/tickets/:ticket_id/unassign/:technician_id", r.ticketHandler.Unassign)
		authed.POST("/tickets/:ticket_id/files", r.ticketHandler.UploadFiles)
		authed.DELETE("/tickets/:ticket_id/files/:file_id", r.ticketHandler.DeleteFile)
	}

	admin := r.engine.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.POST("/users", r.userHandler.CreateUser)
		admin.GET("/users", r.userHandler.ListUsers)
		admin.GET("/users/:user_id", r.userHandler.GetUser)
		admin.PUT("/users/:user_id", r.userHandler.UpdateUser)
		admin.DELETE("/users/:user_id", r.userHandler.DeleteUser)
		admin.POST("/users/:user_id/password", r.userHandler.ResetPassword)
		admin.PATCH("/users/:user_id/role", r.userHandler.ChangeRole)

		admin.POST("/roles", r.roleHandler.CreateRole)
		admin.GET("/roles", r.roleHandler.ListRoles)
		admin.PUT("/roles/:role_id", r.roleHandler.UpdateRole)
		admin.DELETE("/roles/:role_id", r.roleHandler.DeleteRole)

		admin.POST("/device-types", r.catalogHandler.CreateDeviceType)
		admin.PUT("/device-types/:type_id", r.catalogHandler.UpdateDeviceType)
		admin.DELETE("/device-types/:type_id", r.catalogHandler.DeleteDeviceType)

		admin.POST("/priorities", r.catalogHandler.CreatePriority)
		admin.PUT("/priorities/:priority_id", r.catalogHandler.UpdatePriority)
		admin.DELETE("/priorities/:priority_id", r.catalogHandler.DeletePriority)

		admin.POST("/statuses", r.catalogHandler.CreateStatus)
		admin.PUT("/statuses/:status_id", r.catalogHandler.UpdateStatus)
		admin.DELETE("/statuses/:status_id", r.catalogHandler.DeleteStatus)

		admin.POST("/devices", r.deviceHandler.CreateDevice)
		admin.PUT("/devices/:device_id", r.deviceHandler.UpdateDevice)
		admin.DELETE("/devices/:device_id", r.deviceHandler.DeleteDevice)

		admin.POST("/tickets", r.ticketHandler.AdminCreateTicket)
		admin.GET("/reports/tickets", r.reportHandler.ExportTickets)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
