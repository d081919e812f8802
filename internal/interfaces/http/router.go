package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	authusecases "deskhive/internal/application/auth/usecases"
	notificationapp "deskhive/internal/application/notification"
	notificationusecases "deskhive/internal/application/notification/usecases"
	ticketusecases "deskhive/internal/application/ticket/usecases"
	userusecases "deskhive/internal/application/user/usecases"
	"deskhive/internal/infrastructure/auth"
	"deskhive/internal/infrastructure/config"
	"deskhive/internal/infrastructure/email"
	"deskhive/internal/infrastructure/ratelimit"
	"deskhive/internal/infrastructure/repository"
	"deskhive/internal/infrastructure/storage"
	"deskhive/internal/interfaces/http/handlers"
	"deskhive/internal/interfaces/http/middleware"
	"deskhive/internal/shared/authorization"
	shareddb "deskhive/internal/shared/db"
	"deskhive/internal/shared/logger"
	markdownsvc "deskhive/internal/shared/services/markdown"

	_ "deskhive/docs"
)

// loginRateLimit caps credential-guessing bursts per (IP, organization).
var loginRateLimit = ratelimit.RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   100,
}

// Router wires the whole application graph behind a gin engine.
type Router struct {
	engine              *gin.Engine
	authHandler         *handlers.AuthHandler
	ticketHandler       *handlers.TicketHandler
	attachmentHandler   *handlers.AttachmentHandler
	userHandler         *handlers.UserHandler
	notificationHandler *handlers.NotificationHandler
	healthHandler       *handlers.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	authRateLimiter     *middleware.AuthRateLimiter
	uploadDir           string
	uploadPrefix        string
	logger              logger.Interface
}

// NewRouter constructs every repository, service, use case, and handler.
// redisClient may be nil; the login rate limiter then runs as a no-op.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	refreshService := auth.NewRefreshTokenService()
	refreshTTL := auth.ParseRefreshExpiry(cfg.Auth.JWT.RefreshExpiry)
	txManager := shareddb.NewTransactionManager(db)
	markdown := markdownsvc.NewService()
	fileStore := storage.NewLocalFileStore(cfg.Upload.Dir, cfg.Upload.PublicPrefix)

	var emailSender email.Sender = email.NewNoopSender()
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPass,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}

	notifier := notificationapp.NewNotifier(notificationRepo, userRepo, emailSender, cfg.Server.BaseURL, log)

	registerUC := authusecases.NewRegisterUseCase(orgRepo, userRepo, refreshRepo, hasher, jwtService, refreshService, refreshTTL, txManager, log)
	joinUC := authusecases.NewJoinUseCase(orgRepo, userRepo, hasher, log)
	loginUC := authusecases.NewLoginUseCase(orgRepo, userRepo, refreshRepo, hasher, jwtService, refreshService, refreshTTL, log)
	refreshUC := authusecases.NewRefreshUseCase(userRepo, refreshRepo, jwtService, refreshService, refreshTTL, log)
	logoutUC := authusecases.NewLogoutUseCase(refreshRepo, refreshService, log)
	getProfileUC := authusecases.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := authusecases.NewUpdateProfileUseCase(userRepo, hasher, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, userRepo, txManager, notifier, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeTicketStatusUseCase(ticketRepo, notifier, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, notifier, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, messageRepo, attachmentRepo, notificationRepo, txManager, log)
	addMessageUC := ticketusecases.NewAddMessageUseCase(ticketRepo, messageRepo, notifier, log)
	listMessagesUC := ticketusecases.NewListMessagesUseCase(ticketRepo, messageRepo, markdown, log)
	addAttachmentUC := ticketusecases.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, fileStore, cfg.Upload.MaxSizeBytes, log)
	listAttachmentsUC := ticketusecases.NewListAttachmentsUseCase(ticketRepo, attachmentRepo, log)

	listMembersUC := userusecases.NewListMembersUseCase(userRepo, log)
	getMemberUC := userusecases.NewGetMemberUseCase(userRepo, log)
	approveMemberUC := userusecases.NewApproveMemberUseCase(userRepo, notifier, log)
	changeRoleUC := userusecases.NewChangeMemberRoleUseCase(userRepo, log)
	changeMemberStatusUC := userusecases.NewChangeMemberStatusUseCase(userRepo, refreshRepo, log)

	listNotificationsUC := notificationusecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationusecases.NewMarkNotificationReadUseCase(notificationRepo, log)
	markAllReadUC := notificationusecases.NewMarkAllNotificationsReadUseCase(notificationRepo, log)

	var limiter ratelimit.RateLimiter = ratelimit.NewNoopRateLimiter()
	if cfg.Redis.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine: engine,
		authHandler: handlers.NewAuthHandler(
			registerUC, joinUC, loginUC, refreshUC, logoutUC, getProfileUC, updateProfileUC, log,
		),
		ticketHandler: handlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, changeStatusUC,
			assignTicketUC, deleteTicketUC, addMessageUC, listMessagesUC, log,
		),
		attachmentHandler: handlers.NewAttachmentHandler(
			addAttachmentUC, listAttachmentsUC, cfg.Upload.MaxSizeBytes, log,
		),
		userHandler: handlers.NewUserHandler(
			listMembersUC, getMemberUC, approveMemberUC, changeRoleUC, changeMemberStatusUC, log,
		),
		notificationHandler: handlers.NewNotificationHandler(
			listNotificationsUC, markReadUC, markAllReadUC, log,
		),
		healthHandler:   handlers.NewHealthHandler(db),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		authRateLimiter: middleware.NewAuthRateLimiter(limiter, loginRateLimit, log),
		uploadDir:       cfg.Upload.Dir,
		uploadPrefix:    cfg.Upload.PublicPrefix,
		logger:          log,
	}
}

// SetupRoutes registers middleware and every route group.
func (r *Router) SetupRoutes(allowedOrigins []string) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(allowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.healthHandler.Check)
	r.engine.Static(r.uploadPrefix, r.uploadDir)

	authGroup := r.engine.Group("/auth")
	{
		authGroup.POST("/register", r.authRateLimiter.Limit(), r.authHandler.Register)
		authGroup.POST("/join", r.authRateLimiter.Limit(), r.authHandler.Join)
		authGroup.POST("/login", r.authRateLimiter.Limit(), r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)

		authGroup.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		authGroup.PATCH("/me", r.authMiddleware.RequireAuth(), r.authHandler.UpdateProfile)
	}

	tickets := r.engine.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.POST("", r.ticketHandler.Create)
		tickets.GET("", r.ticketHandler.List)

		// Specific paths before the bare /:id routes.
		tickets.POST("/:id/assign", authorization.RequireAdmin(), r.ticketHandler.Assign)
		tickets.PATCH("/:id/status", r.ticketHandler.ChangeStatus)
		tickets.POST("/:id/messages", r.ticketHandler.AddMessage)
		tickets.GET("/:id/messages", r.ticketHandler.ListMessages)
		tickets.POST("/:id/attachments", r.attachmentHandler.Upload)
		tickets.GET("/:id/attachments", r.attachmentHandler.List)

		tickets.GET("/:id", r.ticketHandler.Get)
		tickets.PATCH("/:id", r.ticketHandler.Update)
		tickets.DELETE("/:id", authorization.RequireAdmin(), r.ticketHandler.Delete)
	}

	users := r.engine.Group("/users")
	users.Use(r.authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.GET("", r.userHandler.List)
		users.GET("/:id", r.userHandler.Get)
		users.POST("/:id/approve", r.userHandler.Approve)
		users.PATCH("/:id/role", r.userHandler.ChangeRole)
		users.PATCH("/:id/status", r.userHandler.ChangeStatus)
	}

	notifications := r.engine.Group("/notifications")
	notifications.Use(r.authMiddleware.RequireAuth())
	{
		notifications.GET("", r.notificationHandler.List)
		notifications.POST("/read-all", r.notificationHandler.MarkAllRead)
		notifications.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
