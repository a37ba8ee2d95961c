package routes

import (
	"context"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/auth"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	"github.com/BruksfildServices01/marqueai/internal/config"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/handlers"
	infraRepo "github.com/BruksfildServices01/marqueai/internal/infra/repository"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	"github.com/BruksfildServices01/marqueai/internal/notify"
	"github.com/BruksfildServices01/marqueai/internal/payment"
	"github.com/BruksfildServices01/marqueai/internal/storage"
	ucAppointment "github.com/BruksfildServices01/marqueai/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/marqueai/internal/usecase/catalog"
	ucSubscription "github.com/BruksfildServices01/marqueai/internal/usecase/subscription"
	ucTenant "github.com/BruksfildServices01/marqueai/internal/usecase/tenant"
	"github.com/BruksfildServices01/marqueai/internal/validators"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Cache    cache.Store
	Uploader storage.Uploader
	Gateway  payment.Gateway
	Audit    audit.Recorder
	Notify   notify.Publisher
	Tokens   *auth.Tokens
}

// Repositories groups the gorm repositories shared between the router and
// background jobs.
type Repositories struct {
	Appointments  *infraRepo.AppointmentGormRepository
	Catalog       *infraRepo.CatalogGormRepository
	Tenants       *infraRepo.TenantGormRepository
	Notifications *infraRepo.NotificationGormRepository
	Audit         *infraRepo.AuditGormRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Appointments:  infraRepo.NewAppointmentGormRepository(db),
		Catalog:       infraRepo.NewCatalogGormRepository(db),
		Tenants:       infraRepo.NewTenantGormRepository(db),
		Notifications: infraRepo.NewNotificationGormRepository(db),
		Audit:         infraRepo.NewAuditGormRepository(db),
	}
}

func RegisterRoutes(r *gin.Engine, repos *Repositories, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Recovery(),
		middleware.CORSMiddleware(cfg.AllowedOrigins()),
	)

	// ======================================================
	// 🧠 USE CASES — TENANT
	// ======================================================
	var checkDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.EmailDomainChecker(net.DefaultResolver, 3*time.Second)
	}

	registerUC := ucTenant.NewRegister(repos.Tenants, d.Tokens, d.Audit, cfg.TrialPeriod(), checkDomain)
	loginUC := ucTenant.NewLogin(repos.Tenants, d.Tokens)
	profiles := ucTenant.NewProfiles(repos.Tenants, d.Cache, d.Uploader, d.Audit, cfg.PublicBaseURL)
	settings := ucTenant.NewSettings(repos.Tenants, d.Cache, d.Audit)
	bookingPageUC := ucTenant.NewGetBookingPage(repos.Tenants, repos.Catalog, repos.Catalog, d.Cache, cfg.CacheTTL())

	// ======================================================
	// 🧠 USE CASES — CATALOG
	// ======================================================
	services := ucCatalog.NewServices(repos.Catalog, d.Cache, d.Audit)
	professionals := ucCatalog.NewProfessionals(repos.Catalog, d.Cache, d.Uploader, d.Audit)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(repos.Appointments, d.Audit, d.Notify)
	listAppointmentsUC := ucAppointment.NewListAppointments(repos.Appointments)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(repos.Appointments, d.Audit, d.Notify)
	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(repos.Appointments, d.Audit, d.Notify)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(repos.Appointments, d.Audit)

	availabilityUC := ucAppointment.NewGetAvailability(repos.Tenants, repos.Appointments)
	publicBookingUC := ucAppointment.NewCreatePublicAppointment(repos.Tenants, repos.Appointments, d.Audit, d.Notify)

	// ======================================================
	// 🧠 USE CASES — SUBSCRIPTION
	// ======================================================
	statusUC := ucSubscription.NewGetStatus(repos.Tenants)
	checkoutUC := ucSubscription.NewCheckout(repos.Tenants, d.Gateway, d.Audit, cfg.ProPlanPrice)
	webhookUC := ucSubscription.NewHandlePaymentWebhook(repos.Tenants, d.Gateway, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(profiles, settings)
	catalogHandler := handlers.NewCatalogHandler(services, professionals)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
		transitionAppointmentUC,
		deleteAppointmentUC,
	)

	publicHandler := handlers.NewPublicHandler(bookingPageUC, availabilityUC, publicBookingUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(statusUC, checkoutUC, webhookUC)
	notificationHandler := handlers.NewNotificationHandler(repos.Notifications)
	auditLogsHandler := handlers.NewAuditLogsHandler(repos.Audit)

	healthHandler := handlers.NewHealthHandler(map[string]handlers.Checker{
		"postgres": handlers.CheckerFunc(func(ctx context.Context) error {
			sqlDB, err := d.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		"redis": d.Cache,
	})

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/ready", healthHandler.Ready)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin)

		publicAPI := api.Group("/public")
		publicAPI.Use(limiter.Middleware())
		{
			publicAPI.GET("/:slug", publicHandler.BookingPage)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(limiter.Middleware())
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// 💳 WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/mercadopago", subscriptionHandler.MercadoPagoWebhook)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("", meHandler.GetMe)
			secured.PATCH("/profile", meHandler.UpdateProfile)
			secured.POST("/profile/logo", meHandler.UploadLogo)
			secured.GET("/public-link", meHandler.PublicLink)

			secured.GET("/settings", meHandler.GetSettings)
			secured.PUT("/settings", meHandler.SaveSettings)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/services", catalogHandler.ListServices)
			secured.POST("/services", catalogHandler.CreateService)
			secured.GET("/services/:id", catalogHandler.GetService)
			secured.PATCH("/services/:id", catalogHandler.UpdateService)
			secured.DELETE("/services/:id", catalogHandler.DeleteService)

			secured.GET("/professionals", catalogHandler.ListProfessionals)
			secured.POST("/professionals", catalogHandler.CreateProfessional)
			secured.GET("/professionals/:id", catalogHandler.GetProfessional)
			secured.PATCH("/professionals/:id", catalogHandler.UpdateProfessional)
			secured.DELETE("/professionals/:id", catalogHandler.DeleteProfessional)
			secured.POST("/professionals/:id/photo", catalogHandler.UploadProfessionalPhoto)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Transition(domain.ActionConfirm))
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Transition(domain.ActionComplete))
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Transition(domain.ActionCancel))
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.Transition(domain.ActionNoShow))
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// SUBSCRIPTION
			// ------------------------------
			secured.GET("/subscription", subscriptionHandler.Status)
			secured.POST("/subscription/checkout", subscriptionHandler.Checkout)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
