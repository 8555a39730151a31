package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anuragsoft/company-portal/internal/api/handler"
	"github.com/anuragsoft/company-portal/internal/api/middleware"
	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are only used by
// the readiness probe and may be nil when the corresponding backend is not
// configured.
type Deps struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Companies ports.CompanyService
	Catalog   ports.CatalogService
	Requests  ports.RequestService
	Projects  ports.ProjectService
	Messages  ports.MessageService
	Contacts  ports.ContactService
	Dashboard ports.DashboardService

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	admin := string(domain.RoleAdmin)
	employee := string(domain.RoleEmployee)
	client := string(domain.RoleClient)

	auth := middleware.Auth(deps.JWTSecret)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	companyHandler := handler.NewCompanyHandler(deps.Companies)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	requestHandler := handler.NewRequestHandler(deps.Requests)
	projectHandler := handler.NewProjectHandler(deps.Projects)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	contactHandler := handler.NewContactHandler(deps.Contacts)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, auth)
	e.PUT("/auth/profile", authHandler.UpdateProfile, auth)

	// --- Users (admin-managed; Get is open to any authenticated user) ---
	e.POST("/users", userHandler.Create, auth, middleware.RBAC(admin))
	e.GET("/users", userHandler.List, auth, middleware.RBAC(admin))
	e.GET("/users/:id", userHandler.Get, auth)
	e.PUT("/users/:id", userHandler.Update, auth, middleware.RBAC(admin))
	e.DELETE("/users/:id", userHandler.Delete, auth, middleware.RBAC(admin))

	// --- Companies ---
	e.POST("/companies", companyHandler.Create, auth, middleware.RBAC(admin))
	e.GET("/companies", companyHandler.List, auth)
	e.PUT("/companies/:id", companyHandler.Update, auth, middleware.RBAC(admin))
	e.DELETE("/companies/:id", companyHandler.Delete, auth, middleware.RBAC(admin))

	// --- Service catalog ---
	e.POST("/services", catalogHandler.Create, auth, middleware.RBAC(admin))
	e.GET("/services", catalogHandler.List, auth)
	e.PUT("/services/:id", catalogHandler.Update, auth, middleware.RBAC(admin))
	e.DELETE("/services/:id", catalogHandler.Delete, auth, middleware.RBAC(admin))

	// --- Service requests ---
	e.POST("/service-requests", requestHandler.Submit, auth, middleware.RBAC(client))
	e.GET("/service-requests", requestHandler.List, auth, middleware.RBAC(admin, client))
	e.PUT("/service-requests/:id/approve", requestHandler.Approve, auth, middleware.RBAC(admin))
	e.PUT("/service-requests/:id/reject", requestHandler.Reject, auth, middleware.RBAC(admin))
	e.DELETE("/service-requests/:id", requestHandler.Delete, auth, middleware.RBAC(admin))

	// --- Projects ---
	e.POST("/projects", projectHandler.Create, auth, middleware.RBAC(admin))
	e.GET("/projects", projectHandler.List, auth)
	e.GET("/projects/:id", projectHandler.Get, auth)
	e.PUT("/projects/:id", projectHandler.Update, auth, middleware.RBAC(admin, employee))
	e.PUT("/projects/:id/assign", projectHandler.Assign, auth, middleware.RBAC(admin))
	e.DELETE("/projects/:id", projectHandler.Delete, auth, middleware.RBAC(admin))

	// --- Messaging ---
	// Static message routes must precede the :userId thread route.
	e.POST("/messages", messageHandler.Send, auth)
	e.GET("/messages/conversations", messageHandler.Conversations, auth)
	e.GET("/messages/unread/count", messageHandler.UnreadCount, auth)
	e.GET("/messages/:userId", messageHandler.Thread, auth)
	e.GET("/contacts", contactHandler.List, auth)

	// --- Dashboards ---
	e.GET("/dashboard/admin", dashboardHandler.Admin, auth, middleware.RBAC(admin))
	e.GET("/dashboard/employee", dashboardHandler.Employee, auth, middleware.RBAC(employee))
	e.GET("/dashboard/client", dashboardHandler.Client, auth, middleware.RBAC(client))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
