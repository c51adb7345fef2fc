package server

import (
	"context"
	"net/http"
	"time"

	"github.com/abiramijewels/aurum/internal/audit"
	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	"github.com/abiramijewels/aurum/internal/auth"
	authdomain "github.com/abiramijewels/aurum/internal/auth/domain"
	"github.com/abiramijewels/aurum/internal/auth/session"
	"github.com/abiramijewels/aurum/internal/catalog"
	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/config"
	"github.com/abiramijewels/aurum/internal/customers"
	customersdomain "github.com/abiramijewels/aurum/internal/customers/domain"
	"github.com/abiramijewels/aurum/internal/observability"
	"github.com/abiramijewels/aurum/internal/orders"
	ordersdomain "github.com/abiramijewels/aurum/internal/orders/domain"
	"github.com/abiramijewels/aurum/internal/ratelimit"
	"github.com/abiramijewels/aurum/internal/settings"
	settingsdomain "github.com/abiramijewels/aurum/internal/settings/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	observability.Module,
	ratelimit.Module,
	fx.Provide(registerGin),
	audit.Module,
	auth.Module,
	catalog.Module,
	settings.Module,
	orders.Module,
	customers.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log, httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	authsvc      authdomain.Service
	sessions     *session.Manager
	catalogSvc   catalogdomain.Service
	settingsSvc  settingsdomain.Service
	ordersSvc    ordersdomain.Service
	customersSvc customersdomain.Service
	auditSvc     auditdomain.Recorder
	loginLimiter *ratelimit.LoginLimiter
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	Authsvc      authdomain.Service
	Sessions     *session.Manager
	CatalogSvc   catalogdomain.Service
	SettingsSvc  settingsdomain.Service
	OrdersSvc    ordersdomain.Service
	CustomersSvc customersdomain.Service
	AuditSvc     auditdomain.Recorder
	LoginLimiter *ratelimit.LoginLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		authsvc:      p.Authsvc,
		sessions:     p.Sessions,
		catalogSvc:   p.CatalogSvc,
		settingsSvc:  p.SettingsSvc,
		ordersSvc:    p.OrdersSvc,
		customersSvc: p.CustomersSvc,
		auditSvc:     p.AuditSvc,
		loginLimiter: p.LoginLimiter,
	}

	svc.registerAuthRoutes()
	svc.registerStorefrontRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerStorefrontRoutes() {
	api := s.engine.Group("/api")

	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.GET("/settings", s.GetStorefrontSettings)

	api.POST("/wishlist/:productId", s.AuthRequired(), s.ToggleWishlist)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")

	admin.Use(s.AuthRequired())
	admin.Use(s.AdminRequired())

	// -------- Products --------
	admin.GET("/products", s.AdminListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.GET("/products/:id", s.AdminGetProductByID)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.POST("/products/:id/archive", s.ArchiveProduct)
	admin.POST("/products/:id/restore", s.RestoreProduct)
	admin.DELETE("/products/:id", s.PurgeProduct)
	admin.POST("/products/quote", s.QuoteProduct)

	// -------- Settings --------
	admin.GET("/settings", s.GetSettings)
	admin.PUT("/settings", s.UpdateSettings)

	// -------- Orders --------
	admin.GET("/orders", s.ListOrders)
	admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	// -------- Customers --------
	admin.GET("/customers", s.ListCustomers)

	admin.GET("/audit-logs", s.ListAuditLogs)
}
