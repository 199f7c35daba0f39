package router

import (
	"net/http"

	"github.com/IsmaGarcia115/tienda-xprin/internal/config"
	"github.com/IsmaGarcia115/tienda-xprin/internal/handler"
	"github.com/IsmaGarcia115/tienda-xprin/internal/middleware"
	"github.com/IsmaGarcia115/tienda-xprin/internal/repository"
	"github.com/IsmaGarcia115/tienda-xprin/internal/service"
	"github.com/IsmaGarcia115/tienda-xprin/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository. Repositories are injected
// so tests can swap in in-memory implementations.
func New(cfg *config.Config, usuarioRepo repository.UsuarioRepository, productoRepo repository.ProductoRepository) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Env == "production",
	})
	r.Use(sessions.Sessions("tienda_session", store))

	r.SetHTMLTemplate(web.Templates())

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo)
	productoSvc := service.NewProductoService(productoRepo)

	// Principal rehydration runs after the session middleware, before routes.
	r.Use(middleware.Sesion(authSvc))

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", productosH.Inicio)
	r.GET("/catalogo", productosH.Catalogo)
	r.GET("/registro", authH.RegistroGET)
	r.POST("/registro", authH.RegistroPOST)
	r.GET("/login", authH.LoginGET)
	r.POST("/login", authH.LoginPOST)

	// Protected
	priv := r.Group("/", middleware.LoginRequerido())
	{
		priv.GET("/logout", authH.Logout)
		priv.GET("/add", productosH.AddGET)
		priv.POST("/add", productosH.AddPOST)
		priv.GET("/update/:id", productosH.UpdateGET)
		priv.POST("/update/:id", productosH.UpdatePOST)
		priv.GET("/delete/:id", productosH.DeleteGET)
		priv.POST("/delete/:id", productosH.DeletePOST)
	}

	return r
}
