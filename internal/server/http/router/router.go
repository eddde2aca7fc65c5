package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/SanTaClouse/verduleria-luna/internal/server/http/handlers"
	"github.com/SanTaClouse/verduleria-luna/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware. Contact and
// login are public, everything else requires a verified bearer token.
func Setup(facade handlers.BackofficeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/contacto", contactHandler.Send)
	api.POST("/contacto/mayorista", contactHandler.SendWholesale)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.GET("/auth/verificar", authHandler.Verify)
	authed.POST("/auth/logout", authHandler.Logout)

	pedidos := authed.Group("/pedidos")
	pedidos.GET("", orderHandler.List)
	pedidos.POST("", orderHandler.Create)
	pedidos.GET("/estadisticas", orderHandler.Stats)
	pedidos.GET("/agrupados", orderHandler.Grouped)
	pedidos.GET("/:id", orderHandler.Get)
	pedidos.PATCH("/:id", orderHandler.Update)
	pedidos.DELETE("/:id", orderHandler.Delete)
	pedidos.POST("/:id/marcar-pago", orderHandler.MarkPaid)
	pedidos.PUT("/:id/precio-abonado", orderHandler.ApplyPayment)
	pedidos.GET("/:id/whatsapp-link", orderHandler.WhatsappLink)
	pedidos.POST("/:id/whatsapp-enviado", orderHandler.MarkWhatsappSent)

	clientes := authed.Group("/clientes")
	clientes.GET("", customerHandler.List)
	clientes.POST("", customerHandler.Create)
	clientes.GET("/ranking", customerHandler.Ranking)
	clientes.GET("/estadisticas", customerHandler.Stats)
	clientes.GET("/:id", customerHandler.Get)
	clientes.PATCH("/:id", customerHandler.Update)
	clientes.DELETE("/:id", customerHandler.Delete)
	clientes.GET("/:id/pedidos", customerHandler.Orders)

	return engine
}
