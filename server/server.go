package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinerozz/time-format-service/config"
	"github.com/dinerozz/time-format-service/docs"
	timeformatHandler "github.com/dinerozz/time-format-service/internal/handler/timeformat"
	timezoneHandler "github.com/dinerozz/time-format-service/internal/handler/timezone"
	timezoneService "github.com/dinerozz/time-format-service/internal/service/timezone"
	"github.com/dinerozz/time-format-service/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "time-format-service"

type RouterHandler struct {
	timeFormatHandler *timeformatHandler.TimeFormatHandler
	timezoneHandler   *timezoneHandler.TimezoneHandler
}

func RunServer(config *config.Config) {
	switch config.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Info().Msg("starting server in production mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Info().Msg("starting server in development mode")
	}

	timezoneSrv := timezoneService.NewService()

	routerHandler := &RouterHandler{
		timeFormatHandler: timeformatHandler.NewTimeFormatHandler(),
		timezoneHandler:   timezoneHandler.NewTimezoneHandler(timezoneSrv),
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", config.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server gracefully stopped")
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLoggerMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: false,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Time Formatting API",
			"endpoints": gin.H{
				"/format/standard":    "POST - Format time in standard (12-hour) format with AM/PM",
				"/format/to_military": "POST - Convert 12-hour time back to 24-hour (military) format",
				"/time/timezones":     "GET - List supported timezones",
				"/time/current":       "GET - Current time in a supported timezone",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	docs.SwaggerInfo.Title = "Time Formatting API"
	docs.SwaggerInfo.Description = "Time formatting and timezone lookup API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	formatRoutes := r.Group("/format")
	{
		formatRoutes.POST("/standard", routerHandler.timeFormatHandler.FormatStandard)
		formatRoutes.POST("/to_military", routerHandler.timeFormatHandler.ToMilitary)
	}

	timeRoutes := r.Group("/time")
	{
		timeRoutes.GET("/timezones", routerHandler.timezoneHandler.ListTimezones)
		timeRoutes.GET("/current", routerHandler.timezoneHandler.CurrentTime)
	}

	return r
}
