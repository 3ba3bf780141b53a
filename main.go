package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"recruit-backend/config"
	apiv1 "recruit-backend/controllers/v1"
	publicapi "recruit-backend/controllers/v1/public"
	"recruit-backend/db"
	"recruit-backend/fiberlog"
	"recruit-backend/initializers"
	"recruit-backend/middleware"
	apimodels "recruit-backend/models/api"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: swaggerFile,
		}))
	} else {
		log.WithError(err).Warn("swagger.json не найден, документация api не подключена")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
		}
		return c.JSON(apimodels.NewResponse(nil))
	})

	//api
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//public
	public := fiber.New()
	apiV1.Mount("/public", public)
	publicapi.InitPublicJobApiRouters(public)

	//соискатель и сотрудник
	apiv1.InitApplicationApiRouters(apiV1, initializers.RateLimiter)
	apiv1.InitMessageApiRouters(apiV1, initializers.RateLimiter)

	//space
	space := fiber.New()
	apiV1.Mount("/space", space)
	space.Use(middleware.AuthorizationRequired())
	space.Use(middleware.StaffRequired())
	apiv1.InitApplicantApiRouters(space)
	apiv1.InitAiApiRouters(space)
	apiv1.InitMsgTemplateApiRouters(space)
	apiv1.InitJobApiRouters(space)
	apiv1.InitDashboardApiRouters(space)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
