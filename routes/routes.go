package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/controllers"
	"github.com/AFNANSH552/nutrition-ai-agent/middlewares"
	"github.com/AFNANSH552/nutrition-ai-agent/services"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

func SetupRouter(data *store.Dataset, svc *services.NotificationService, allowOrigins []string, log *zap.Logger) *gin.Engine {
	controllers.Init(data, svc, log.Sugar())

	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)

	r.POST("/generate", controllers.Generate)
	r.GET("/triggers/:user_id", controllers.ActiveTriggers)
	r.GET("/demo/:user_id", controllers.Demo)
	r.POST("/simulate-week", controllers.SimulateWeek)

	r.GET("/users", controllers.ListUsers)
	r.GET("/users/:user_id", controllers.GetUser)
	r.GET("/foods", controllers.ListFoods)
	r.GET("/foods/:food_id", controllers.GetFood)
	r.GET("/conditions", controllers.ListConditions)
	r.GET("/conditions/:condition/nutrients", controllers.ConditionNutrients)
	r.GET("/templates", controllers.Templates)

	r.POST("/evaluate", controllers.Evaluate)
	r.POST("/test-safety", controllers.TestSafety)
	r.GET("/analytics/system-stats", controllers.SystemStats)

	return r
}
