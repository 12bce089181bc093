package main

import (
	"log"
	"net/http"
	"time"

	"interview-service/internal/config"
	"interview-service/internal/db"
	"interview-service/internal/event"
	"interview-service/internal/handlers"
	"interview-service/internal/llm"
	"interview-service/internal/repository"
	"interview-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY is not set; question generation and scoring will fail against authenticated providers")
	}

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// RabbitMQ is optional; without it lifecycle events are simply not
	// published.
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	oracle := llm.NewClient(cfg.LLMBaseURL, cfg.OpenAIAPIKey, cfg.LLMModel)

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	evaluationRepo := repository.NewEvaluationRepository(database)

	interviewService := service.NewInterviewService(
		userRepo,
		sessionRepo,
		questionRepo,
		answerRepo,
		evaluationRepo,
		llm.NewGenerator(oracle),
		llm.NewScorer(oracle),
	)
	interviewHandler := handlers.NewInterviewHandler(interviewService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AI Mock Interview API")
	})

	interview := r.Group("/interview")
	{
		interview.POST("/start", func(c *gin.Context) {
			interviewHandler.StartInterview(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("interview.session.started", nil)
			}
		})

		interview.POST("/answer", func(c *gin.Context) {
			interviewHandler.SubmitAnswer(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("interview.answer.submitted", nil)
			}
		})

		interview.GET("/evaluate/:sessionId", func(c *gin.Context) {
			interviewHandler.EvaluateInterview(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("interview.session.evaluated", gin.H{
					"session_id": c.Param("sessionId"),
				})
			}
		})

		interview.GET("/session/:sessionId", interviewHandler.GetSession)
	}

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
