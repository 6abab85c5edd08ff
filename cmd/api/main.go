package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-america/agenda-api/internal/config"
	"github.com/barbearia-america/agenda-api/internal/db"
	infraRepo "github.com/barbearia-america/agenda-api/internal/infra/repository"
	"github.com/barbearia-america/agenda-api/internal/jobs"
	"github.com/barbearia-america/agenda-api/internal/routes"
	ucSubscription "github.com/barbearia-america/agenda-api/internal/usecase/subscription"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	// varredura de assinaturas vencidas roda em background
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(database)
	expireUC := ucSubscription.NewExpireOverdue(subscriptionRepo)
	sched := jobs.StartScheduler(expireUC)
	defer sched.Stop()

	log.Println("API de agendamento ouvindo em", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
