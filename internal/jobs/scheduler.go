package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	ucSubscription "github.com/barbearia-america/agenda-api/internal/usecase/subscription"
)

// StartScheduler sobe a varredura horária de assinaturas vencidas
func StartScheduler(expire *ucSubscription.ExpireOverdue) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		n, err := expire.Execute(context.Background())
		if err != nil {
			log.Println("subscription expiry sweep:", err)
			return
		}
		if n > 0 {
			log.Printf("expired %d overdue subscriptions", n)
		}
	})

	c.Start()
	return c
}
