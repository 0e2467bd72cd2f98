package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	handler "github.com/kchowhan/propvestor-sub002/internal/handlers"
	"github.com/kchowhan/propvestor-sub002/internal/repository"
	service "github.com/kchowhan/propvestor-sub002/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log logrus.FieldLogger, defaultSource string) {
	reconService := service.NewReconciliationService(
		repository.NewPaymentRepository(db),
		repository.NewBankTransactionRepository(db),
		repository.NewReconciliationRepository(db),
		log,
	)

	reconHandler := handler.NewReconciliationHandler(reconService, defaultSource)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	org := api.Group("/organizations/:orgId")
	{
		org.POST("/payments", reconHandler.RecordPayment)
		org.GET("/payments", reconHandler.ListPayments)

		org.POST("/bank-transactions/import", reconHandler.ImportTransactions)
		org.POST("/bank-transactions/upload", reconHandler.UploadStatement)
		org.GET("/bank-transactions", reconHandler.ListTransactions)

		org.POST("/reconciliation/auto-match", reconHandler.AutoMatch)
		org.POST("/reconciliations", reconHandler.CreateReconciliation)
		org.GET("/reconciliations", reconHandler.ListReconciliations)
		org.GET("/matches/suggested", reconHandler.ListSuggestedMatches)
	}

	recon := api.Group("/reconciliations")
	recon.GET("/:id", reconHandler.GetReconciliation)
	recon.POST("/:id/matches", reconHandler.ManualMatch)
}
