package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathScopes   = "/scopes"
	PathBuilders = "/builders"
)

func addQuoteRoutes(rg *gin.RouterGroup, h Handlers) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Quote.SubmitQuote)
		quotes.GET("/:id", h.Quote.GetQuote)
		quotes.PATCH("/:id/status", h.Quote.UpdateQuoteStatus)
		quotes.POST("/:id/revisions", h.Quote.CreateRevision)
		quotes.GET("/:id/analysis", h.Quote.AnalyzeQuote)
		quotes.POST("/:id/payments", h.Payment.PayMilestone)
		quotes.GET("/:id/payments", h.Payment.ListPayments)
	}

	scopes := rg.Group(PathScopes)
	{
		scopes.GET("/:sow_id/quotes", h.Quote.GetQuotesForSoW)
		scopes.GET("/:sow_id/comparison", h.Comparison.CompareQuotes)
		scopes.POST("/:sow_id/distributions", h.Distribution.DistributeToBuilders)
		scopes.PATCH("/:sow_id/distributions/decline", h.Distribution.DeclineInvitation)
	}

	builders := rg.Group(PathBuilders)
	{
		builders.GET("/:builder_id/quotes", h.Quote.GetBuilderQuotes)
	}
}
