// README: Route table and engine wiring.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripquote/internal/ai"
	"tripquote/internal/http/handlers"
	"tripquote/internal/http/middleware"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/itinerary"
	"tripquote/internal/modules/quotation"
)

// Services bundles everything the router needs.
type Services struct {
	Enquiries   *enquiry.Service
	Itineraries *itinerary.Service
	Quotations  *quotation.Service
	AIDefaults  ai.Options
}

func NewRouter(svcs Services, log *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	eh := handlers.NewEnquiryHandler(svcs.Enquiries)
	ih := handlers.NewItineraryHandler(svcs.Enquiries, svcs.Itineraries)
	qh := handlers.NewQuotationHandler(svcs.Enquiries, svcs.Itineraries, svcs.Quotations)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/enquiries", eh.Create)
		v1.GET("/enquiries", eh.List)
		v1.GET("/enquiries/:id", eh.Get)
		v1.POST("/enquiries/:id/client", eh.AttachClient)
		v1.GET("/enquiries/:id/client", eh.GetClient)

		v1.POST("/enquiries/:id/itinerary/suggest", ih.Suggest(svcs.AIDefaults))
		v1.GET("/enquiries/:id/itinerary", ih.Latest)

		v1.POST("/enquiries/:id/vendor-reply", qh.SubmitVendorReply)

		v1.POST("/enquiries/:id/quotation", qh.Generate(svcs.AIDefaults))
		v1.GET("/enquiries/:id/quotation", qh.Latest)
		v1.GET("/enquiries/:id/quotation/pdf", qh.DownloadPDF)
		v1.POST("/enquiries/:id/quotation/docx", qh.ExportDOCX)
		v1.GET("/enquiries/:id/quotation/docx", qh.ExportDOCX)
	}

	return engine
}
