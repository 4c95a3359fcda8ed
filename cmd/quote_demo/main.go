// README: End-to-end demo; runs the pipeline on a canned enquiry and writes the PDF locally.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripquote/internal/ai"
	"tripquote/internal/config"
	"tripquote/internal/logging"
	"tripquote/internal/modules/enquiry"
	"tripquote/internal/modules/quotation"
	"tripquote/internal/render"
)

const demoVendorReply = `Greetings from Sunshine Holidays!

For your Goa request we can offer:
Day 1 - Airport pickup, check-in at Seaside Resort (4 star), evening free at Baga beach.
Day 2 - North Goa sightseeing: Fort Aguada, Calangute, Anjuna flea market.
Day 3 - South Goa tour: Basilica of Bom Jesus, Colva beach, spice plantation lunch.
Day 4 - Water sports at Candolim (parasailing, jet ski), sunset cruise on the Mandovi.
Day 5 - Checkout and airport drop.

Rate: INR 18,500 per person on twin sharing, total 37,000 for 2 pax.
Includes breakfast, all transfers by AC sedan, sightseeing as listed.
Excludes airfare, lunch and dinner, water sports fees, anything not mentioned.`

func main() {
	provider := flag.String("provider", string(ai.ProviderGemini), "AI provider (Gemini, OpenRouter, Groq, TogetherAI)")
	model := flag.String("model", "", "override the provider's default model")
	out := flag.String("out", "quotation_demo.pdf", "output file")
	flag.Parse()

	_ = godotenv.Load()

	log, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	e := &enquiry.Enquiry{
		ID:            "demo-enquiry",
		Destination:   "Goa",
		NumDays:       5,
		TravelerCount: 2,
		TripType:      enquiry.TripLeisure,
	}

	pipeline := quotation.NewPipeline(ai.NewGateway(log), render.NewRenderer(cfg.Assets.Dir, log), log)
	res := pipeline.Run(context.Background(), quotation.Input{
		Enquiry:     e,
		ClientName:  "Priya Sharma",
		VendorReply: demoVendorReply,
		Provider:    ai.Provider(*provider),
		Options: ai.Options{
			Model:       *model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		},
	})

	if res.Failure != nil {
		log.Warn("generation failed; writing error document",
			zap.String("type", string(res.Failure.Type)),
			zap.String("message", res.Failure.Message),
		)
	}

	if err := os.WriteFile(*out, res.Document, 0o644); err != nil {
		log.Fatal("write output", zap.Error(err))
	}
	log.Info("document written", zap.String("path", *out), zap.Int("bytes", len(res.Document)))
}
