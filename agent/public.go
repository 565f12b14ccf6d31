package agent

import (
	"context"

	"github.com/vsrin/shelfstat"
	"github.com/vsrin/shelfstat/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert in charge of the conversation. It sees
// the other experts as tools and routes the user's questions to them.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You facilitate a conversation about the user's inventory analysis.
			The user has just run a FIFO shelf-time analysis over their stock
			transactions; they want to understand what is aging, what moves
			fast or slow, and what to do about it.

			Learn each expert's skill from the Tools and ask them questions;
			they keep the context of your previous questions. Devise a plan
			of questions and come up with the best response to the user.
			Ground every figure you quote in what the Stockkeeper reports.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewForecaster returns an expert that can search the web for demand and
// supply context around the user's products.
func NewForecaster() *Expert {
	return &Expert{
		Name: "Forecaster",
		Description: `An expert in demand and supply trends. Ask the
		Forecaster whenever the conversation needs outside context:
		seasonality, market conditions, or news that could explain why a
		product moves fast or sits on the shelf.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in demand forecasting and supply chains. You
			leverage Google Search to ground your assertions. Relate what you
			find to the user's inventory situation.
				`}}},
		},
	}
}

// NewStockkeeper returns the expert that knows the analysis at hand. Its
// tools read the computed reports, so its answers reflect the actual run.
func NewStockkeeper(a *shelfstat.Analysis, buckets []shelfstat.BucketSpec, currency string) *Expert {
	lib := analysisFunctions(a, buckets, currency)

	return &Expert{
		Name: "Stockkeeper",
		Description: `The Stockkeeper has the user's shelf-time analysis in
		hand. Ask it for current stock, aging categories, shelf-time
		statistics, or shortfalls.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the stockkeeper for the user's inventory. Use the
			available tools to read the analysis reports and answer with the
			numbers they contain. The reports are markdown tables; quote the
			relevant rows rather than whole tables.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// analysisFunctions exposes the rendered reports as callable tools.
func analysisFunctions(a *shelfstat.Analysis, buckets []shelfstat.BucketSpec, currency string) []Function {
	report := func(name, description string, render func() string) Function {
		return &Func{
			Decl: &genai.FunctionDeclaration{
				Name:        name,
				Description: description,
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The report as markdown.",
				},
			},
			Run: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				return &genai.FunctionResponse{
					ID:       id,
					Name:     name,
					Response: map[string]any{"output": render()},
				}
			},
		}
	}

	return []Function{
		report("analysis_summary",
			"Overall analysis: transaction overview, aging categories, shelf-time statistics, movers, shortfalls.",
			func() string { return renderer.SummaryMarkdown(a, buckets, currency) }),
		report("current_stock",
			"Current stock: per-group summary, age categories and open layers.",
			func() string { return renderer.AgingMarkdown(a, buckets, currency) }),
		report("shelf_time_history",
			"Historical shelf-time statistics by group, product and location, plus monthly trends.",
			func() string { return renderer.ShelfTimeMarkdown(a, currency) }),
	}
}
