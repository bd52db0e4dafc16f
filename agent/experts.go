package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/etnz/timeinmarket"
	"github.com/etnz/timeinmarket/date"
	"github.com/etnz/timeinmarket/docs"
	"github.com/etnz/timeinmarket/renderer"
	"github.com/etnz/timeinmarket/yahoo"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is exploring "time in market" investing: putting a fixed amount into an
			instrument every week or every month, and watching how the plan would have performed
			on real historical prices.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to
			the user's request. When the user names an instrument by ISIN or symbol, run the
			simulation through the Analyst rather than guessing numbers.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded with Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of financial products, funds, ETFs and the companies behind them.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher, you can search and find about anything related to
			financial instruments, funds, markets and companies. You leverage Google Search to
			ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst creates the expert that can actually run simulations.
func NewAnalyst() *Expert {
	lib := []Function{runSimulation}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. The Analyst can run a systematic investment plan simulation
		on the real daily price history of any instrument, given its ISIN or symbol, a contribution
		amount, and a weekly or monthly schedule, and answers with the exact figures of the plan.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of simulating systematic investment plans.
				You know how to use the Tools to run a simulation and read its figures.
				You never invent numbers: every figure you give comes from a simulation you ran.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var runSimulation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "RunSimulation",
		Description: `RunSimulation simulates a systematic investment plan on the real daily price
		history of an instrument and returns a markdown report with the plan's figures.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"identifier": {
					Type:        genai.TypeString,
					Description: "The instrument's ISIN (e.g. 'IE00B4L5Y983') or Yahoo symbol (e.g. 'IWDA.AS').",
				},
				"amount": {
					Type:        genai.TypeNumber,
					Description: "The amount invested per contribution, in the instrument's currency. Default is 100.",
				},
				"frequency": {
					Type:        genai.TypeString,
					Description: "Either 'monthly' or 'weekly'. Default is monthly.",
				},
				"value": {
					Type: genai.TypeString,
					Description: `The day of month ("1" to "31") for monthly plans, or the weekday name
					("Monday" to "Friday") for weekly plans. Default is "1".`,
				},
				"years": {
					Type:        genai.TypeNumber,
					Description: "How many years of history to simulate, ending today. Default is 10.",
				},
			},
			Required: []string{"identifier"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report with the simulated plan's headline figures. Schedule semantics:\n\n" + must(docs.GetTopic("schedules")),
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fail := func(err error) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "RunSimulation",
				Response: map[string]any{
					"error": err.Error(),
				},
			}
		}

		identifier, ok := args["identifier"].(string)
		if !ok {
			return fail(fmt.Errorf("argument 'identifier' is not a string but %T", args["identifier"]))
		}
		amount := 100.0
		if v, ok := args["amount"].(float64); ok {
			amount = v
		}
		frequency := "monthly"
		if v, ok := args["frequency"].(string); ok {
			frequency = v
		}
		value := "1"
		if v, ok := args["value"].(string); ok {
			value = v
		}
		years := 10
		if v, ok := args["years"].(float64); ok && v >= 1 {
			years = int(v)
		}

		report, err := simulate(identifier, amount, frequency, value, years)
		if err != nil {
			return fail(err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "RunSimulation",
			Response: map[string]any{
				"output": report,
			},
		}
	},
}

// simulate resolves the instrument, fetches its history and renders the
// simulation summary.
func simulate(identifier string, amount float64, frequency, value string, years int) (string, error) {
	schedule, err := timeinmarket.ParseSchedule(frequency, value)
	if err != nil {
		return "", err
	}

	symbol, name, err := yahoo.Resolve(identifier)
	if err != nil {
		return "", err
	}

	to := date.Today()
	r := date.NewRange(to.AddYears(-years), to)
	prices, err := yahoo.History(symbol, r)
	if err != nil {
		return "", err
	}

	sim, err := timeinmarket.Simulate(prices, amount, schedule)
	if err != nil {
		return "", err
	}
	return renderer.SimulationMarkdown(sim, name, symbol, "EUR", renderer.Options{})
}
