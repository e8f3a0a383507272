package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/tmonk/tracker"
	"github.com/tmonk/tracker/renderer"
)

const model = "gemini-2.5-pro"

// Opener gives the agent read access to the ledger on demand, so each tool
// call sees the current state on disk.
type Opener func() (*tracker.Store, error)

// creates the facilitator
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

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal spending and income.
			Devise a plan of questions to ask the experts and come up with the best response to the user's request.

			Figures live in the user's ledger, check it first rather than guessing.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper builds the expert in charge of reading the user's ledger.
func NewBookkeeper(open Opener) *Expert {
	lib := []Function{
		summaryFunc(open),
		breakdownFunc(open),
		transactionsFunc(open),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's transaction ledger.
		He can compute totals, balances, monthly and weekly expense figures, and category breakdowns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's transaction ledger.
				You know how to use the Tools to extract relevant information about the user's income and spending.
				You are part of a team of experts, yours is everything about the ledger. They might ask
				you questions about it, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's ledger
				  - running totals and balances
				  - expenses split by category
				  - the raw list of transactions
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
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

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func summaryFunc(open Opener) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary computes the running totals for the active currency:
			total income, total expenses, net balance, and the expense sums for the
			month and week containing the given date.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "Reference date in YYYY-MM-DD form. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the running totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return failure(id, "Summary", err)
			}
			store, err := open()
			if err != nil {
				return failure(id, "Summary", err)
			}
			s := tracker.NewSummary(store.Transactions(), store.Currency(), on)
			return success(id, "Summary", renderer.Summary(s))
		},
	}
}

func breakdownFunc(open Opener) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Breakdown",
			Description: `Breakdown computes the expense total per category for the
			active currency, sorted by amount, with each category's share of the total.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of expenses by category.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := open()
			if err != nil {
				return failure(id, "Breakdown", err)
			}
			cur := store.Currency()
			b := tracker.CategoryBreakdown(store.Transactions(), cur.Code)
			return success(id, "Breakdown", renderer.Breakdown(b, cur))
		},
	}
}

func transactionsFunc(open Opener) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the ledger entries, newest first,
			optionally filtered by type (income or expense) and by category.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type": {
						Type:        genai.TypeString,
						Description: `Only list this transaction type: "income" or "expense".`,
					},
					"category": {
						Type:        genai.TypeString,
						Description: "Only list this category.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := open()
			if err != nil {
				return failure(id, "Transactions", err)
			}
			var typ tracker.TxType
			if s, ok := args["type"].(string); ok && s != "" {
				typ, err = tracker.ParseTxType(s)
				if err != nil {
					return failure(id, "Transactions", err)
				}
			}
			var category tracker.Category
			if s, ok := args["category"].(string); ok {
				category = tracker.Category(s)
			}

			filtered := typ != "" || category != ""
			list := tracker.FilterBy(store.Transactions(), typ, category)
			return success(id, "Transactions", renderer.Transactions(list, store.Currency(), tracker.Today(), filtered))
		},
	}
}

func parseDate(args map[string]any) (tracker.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return tracker.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return tracker.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	return tracker.ParseDate(sdate)
}
