package functioncall

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrMissingParams is matched by errors.Is for any MissingParamsError.
var ErrMissingParams = errors.New("missing required parameters")

// MissingParamsError lists the schema parameters a prompt did not supply.
type MissingParamsError struct {
	Params []string
}

func (e *MissingParamsError) Error() string {
	return "Missing required parameters: " + strings.Join(e.Params, ", ")
}

func (e *MissingParamsError) Unwrap() error { return ErrMissingParams }

// ParamSpec describes one function parameter.
type ParamSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// FunctionSchema is a function definition in the shape model APIs accept.
type FunctionSchema struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  struct {
		Type       string               `json:"type"`
		Required   []string             `json:"required"`
		Properties map[string]ParamSpec `json:"properties"`
	} `json:"parameters"`
}

// Credit score parameter names.
const (
	ParamIncome        = "income"
	ParamHistoryLength = "credit_history_length"
	ParamDebtRatio     = "debt_to_income_ratio"
	ParamAge           = "age"
	ParamDefaults      = "previous_defaults"
)

// CreditScoreSchema is the calculate_credit_score function definition.
var CreditScoreSchema = func() FunctionSchema {
	var s FunctionSchema
	s.Name = "calculate_credit_score"
	s.Description = "Calculate credit scoring based on user info as provided"
	s.Parameters.Type = "object"
	s.Parameters.Required = []string{ParamIncome, ParamHistoryLength, ParamDebtRatio, ParamAge, ParamDefaults}
	s.Parameters.Properties = map[string]ParamSpec{
		ParamIncome:        {Type: "number", Description: "Annual income of the user"},
		ParamHistoryLength: {Type: "number", Description: "Length of credit history in years"},
		ParamDebtRatio:     {Type: "number", Description: "Debt-to-income ratio as a percentage"},
		ParamAge:           {Type: "number", Description: "Age of the user"},
		ParamDefaults:      {Type: "number", Description: "Number of previous defaults, if any"},
	}
	return s
}()

// CreditParams are the arguments to calculate_credit_score.
type CreditParams struct {
	Income              float64 `json:"income"`
	CreditHistoryLength float64 `json:"credit_history_length"`
	DebtToIncomeRatio   float64 `json:"debt_to_income_ratio"`
	Age                 float64 `json:"age"`
	PreviousDefaults    float64 `json:"previous_defaults"`
}

// CreditResult is the simulated outcome of a credit score function call.
type CreditResult struct {
	FunctionCalled string       `json:"function_called"`
	Parameters     CreditParams `json:"parameters"`
	CreditScore    int          `json:"credit_score"`
	Rating         string       `json:"rating"`
	Interpretation string       `json:"interpretation"`
}

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

const wordPunctuation = ",.;:!?\"'()"

// ParseCreditPrompt extracts credit parameters from free text. Numbers are
// taken in order of appearance; each trigger word that appears as a whole
// word claims the next unclaimed number. Triggers are checked in the fixed
// order income, history, ratio, age, defaults regardless of where they occur.
func ParseCreditPrompt(prompt string) (CreditParams, error) {
	var numbers []float64
	for _, m := range numberPattern.FindAllString(prompt, -1) {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(prompt)) {
		words[strings.Trim(w, wordPunctuation)] = true
	}

	var p CreditParams
	triggers := []struct {
		word  string
		param string
		dst   *float64
	}{
		{"income", ParamIncome, &p.Income},
		{"history", ParamHistoryLength, &p.CreditHistoryLength},
		{"ratio", ParamDebtRatio, &p.DebtToIncomeRatio},
		{"age", ParamAge, &p.Age},
		{"defaults", ParamDefaults, &p.PreviousDefaults},
	}

	var missing []string
	for _, tr := range triggers {
		if words[tr.word] && len(numbers) > 0 {
			*tr.dst = numbers[0]
			numbers = numbers[1:]
			continue
		}
		missing = append(missing, tr.param)
	}
	if len(missing) > 0 {
		return CreditParams{}, &MissingParamsError{Params: missing}
	}
	return p, nil
}

// CalculateCreditScore applies the mock scoring model: a base of 500 adjusted
// by income, history, debt ratio, age and defaults, clamped to 300..850.
func CalculateCreditScore(p CreditParams) int {
	score := 500.0
	score += math.Min(p.Income/1000, 100)
	score += math.Min(p.CreditHistoryLength*10, 100)
	score -= math.Min(p.DebtToIncomeRatio, 100)
	score += math.Min((p.Age-18)*2, 50)
	score -= p.PreviousDefaults * 50

	// Halves round up.
	rounded := int(math.Floor(score + 0.5))
	return max(300, min(850, rounded))
}

// Rating buckets a credit score.
func Rating(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 670:
		return "Good"
	case score >= 580:
		return "Fair"
	default:
		return "Poor"
	}
}

// RunCredit parses prompt, scores it and describes the result.
func RunCredit(prompt string) (*CreditResult, error) {
	params, err := ParseCreditPrompt(prompt)
	if err != nil {
		return nil, err
	}
	score := CalculateCreditScore(params)
	rating := Rating(score)

	var sb strings.Builder
	sb.WriteString("Based on the provided information:\n")
	fmt.Fprintf(&sb, "• Annual Income: $%s\n", groupThousands(params.Income))
	fmt.Fprintf(&sb, "• Credit History: %s years\n", formatNumber(params.CreditHistoryLength))
	fmt.Fprintf(&sb, "• Debt-to-Income Ratio: %s%%\n", formatNumber(params.DebtToIncomeRatio))
	fmt.Fprintf(&sb, "• Age: %s years\n", formatNumber(params.Age))
	fmt.Fprintf(&sb, "• Previous Defaults: %s\n\n", formatNumber(params.PreviousDefaults))
	fmt.Fprintf(&sb, "Calculated Credit Score: %d\n\n", score)
	fmt.Fprintf(&sb, "%s Credit Score", rating)

	return &CreditResult{
		FunctionCalled: CreditScoreSchema.Name,
		Parameters:     params,
		CreditScore:    score,
		Rating:         rating,
		Interpretation: sb.String(),
	}, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupThousands formats v with comma separators in the integer part.
func groupThousands(v float64) string {
	s := formatNumber(v)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var sb strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			sb.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if sb.Len() > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(intPart[i : i+3])
		}
		intPart = sb.String()
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}
