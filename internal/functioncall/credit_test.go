package functioncall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePrompt = "Calculate credit score for someone with income 75000, 5 years history, 30% ratio, age 35, 0 defaults"

func TestParseCreditPrompt_Sample(t *testing.T) {
	p, err := ParseCreditPrompt(samplePrompt)
	require.NoError(t, err)
	assert.Equal(t, CreditParams{
		Income:              75000,
		CreditHistoryLength: 5,
		DebtToIncomeRatio:   30,
		Age:                 35,
		PreviousDefaults:    0,
	}, p)
}

func TestParseCreditPrompt_NumbersClaimedInTriggerOrder(t *testing.T) {
	// Numbers are assigned by trigger order, not by position in the text.
	p, err := ParseCreditPrompt("age 40 defaults 1 ratio 20 history 10 income 50000")
	require.NoError(t, err)
	assert.Equal(t, 40.0, p.Income)
	assert.Equal(t, 1.0, p.CreditHistoryLength)
	assert.Equal(t, 20.0, p.DebtToIncomeRatio)
	assert.Equal(t, 10.0, p.Age)
	assert.Equal(t, 50000.0, p.PreviousDefaults)
}

func TestParseCreditPrompt_Decimals(t *testing.T) {
	p, err := ParseCreditPrompt("income 82500.50 history 2.5 ratio 12.25 age 29 defaults 0")
	require.NoError(t, err)
	assert.Equal(t, 82500.5, p.Income)
	assert.Equal(t, 2.5, p.CreditHistoryLength)
	assert.Equal(t, 12.25, p.DebtToIncomeRatio)
}

func TestParseCreditPrompt_Missing(t *testing.T) {
	_, err := ParseCreditPrompt("income 50000 and age 30")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParams)
	assert.EqualError(t, err, "Missing required parameters: credit_history_length, debt_to_income_ratio, previous_defaults")

	var mpe *MissingParamsError
	require.ErrorAs(t, err, &mpe)
	assert.Len(t, mpe.Params, 3)
}

func TestParseCreditPrompt_KeywordWithoutNumber(t *testing.T) {
	_, err := ParseCreditPrompt("income history ratio age defaults 1 2 3 4")
	assert.EqualError(t, err, "Missing required parameters: previous_defaults")
}

func TestParseCreditPrompt_WholeWordsOnly(t *testing.T) {
	_, err := ParseCreditPrompt("incomes 1 histories 2 ratios 3 ages 4 default 5")
	var mpe *MissingParamsError
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, CreditScoreSchema.Parameters.Required, mpe.Params)
}

func TestCalculateCreditScore(t *testing.T) {
	tests := []struct {
		name string
		p    CreditParams
		want int
	}{
		{"sample", CreditParams{75000, 5, 30, 35, 0}, 629},
		{"best possible inputs", CreditParams{500000, 40, 0, 80, 0}, 750},
		{"floor at 300", CreditParams{0, 0, 100, 18, 5}, 300},
		{"strong profile", CreditParams{150000, 12, 10, 50, 0}, 740},
		{"rounds half up", CreditParams{500, 0, 0, 18, 0}, 501},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateCreditScore(tc.p))
		})
	}
}

func TestCalculateCreditScore_Bounds(t *testing.T) {
	for _, p := range []CreditParams{
		{1e9, 1e3, 0, 1e3, 0},
		{0, 0, 1e6, 0, 1e3},
	} {
		s := CalculateCreditScore(p)
		assert.GreaterOrEqual(t, s, 300)
		assert.LessOrEqual(t, s, 850)
	}
}

func TestRating(t *testing.T) {
	assert.Equal(t, "Excellent", Rating(750))
	assert.Equal(t, "Good", Rating(749))
	assert.Equal(t, "Good", Rating(670))
	assert.Equal(t, "Fair", Rating(669))
	assert.Equal(t, "Fair", Rating(580))
	assert.Equal(t, "Poor", Rating(579))
}

func TestRunCredit_Sample(t *testing.T) {
	res, err := RunCredit(samplePrompt)
	require.NoError(t, err)
	assert.Equal(t, "calculate_credit_score", res.FunctionCalled)
	assert.Equal(t, 629, res.CreditScore)
	assert.Equal(t, "Fair", res.Rating)
	assert.Contains(t, res.Interpretation, "• Annual Income: $75,000")
	assert.Contains(t, res.Interpretation, "• Debt-to-Income Ratio: 30%")
	assert.Contains(t, res.Interpretation, "Calculated Credit Score: 629")
	assert.Contains(t, res.Interpretation, "Fair Credit Score")
}

func TestRunCredit_Missing(t *testing.T) {
	res, err := RunCredit("what is my score")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMissingParams)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "75,000", groupThousands(75000))
	assert.Equal(t, "1,234,567.5", groupThousands(1234567.5))
}
