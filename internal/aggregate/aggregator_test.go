package aggregate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleLines = []string{"1abc2", "pqr3stu8vwx", "a1b2c3d4e5f", "treb7uchet"}

func TestSum_Example(t *testing.T) {
	a := Sum(exampleLines)

	assert.Equal(t, Summary{Lines: 4, WithoutDigits: 0, Total: 142}, a.Summary())

	var values []int
	for _, res := range a.Results() {
		v, ok := res.Value()
		require.True(t, ok)
		values = append(values, v)
	}
	assert.Equal(t, []int{12, 38, 15, 77}, values)
}

func TestSum_LinesWithoutDigitsExcluded(t *testing.T) {
	a := Sum([]string{"abcdef", "two1nine", "zero", "eightwo"})

	summary := a.Summary()
	assert.Equal(t, 4, summary.Lines)
	assert.Equal(t, 2, summary.WithoutDigits)
	assert.Equal(t, 29+82, summary.Total)
}

func TestSum_Empty(t *testing.T) {
	a := Sum(nil)
	assert.Equal(t, Summary{}, a.Summary())
	assert.Empty(t, a.Results())
}

func TestAggregator_ZeroValue(t *testing.T) {
	var a Aggregator
	res := a.Add("seven")

	v, ok := res.Value()
	require.True(t, ok)
	assert.Equal(t, 77, v)
	assert.Equal(t, Summary{Lines: 1, Total: 77}, a.Summary())
}

func TestAggregator_ResultsIsCopy(t *testing.T) {
	a := Sum([]string{"1"})
	results := a.Results()
	results[0].Found = false

	assert.True(t, a.Results()[0].Found)
}

func TestSummary_String(t *testing.T) {
	s := Summary{Lines: 4, WithoutDigits: 1, Total: 142}
	assert.Equal(t, "4 lines processed (1 without digits)\nTotal: 142", s.String())
}

func TestSumParallel_MatchesSequential(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, fmt.Sprintf("x%dtwone%d", i%10, (i*7)%10))
	}

	want := Sum(lines)
	for _, workers := range []int{0, 1, 2, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := SumParallel(context.Background(), lines, workers)
			require.NoError(t, err)
			assert.Equal(t, want.Summary(), got.Summary())
			assert.Equal(t, want.Results(), got.Results())
		})
	}
}

func TestSumParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SumParallel(ctx, exampleLines, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = SumParallel(ctx, exampleLines, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregator_Report(t *testing.T) {
	a := Sum([]string{"1abc2", "nodigits"})
	report := a.Report("input.txt")

	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID.String())
	assert.Equal(t, "input.txt", report.Source)
	assert.Equal(t, 2, report.LinesProcessed)
	assert.Equal(t, 1, report.LinesWithoutDigits)
	assert.Equal(t, 12, report.Total)
	require.Len(t, report.Lines, 2)

	first := report.Lines[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "1abc2", first.Text)
	assert.True(t, first.Found)
	require.NotNil(t, first.Value)
	assert.Equal(t, 12, *first.Value)
	require.NotNil(t, first.First)
	assert.Equal(t, 1, first.First.Digit)
	assert.Equal(t, 0, first.First.Offset)
	require.NotNil(t, first.Last)
	assert.Equal(t, 2, first.Last.Digit)
	assert.Equal(t, 4, first.Last.Offset)

	second := report.Lines[1]
	assert.Equal(t, 2, second.Number)
	assert.False(t, second.Found)
	assert.Nil(t, second.Value)
	assert.Nil(t, second.First)

	assert.NoError(t, report.Validate())
}
