package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInfer_DateKey(t *testing.T) {
	ms := Infer([]Field{
		{Key: "amount", Value: "42"},
		{Key: "date", Value: "2024-01-01"},
	})

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, ms)
}

func TestInfer_KeySubstringMatch(t *testing.T) {
	ms := Infer([]Field{
		{Key: "Created_At", Value: "2023-06-15"},
	})

	want := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, ms)
}

func TestInfer_UnparseableFallsThrough(t *testing.T) {
	ms := Infer([]Field{
		{Key: "date", Value: "definitely not a date"},
		{Key: "timestamp", Value: "2022-12-31"},
	})

	want := time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, ms)
}

func TestInfer_NumericValueIsEpochMillis(t *testing.T) {
	ms := Infer([]Field{
		{Key: "timestamp", Value: float64(1700000000000)},
	})
	assert.Equal(t, int64(1700000000000), ms)
}

func TestInfer_NoCandidateDefaultsToNow(t *testing.T) {
	before := time.Now().UnixMilli()
	ms := Infer([]Field{
		{Key: "amount", Value: "42"},
		{Key: "category", Value: "food"},
	})
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
}

func TestInfer_NonStringNonNumberIgnored(t *testing.T) {
	before := time.Now().UnixMilli()
	ms := Infer([]Field{
		{Key: "date", Value: []string{"2024-01-01"}},
	})

	assert.GreaterOrEqual(t, ms, before)
}
