package batch_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vortex-fintech/go-iban/batch"
	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/metrics"
	"github.com/vortex-fintech/go-iban/timeutil"
)

var scenarioInputs = []string{
	"DE44500105175407324931",
	"LV80 BANK 0000 4351 9500 1",
	"DE4450010234607324931",
	"MR0 041 9",
	"ZZ07273912631298461",
	"AL84212110090000AB023569874",
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()

	inputs := make([]string, 0, 600)
	for i := 0; i < 100; i++ {
		inputs = append(inputs, scenarioInputs...)
	}

	v := batch.New(batch.Options{Concurrency: 4})
	results, err := v.Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		require.Equal(t, inputs[i], r.Input)
		switch i % len(scenarioInputs) {
		case 0:
			require.True(t, r.Valid())
			require.Equal(t, "DE44 5001 0517 5407 3249 31", r.Iban.String())
		case 1:
			require.True(t, r.Valid())
			require.Equal(t, "LV80BANK0000435195001", r.Iban.Electronic())
		case 2:
			require.ErrorIs(t, r.Err, iban.ErrInvalidChecksum)
		case 3:
			require.ErrorIs(t, r.Err, iban.ErrInvalidFormat)
		case 4:
			require.ErrorIs(t, r.Err, iban.ErrUnknownCountry)
		case 5:
			require.ErrorIs(t, r.Err, iban.ErrInvalidBBAN)
		}
	}

	s := batch.Summarize(results)
	assert.Equal(t, 600, s.Total)
	assert.Equal(t, 200, s.Valid)
	assert.Equal(t, 400, s.Invalid)
	assert.Equal(t, map[string]int{
		metrics.ResultValid:           200,
		metrics.ResultInvalidChecksum: 100,
		metrics.ResultInvalidFormat:   100,
		metrics.ResultUnknownCountry:  100,
		metrics.ResultInvalidBBAN:     100,
	}, s.ByResult)
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	results, err := batch.New(batch.Options{}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := batch.New(batch.Options{Concurrency: 1}).Run(ctx, scenarioInputs)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestRun_FeedsMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg, "iban")
	require.NoError(t, err)

	_, err = batch.New(batch.Options{Metrics: rec}).Run(context.Background(), scenarioInputs)
	require.NoError(t, err)

	want := `
# HELP iban_validations_total IBAN validations by result and country
# TYPE iban_validations_total counter
iban_validations_total{country="AL",result="invalid_bban"} 1
iban_validations_total{country="DE",result="valid"} 1
iban_validations_total{country="LV",result="valid"} 1
iban_validations_total{country="none",result="invalid_checksum"} 1
iban_validations_total{country="none",result="invalid_format"} 1
iban_validations_total{country="other",result="unknown_country"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "iban_validations_total"))
}

func TestRun_LogsMaskedInputs(t *testing.T) {
	t.Parallel()

	for _, env := range []string{"production", "development"} {
		env := env
		t.Run(env, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.DebugLevel)
			clock := timeutil.NewFrozenClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
			v := batch.New(batch.Options{Logger: logger.FromZap(zap.New(core)), Env: env, Clock: clock})

			_, err := v.Run(context.Background(), []string{"AL84212110090000AB023569874", "DE44500105175407324931"})
			require.NoError(t, err)

			rejected := logs.FilterMessage("iban rejected").All()
			require.Len(t, rejected, 1)
			fields := rejected[0].ContextMap()
			assert.Equal(t, metrics.ResultInvalidBBAN, fields["reason"])
			if env == "production" {
				assert.Equal(t, "AL** **** **** **** **** ***9 874", fields["input"])
			} else {
				assert.Equal(t, "AL84212110090000AB023569874", fields["input"])
			}

			done := logs.FilterMessage("batch validated").All()
			require.Len(t, done, 1)
			assert.Equal(t, int64(2), done[0].ContextMap()["total"])
			assert.Equal(t, int64(1), done[0].ContextMap()["valid"])
			assert.Equal(t, time.Duration(0), done[0].ContextMap()["duration"])
		})
	}
}

func ExampleValidator_Run() {
	v := batch.New(batch.Options{Concurrency: 2})
	results, _ := v.Run(context.Background(), []string{"DE44500105175407324931", "MR0 041 9"})
	for _, r := range results {
		fmt.Println(r.Input, r.Valid())
	}
	// Output:
	// DE44500105175407324931 true
	// MR0 041 9 false
}
