package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/trip-expense/internal/application/service"
)

const tripJSON = `{
	"start_date": "10/03/2024",
	"end_date": "11/03/2024",
	"transport": {"mode": "flat", "flat_fee": 300},
	"days": [{"date": "10/03/2024", "breakfast": true, "lunch_regular": true}],
	"transport_dates": ["10/03/2024"]
}`

func writeTrip(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_TextToStdout(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"-trip", writeTrip(t, tripJSON)}, &out)
	require.NoError(t, err)

	assert.Equal(t,
		"10/03/2024 – + ☕ Café da manhã R$ 20,00 + 🍽️ Almoço R$ 33,00 + 🚗 Deslocamento R$ 300,00 = R$ 353,00\n"+
			"11/03/2024 – = R$ 0,00\n"+
			"\n"+
			"Total do Período: R$ 353,00",
		out.String())
}

func TestRun_CSVToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "dados_viagem.csv")

	err := run(context.Background(), []string{"-trip", writeTrip(t, tripJSON), "-format", "csv", "-out", outPath}, &bytes.Buffer{})
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "10/03/2024,Domingo,20,33,0,0,0,300,353")
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing trip flag", func(t *testing.T) {
		err := run(context.Background(), nil, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("unreadable trip", func(t *testing.T) {
		err := run(context.Background(), []string{"-trip", filepath.Join(t.TempDir(), "absent.json")}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("invalid range", func(t *testing.T) {
		path := writeTrip(t, `{"start_date": "2024-03-12", "end_date": "2024-03-11"}`)
		err := run(context.Background(), []string{"-trip", path}, &bytes.Buffer{})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("unknown format", func(t *testing.T) {
		err := run(context.Background(), []string{"-trip", writeTrip(t, tripJSON), "-format", "docx"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}
