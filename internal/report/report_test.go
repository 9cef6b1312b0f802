package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/garyjia/trip-expense/internal/domain/entity"
	"github.com/garyjia/trip-expense/internal/domain/pricing"
)

// sampleReport prices a two-day trip: a weekday with breakfast, lunch and transport, then an empty day
func sampleReport() entity.Report {
	first := entity.MustParseDate("10/03/2024")
	rows := pricing.PriceAll([]entity.DayRecord{
		{Date: first, Type: entity.DayTypeWeekday, Flags: entity.DayFlags{Breakfast: true, LunchRegular: true}},
		{Date: first.AddDays(1), Type: entity.DayTypeWeekday},
	}, entity.DefaultRateTable(), decimal.NewFromInt(300), entity.NewTransportDates(first))
	return pricing.Aggregate(rows)
}

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale("pt-BR", " R$ ")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", loc.Tag.String())
	assert.Equal(t, "R$", loc.CurrencySymbol)

	_, err = ParseLocale("not a locale!", "")
	assert.ErrorIs(t, err, ErrInvalidLocale)
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name   string
		locale Locale
		amount string
		want   string
	}{
		{name: "pt-BR thousands", locale: DefaultLocale, amount: "1234.5", want: "R$ 1.234,50"},
		{name: "pt-BR small", locale: DefaultLocale, amount: "20", want: "R$ 20,00"},
		{name: "pt-BR zero", locale: DefaultLocale, amount: "0", want: "R$ 0,00"},
		{name: "pt-BR rounds to cents", locale: DefaultLocale, amount: "292.499", want: "R$ 292,50"},
		{name: "en-US", locale: Locale{Tag: language.AmericanEnglish, CurrencySymbol: "$"}, amount: "1234567.891", want: "$ 1,234,567.89"},
		{name: "no symbol", locale: Locale{Tag: language.AmericanEnglish}, amount: "12.3", want: "12.30"},
		{name: "pt-BR beyond float precision", locale: DefaultLocale, amount: "123456789012345678.905", want: "R$ 123.456.789.012.345.678,91"},
		{name: "pt-BR exact group boundary", locale: DefaultLocale, amount: "100000", want: "R$ 100.000,00"},
		{name: "pt-BR negative", locale: DefaultLocale, amount: "-1234.5", want: "R$ -1.234,50"},
		{name: "en-US sub-thousand", locale: Locale{Tag: language.AmericanEnglish, CurrencySymbol: "$"}, amount: "999.999", want: "$ 1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.locale)
			assert.Equal(t, tt.want, f.Money(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "Café da manhã", LabelsFor(language.BrazilianPortuguese).CategoryName(entity.CategoryBreakfast))
	assert.Equal(t, "Almoço", LabelsFor(language.EuropeanPortuguese).CategoryName(entity.CategoryLunch))
	assert.Equal(t, "Breakfast", LabelsFor(language.German).CategoryName(entity.CategoryBreakfast))

	labels := PortugueseLabels
	assert.Equal(t, "☕ Café da manhã", labels.Category(entity.CategoryBreakfast))
	assert.Equal(t, "Feriado final de semana", labels.DayType(entity.DayTypeHolidayWeekend))
	assert.Equal(t, "DayType(9)", labels.DayType(entity.DayType(9)))
	assert.Equal(t, "parking", labels.CategoryName(entity.Category("parking")))
	assert.Equal(t,
		[]string{"Dia", "Tipo", "Café da manhã", "Almoço", "Jantar", "Frigobar", "Lavanderia", "Deslocamento", "Total"},
		labels.Header())
}

func TestTextRenderer(t *testing.T) {
	r := NewTextRenderer(NewFormatter(DefaultLocale), PortugueseLabels)

	t.Run("lists nonzero categories in order then total", func(t *testing.T) {
		text := r.Render(sampleReport())
		lines := strings.Split(text, "\n")

		require.Len(t, lines, 4)
		assert.Equal(t, "10/03/2024 – + ☕ Café da manhã R$ 20,00 + 🍽️ Almoço R$ 33,00 + 🚗 Deslocamento R$ 300,00 = R$ 353,00", lines[0])
		assert.Equal(t, "11/03/2024 – = R$ 0,00", lines[1])
		assert.Equal(t, "", lines[2])
		assert.Equal(t, "Total do Período: R$ 353,00", lines[3])
	})

	t.Run("empty trip", func(t *testing.T) {
		text := r.Render(pricing.Aggregate(nil))
		assert.Equal(t, "\nTotal do Período: R$ 0,00", text)
	})

	t.Run("sub-cent costs are not listed", func(t *testing.T) {
		rates := entity.DefaultRateTable()
		rates.Minibar = decimal.RequireFromString("0.004")
		day := entity.MustParseDate("11/03/2024")
		row := pricing.Price(entity.DayRecord{
			Date:  day,
			Type:  entity.DayTypeWeekday,
			Flags: entity.DayFlags{Minibar: true, Breakfast: true},
		}, rates, decimal.Zero, nil)

		assert.Equal(t, "11/03/2024 – + ☕ Café da manhã R$ 20,00 = R$ 20,00", r.Line(row))
	})

	t.Run("plain renderer drops icons", func(t *testing.T) {
		plain := newPlainTextRenderer(NewFormatter(DefaultLocale), PortugueseLabels)
		line := plain.Line(sampleReport().Rows[0])
		assert.True(t, strings.HasPrefix(line, "10/03/2024 – + Café da manhã R$ 20,00 + Almoço"))
	})
}

func TestCSVRenderer(t *testing.T) {
	content, err := NewCSVRenderer(PortugueseLabels).Render(sampleReport())
	require.NoError(t, err)

	assert.Equal(t,
		"Dia,Tipo,Café da manhã,Almoço,Jantar,Frigobar,Lavanderia,Deslocamento,Total\n"+
			"10/03/2024,Dia útil,20,33,0,0,0,300,353\n"+
			"11/03/2024,Dia útil,0,0,0,0,0,0,0\n",
		string(content))

	empty, err := NewCSVRenderer(EnglishLabels).Render(pricing.Aggregate(nil))
	require.NoError(t, err)
	assert.Equal(t, "Date,Type,Breakfast,Lunch,Dinner,Minibar,Laundry,Transport,Total\n", string(empty))
}

func TestXLSXRenderer(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	content, err := NewXLSXRenderer(PortugueseLabels, logger).Render(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Relatório", "Resumo"}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}
	cell := func(sheet, name string) string {
		v, err := f.GetCellValue(sheet, name, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Dia", cell("Relatório", "A1"))
	assert.Equal(t, "Total", cell("Relatório", "I1"))
	assert.Equal(t, "10/03/2024", cell("Relatório", "A2"))
	assert.Equal(t, "Dia útil", cell("Relatório", "B2"))
	assert.Equal(t, "20", cell("Relatório", "C2"))
	assert.Equal(t, "300", cell("Relatório", "H2"))
	assert.Equal(t, "353", cell("Relatório", "I2"))
	assert.Equal(t, "Total do Período", cell("Relatório", "A4"))
	assert.Equal(t, "353", cell("Relatório", "I4"))

	assert.Equal(t, "Categoria", cell("Resumo", "A1"))
	assert.Equal(t, "Café da manhã", cell("Resumo", "A2"))
	assert.Equal(t, "20", cell("Resumo", "B2"))
	assert.Equal(t, "Deslocamento", cell("Resumo", "A7"))
	assert.Equal(t, "300", cell("Resumo", "B7"))
}

func TestPDFRenderer(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	content, err := NewPDFRenderer(NewFormatter(DefaultLocale), PortugueseLabels, logger).Render(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"txt":   FormatText,
		"TEXT":  FormatText,
		"csv":   FormatCSV,
		" xlsx": FormatXLSX,
		"pdf":   FormatPDF,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExporter_Export(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	exporter := NewExporter(NewFormatter(DefaultLocale), PortugueseLabels, logger)
	report := sampleReport()

	tests := []struct {
		format   Format
		name     string
		mimeType string
	}{
		{FormatText, "relatorio_viagem.txt", MimeText},
		{FormatCSV, "dados_viagem.csv", MimeCSV},
		{FormatXLSX, "dados_viagem.xlsx", MimeXLSX},
		{FormatPDF, "relatorio_viagem.pdf", MimePDF},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			file, err := exporter.Export(tt.format, report)
			require.NoError(t, err)
			assert.Equal(t, tt.name, file.Name)
			assert.Equal(t, tt.mimeType, file.MimeType)
			assert.NotEmpty(t, file.Content)
		})
	}

	text, err := exporter.Export(FormatText, report)
	require.NoError(t, err)
	assert.Equal(t, exporter.Text(report), string(text.Content))

	_, err = exporter.Export(Format("docx"), report)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
