package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"fjacquet/voice-expense/cmd/root"
	"fjacquet/voice-expense/internal/config"
	"fjacquet/voice-expense/internal/container"
	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/store"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Dates.Timezone = "UTC"
	cfg.Batch.Workers = 2
	cfg.Batch.Delimiter = ","

	today := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithClock(func() time.Time { return today }),
		container.WithTaxonomyLoader(&store.MockTaxonomyStore{}))
	require.NoError(t, err)
	return c
}

func TestExtractCommand_Metadata(t *testing.T) {
	assert.Equal(t, "extract [transcript...]", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Extract a structured expense")
	assert.Contains(t, Cmd.Long, "Example")
	assert.NotNil(t, Cmd.RunE)

	formatFlag := Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestCollectTranscripts(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  []string
	}{
		{"args joined", []string{"I spent", "$15", "at McDonald's"}, "ignored\n", []string{"I spent $15 at McDonald's"}},
		{"stdin lines", nil, "coffee $3\n\ntaxi 20 bucks\n", []string{"coffee $3", "taxi 20 bucks"}},
		{"empty stdin", nil, "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectTranscripts(tt.args, strings.NewReader(tt.stdin))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Text(t *testing.T) {
	c := testContainer(t)

	var buf bytes.Buffer
	err := Run(context.Background(), c.GetPipeline(), []string{"I spent $15 on lunch at McDonald's", "   "}, &buf, "text")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Description: I McDonald's")
	assert.Contains(t, out, "Amount:      $15.00")
	assert.Contains(t, out, "Category:    Food & Dining")
	assert.Contains(t, out, "Date:        2024-03-10")
	assert.Contains(t, out, "Source:      Local")
	assert.Contains(t, out, "Error: Empty or invalid transcript")
}

func TestRun_JSON(t *testing.T) {
	c := testContainer(t)

	var buf bytes.Buffer
	err := Run(context.Background(), c.GetPipeline(), []string{"Lunch yesterday $12.50"}, &buf, "json")
	require.NoError(t, err)

	var result models.ExtractionResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Success)
	require.NotNil(t, result.Expense)
	assert.Equal(t, "12.5", result.Expense.Amount.String())
	assert.Equal(t, "2024-03-09", result.Expense.Date)
	assert.Equal(t, models.SourceLocal, result.Source)
}

func TestRun_Canceled(t *testing.T) {
	c := testContainer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// local extraction does not block, so a canceled ctx still yields a result
	var buf bytes.Buffer
	require.NoError(t, Run(ctx, c.GetPipeline(), []string{"coffee $3"}, &buf, "text"))
	assert.Contains(t, buf.String(), "Amount:      $3.00")
}

func TestExtractFunc(t *testing.T) {
	root.SetContainer(testContainer(t))
	t.Cleanup(func() { root.SetContainer(nil) })

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(""))

	require.NoError(t, extractFunc(cmd, []string{"Uber", "to", "the", "airport", "20", "bucks"}))
	assert.Contains(t, out.String(), "Category:    Transportation")
	assert.Contains(t, out.String(), "Amount:      $20.00")
}

func TestExtractFunc_Errors(t *testing.T) {
	t.Run("no container", func(t *testing.T) {
		root.SetContainer(nil)
		err := extractFunc(&cobra.Command{}, []string{"coffee $3"})
		assert.EqualError(t, err, "container not initialized")
	})

	t.Run("bad format", func(t *testing.T) {
		saved := OutputFormat
		OutputFormat = "xml"
		t.Cleanup(func() { OutputFormat = saved })

		err := extractFunc(&cobra.Command{}, []string{"coffee $3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})
}
