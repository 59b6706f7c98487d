package batch

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fjacquet/voice-expense/internal/dateutils"
	"fjacquet/voice-expense/internal/models"

	"github.com/shopspring/decimal"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format(dateutils.DateLayoutISO),
		dr.End.Format(dateutils.DateLayoutISO))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// CategoryTotal is the spend and count for one category.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// Summary aggregates a batch of records.
type Summary struct {
	Records   int
	Succeeded int
	Failed    int
	Errors    int
	Total     decimal.Decimal
	DateRange DateRange
	// Categories holds only categories with at least one expense, in display order.
	Categories []CategoryTotal
}

// Summarize aggregates records into totals per category.
func Summarize(records []Record) Summary {
	summary := Summary{Records: len(records), Total: decimal.Zero}
	byCategory := make(map[string]*CategoryTotal)

	for _, r := range records {
		switch r.Status {
		case StatusFailed:
			summary.Failed++
			continue
		case StatusError:
			summary.Errors++
			continue
		case StatusOK:
		default:
			continue
		}
		summary.Succeeded++

		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			amount = decimal.Zero
		}
		summary.Total = summary.Total.Add(amount)

		ct, ok := byCategory[r.Category]
		if !ok {
			ct = &CategoryTotal{Category: r.Category, Total: decimal.Zero}
			byCategory[r.Category] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(amount)

		if d, err := time.Parse(dateutils.DateLayoutISO, r.Date); err == nil {
			summary.DateRange = summary.DateRange.Merge(DateRange{Start: d, End: d})
		}
	}

	for _, name := range models.CategoryNames() {
		if ct, ok := byCategory[name]; ok {
			summary.Categories = append(summary.Categories, *ct)
			delete(byCategory, name)
		}
	}
	// categories outside the closed set only come from a misbehaving extractor
	for _, ct := range byCategory {
		summary.Categories = append(summary.Categories, *ct)
	}

	return summary
}

// WriteSummary renders the summary as an aligned text table.
func WriteSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tTOTAL")
	for _, ct := range s.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", ct.Category, ct.Count, ct.Total.StringFixed(2))
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%s\n", s.Succeeded, s.Total.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	_, err := fmt.Fprintf(w, "records: %d, ok: %d, failed: %d, errors: %d", s.Records, s.Succeeded, s.Failed, s.Errors)
	if err != nil {
		return err
	}
	if dr := s.DateRange.String(); dr != "" {
		_, err = fmt.Fprintf(w, ", dates: %s", dr)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}
