package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// PrintContextMap outputs the day-context map in date order, dispatching
// based on the output format configured.
func PrintContextMap(ctx schema.ContextMap, cfg *contract.Config) error {
	keys := make([]string, 0, len(ctx))
	for key := range ctx {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, ctx)
		}, "Wrote JSON context map")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVContext(csvWriter, ctx, keys)
		}, "Wrote CSV context map")
	default:
		return printContextTable(ctx, keys)
	}
}

func writeCSVContext(w *csv.Writer, ctx schema.ContextMap, keys []string) error {
	if err := w.Write([]string{"date", "tags", "meetings", "scheduled_minutes", "density"}); err != nil {
		return err
	}
	for _, key := range keys {
		day := ctx[key]
		if err := w.Write([]string{
			key,
			joinTags(day.Tags),
			fmt.Sprintf("%d", day.Meetings),
			fmt.Sprintf("%d", day.ScheduledMinutes),
			string(day.Density),
		}); err != nil {
			return err
		}
	}
	return nil
}

func printContextTable(ctx schema.ContextMap, keys []string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Tags", "Meetings", "Minutes", "Density"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range keys {
		day := ctx[key]
		tags := joinTags(day.Tags)
		if tags == "" {
			tags = "-"
		}
		data = append(data, []string{
			key,
			tags,
			fmt.Sprintf("%d", day.Meetings),
			fmt.Sprintf("%d", day.ScheduledMinutes),
			string(day.Density),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func joinTags(tags []schema.TagKind) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	return strings.Join(parts, "|")
}
