package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"wordmole/repositories"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", os.Getenv("JOURNAL_FILEPATH"), "Path to the journal badger DB")
	limit := flag.Int("limit", 50, "Number of most recent entries to show, 0 for all")
	kind := flag.String("kind", "", "Only show entries of this kind (event, message)")
	colours := flag.Bool("colours", true, "Colorize entry kinds")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("No journal path, use -db or JOURNAL_FILEPATH")
	}

	db, err := repositories.OpenJournalReadOnly(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	journal := repositories.NewJournalRepository(db, logs.GetLoggerFromString("ERROR"))
	var max *int
	if *limit > 0 {
		max = limit
	}
	entries, err := journal.Entries(max)
	if err != nil {
		log.Fatal(err)
	}
	if *kind != "" {
		entries = lo.Filter(entries, func(e repositories.JournalEntry, _ int) bool { return e.Kind == *kind })
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Kind", "ID", "Message", "Attributes"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		displayID := entry.ID.String()
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}
		table.Append([]string{
			entry.At.Format("15:04:05.000"),
			colorKind(entry.Kind, *colours),
			displayID,
			entry.Message,
			formatAttributes(entry.Attributes),
		})
	}
	table.Render()
	fmt.Printf("\n%d entries\n", len(entries))
}

func colorKind(kind string, enabled bool) string {
	if !enabled {
		return kind
	}
	switch kind {
	case "message":
		return color.New(color.FgCyan).Render(kind)
	case "event":
		return color.New(color.FgGreen).Render(kind)
	default:
		return color.New(color.FgYellow).Render(kind)
	}
}

func formatAttributes(attributes map[string]string) string {
	keys := lo.Keys(attributes)
	sort.Strings(keys)
	return strings.Join(lo.Map(keys, func(k string, _ int) string {
		return k + "=" + attributes[k]
	}), " ")
}
