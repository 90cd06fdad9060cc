package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file.adi>",
	Short: "Show QSO counts per REG1TEST band and mode code",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	doc, err := convertFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "TDate: %s\n", doc.DateRange)
	modes := make(map[byte]int)
	for _, b := range doc.Bands {
		label := b.Label()
		if label == "" {
			label = "(UNKNOWN)"
		}
		fmt.Fprintf(out, "%s: %s\n", label, humanize.Comma(int64(b.Count())))
		for _, q := range b.QSOs.Records {
			modes[q.Mode]++
		}
	}

	codes := make([]byte, 0, len(modes))
	for c := range modes {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, c := range codes {
		fmt.Fprintf(out, "mode %c: %s\n", c, humanize.Comma(int64(modes[c])))
	}
	fmt.Fprintln(out, "(TOTAL):", humanize.Comma(int64(doc.QSOCount())))
	return nil
}
