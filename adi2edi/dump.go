package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jj1bdx/adi2edi/adif"
)

var (
	dumpADIF    bool
	dumpDedupe  bool
	dumpSort    bool
	dumpReverse bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file.adi>",
	Short: "Print the ADIF parse tree, or the records as ADIF",
	Long: `Prints the parse tree the converter works on.

With --adif, --dedupe or --sort the records are printed instead, one per
line, with duplicates dropped or ordered by QSO time as requested.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

type recordWithTime struct {
	date   time.Time
	record adif.Record
}

func runDump(cmd *cobra.Command, args []string) error {
	tree, err := parseFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !dumpADIF && !dumpDedupe && !dumpSort {
		return adif.Dump(out, tree)
	}

	records := adif.Records(tree)
	if dumpDedupe {
		records = dedupe(records)
	}
	if dumpSort {
		if records, err = sortByTime(records, dumpReverse); err != nil {
			return err
		}
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(out, r.ToString()); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Total records: %s\n", humanize.Comma(int64(len(records))))
	return nil
}

// dedupe keeps the first record of each fingerprint.
func dedupe(records []adif.Record) []adif.Record {
	seen := make(map[uint64]bool, len(records))
	out := make([]adif.Record, 0, len(records))
	for _, r := range records {
		fp := r.Fingerprint()
		if seen[fp] {
			continue
		}
		seen[fp] = true
		out = append(out, r)
	}
	return out
}

func sortByTime(records []adif.Record, reverse bool) ([]adif.Record, error) {
	timed := make([]recordWithTime, 0, len(records))
	for i, r := range records {
		t, err := r.Time()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		timed = append(timed, recordWithTime{t, r})
	}
	sort.SliceStable(timed, func(i, j int) bool {
		if reverse {
			return timed[i].date.After(timed[j].date)
		}
		return timed[i].date.Before(timed[j].date)
	})
	out := make([]adif.Record, len(timed))
	for i := range timed {
		out[i] = timed[i].record
	}
	return out, nil
}
