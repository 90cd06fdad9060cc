package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jj1bdx/adi2edi"
	"github.com/jj1bdx/adi2edi/adif"
	"github.com/jj1bdx/adi2edi/reg1test"
)

var (
	errInputNotFound = errors.New("input file not found")
	errInputExt      = errors.New("input file extension is not .adi")
	errOutputExt     = errors.New("output file extension is not .edi")
)

type writtenFile struct {
	path string
	qsos int
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath := args[0]
	if err := checkInput(inPath); err != nil {
		return err
	}
	var outPath string
	switch {
	case len(args) > 1:
		outPath = args[1]
		if !hasExt(outPath, ".edi") {
			return fmt.Errorf("%s: %w", outPath, errOutputExt)
		}
	case cfg.ToFile:
		outPath = defaultOutput(inPath, cfg.OutputDir)
	}

	doc, err := convertFile(inPath)
	if err != nil {
		return err
	}
	if doc.QSOCount() == 0 {
		logger.Warn("no QSO records found", zap.String("file", inPath))
	}

	out := cmd.OutOrStdout()
	if outPath == "" {
		_, err := fmt.Fprint(out, doc.String())
		return err
	}
	written, err := writeSections(outPath, doc)
	for _, w := range written {
		fmt.Fprintf(out, "Results successfully saved to: %s (%s QSOs)\n", w.path, humanize.Comma(int64(w.qsos)))
	}
	return err
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, errInputNotFound)
	}
	if !hasExt(path, ".adi") {
		return fmt.Errorf("%s: %w", path, errInputExt)
	}
	return nil
}

func hasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// defaultOutput is the input path with an .edi extension, moved to dir if set.
func defaultOutput(inPath, dir string) string {
	out := strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".edi"
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out
}

func parseFile(path string) (*adif.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open adi file: %w", err)
	}
	defer f.Close()

	tree, err := adif.Parse(f, adif.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("cannot parse adi file %s: %w", path, err)
	}
	return tree, nil
}

func convertFile(path string) (*adi2edi.Document, error) {
	tree, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := adi2edi.Convert(tree, adi2edi.Options{
		SkipRemarks:  cfg.SkipRemarks,
		BandFromFreq: cfg.BandFromFreq,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s: %w", path, err)
	}
	return doc, nil
}

// writeSections writes the document to outPath, or one file per band next
// to it when there is more than one band. Nothing is written unless every
// section yields a file name.
func writeSections(outPath string, doc *adi2edi.Document) ([]writtenFile, error) {
	text := doc.String()
	sections := reg1test.SplitSections(text)
	if len(sections) <= 1 {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			return nil, err
		}
		return []writtenFile{{path: outPath, qsos: doc.QSOCount()}}, nil
	}

	names := make([]string, len(sections))
	for i, s := range sections {
		name, err := reg1test.SectionFileName(outPath, s)
		if err != nil {
			return nil, fmt.Errorf("parsing file suffix from 'PBand' failed: %w", err)
		}
		names[i] = name
	}

	var written []writtenFile
	for i, s := range sections {
		if err := os.WriteFile(names[i], []byte(s), 0o644); err != nil {
			return written, err
		}
		written = append(written, writtenFile{path: names[i], qsos: doc.Bands[i].Count()})
	}
	return written, nil
}
