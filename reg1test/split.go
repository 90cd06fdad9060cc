package reg1test

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrNoBandSuffix = errors.New("no PBand value to derive a file name from")

var rePBand = regexp.MustCompile(`(?m)^PBand=(\d+(?:,\d+)?\s\w+)`)

// SplitSections cuts combined output into its band sections. Sections are
// separated by a blank line; each returned section ends with a newline.
func SplitSections(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	sections := strings.Split(text, "\n\n")
	for i := range sections {
		sections[i] += "\n"
	}
	return sections
}

// BandSuffix derives a file name suffix from the PBand line of a section:
// "PBand=1,3 GHz" gives "1_3GHz".
func BandSuffix(section string) (string, error) {
	m := rePBand.FindStringSubmatch(section)
	if m == nil {
		return "", ErrNoBandSuffix
	}
	suffix := strings.ReplaceAll(m[1], ",", "_")
	return strings.ReplaceAll(suffix, " ", ""), nil
}

// SectionFileName returns base with the band suffix of section appended to
// its stem: "log.edi" and a 144 MHz section give "log_144MHz.edi".
func SectionFileName(base, section string) (string, error) {
	suffix, err := BandSuffix(section)
	if err != nil {
		return "", fmt.Errorf("%s: %w", base, err)
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + suffix + ext, nil
}
