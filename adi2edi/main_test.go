package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jj1bdx/adi2edi/config"
	"github.com/jj1bdx/adi2edi/reg1test"
)

const twoBandLog = `test log
<ADIF_VER:5>3.1.4
<STATION_CALLSIGN:6>N0CALL <MY_GRIDSQUARE:4>FN20
<EOH>
<QSO_DATE:8>20230615 <TIME_ON:4>1430 <BAND:2>2m <CALL:4>W1AW <MODE:2>CW <EOR>
<QSO_DATE:8>20230615 <TIME_ON:4>1200 <BAND:4>23cm <CALL:5>DL1AB <MODE:3>SSB <EOR>
<QSO_DATE:8>20230615 <TIME_ON:4>1430 <BAND:2>2m <CALL:4>W1AW <MODE:2>CW <EOR>
`

// setup resets the globals normally set by PersistentPreRunE.
func setup(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	t.Cleanup(func() {
		cfg = nil
		dumpADIF, dumpDedupe, dumpSort, dumpReverse = false, false, false, false
	})
}

func writeLog(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := fn(cmd, args)
	return out.String(), err
}

func TestConvertToStdout(t *testing.T) {
	setup(t)
	in := writeLog(t, t.TempDir(), "log.adi", twoBandLog)

	out, err := run(t, runConvert, in)
	require.NoError(t, err)
	assert.Contains(t, out, "PBand=144 MHz\n")
	assert.Contains(t, out, "PBand=1,3 GHz\n")
	assert.Contains(t, out, "[Remarks]\ntest log\nADIF_VER=3.1.4\n")
	assert.Contains(t, out, "[QSORecords;2]\n230615;1430;W1AW;2;")
}

func TestConvertStdoutMatchesFile(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	in := writeLog(t, dir, "single.adi", "<CALL:4>W1AW<BAND:2>2m<EOR>")
	edi := filepath.Join(dir, "single.edi")

	out, err := run(t, runConvert, in)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, ";\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"), "no blank line after the last record")

	_, err = run(t, runConvert, in, edi)
	require.NoError(t, err)
	data, err := os.ReadFile(edi)
	require.NoError(t, err)
	assert.Equal(t, string(data), out)
}

func TestConvertSkipRemarks(t *testing.T) {
	setup(t)
	cfg.SkipRemarks = true
	in := writeLog(t, t.TempDir(), "log.adi", twoBandLog)

	out, err := run(t, runConvert, in)
	require.NoError(t, err)
	assert.Contains(t, out, "[Remarks]\n[QSORecords;")
	assert.NotContains(t, out, "ADIF_VER")
}

func TestConvertSplitsBandsIntoFiles(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	in := writeLog(t, dir, "log.adi", twoBandLog)

	out, err := run(t, runConvert, in, filepath.Join(dir, "contest.edi"))
	require.NoError(t, err)
	assert.Contains(t, out, "contest_144MHz.edi (2 QSOs)")
	assert.Contains(t, out, "contest_1_3GHz.edi (1 QSOs)")

	data, err := os.ReadFile(filepath.Join(dir, "contest_1_3GHz.edi"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "PBand=1,3 GHz\n")
	assert.NotContains(t, string(data), "144 MHz")

	_, err = os.Stat(filepath.Join(dir, "contest.edi"))
	assert.True(t, os.IsNotExist(err), "combined file must not be written for multiple bands")
}

func TestConvertSplitWritesNothingOnUnnamedBand(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	// 20m has no REG1TEST label, so its section has an empty PBand
	in := writeLog(t, dir, "log.adi", "<CALL:4>W1AW<BAND:2>2m<EOR><CALL:5>DL1AB<BAND:3>20m<EOR>")

	out, err := run(t, runConvert, in, filepath.Join(dir, "contest.edi"))
	require.Error(t, err)
	assert.ErrorIs(t, err, reg1test.ErrNoBandSuffix)
	assert.Empty(t, out)

	written, err := filepath.Glob(filepath.Join(dir, "*.edi"))
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestConvertToFileSingleBand(t *testing.T) {
	setup(t)
	cfg.ToFile = true
	cfg.OutputDir = t.TempDir()
	in := writeLog(t, t.TempDir(), "single.ADI", "<CALL:4>W1AW<BAND:2>2m<EOR>")

	out, err := run(t, runConvert, in)
	require.NoError(t, err)
	want := filepath.Join(cfg.OutputDir, "single.edi")
	assert.Contains(t, out, want)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[QSORecords;1]\n;;W1AW;0;")
}

func TestConvertArgumentErrors(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	adi := writeLog(t, dir, "log.adi", twoBandLog)
	txt := writeLog(t, dir, "log.txt", twoBandLog)

	_, err := run(t, runConvert, filepath.Join(dir, "missing.adi"))
	assert.ErrorIs(t, err, errInputNotFound)

	_, err = run(t, runConvert, dir)
	assert.ErrorIs(t, err, errInputNotFound)

	_, err = run(t, runConvert, txt)
	assert.ErrorIs(t, err, errInputExt)

	_, err = run(t, runConvert, adi, filepath.Join(dir, "out.txt"))
	assert.ErrorIs(t, err, errOutputExt)
}

func TestConvertReportsBadInput(t *testing.T) {
	setup(t)
	dir := t.TempDir()

	_, err := run(t, runConvert, writeLog(t, dir, "bad.adi", "<STX:3>abc<EOR>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STX")

	_, err = run(t, runConvert, writeLog(t, dir, "broken.adi", "header only\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse adi file")
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, filepath.Join("logs", "field.edi"), defaultOutput(filepath.Join("logs", "field.adi"), ""))
	assert.Equal(t, filepath.Join("out", "field.edi"), defaultOutput(filepath.Join("logs", "field.adi"), "out"))
}

func TestDump(t *testing.T) {
	setup(t)
	in := writeLog(t, t.TempDir(), "log.adi", twoBandLog)

	out, err := run(t, runDump, in)
	require.NoError(t, err)
	assert.Contains(t, out, "document\n  header\n")
	assert.Contains(t, out, `field_name "STATION_CALLSIGN"`)
}

func TestDumpDedupeAndSort(t *testing.T) {
	setup(t)
	dumpDedupe = true
	dumpSort = true
	in := writeLog(t, t.TempDir(), "log.adi", twoBandLog)

	out, err := run(t, runDump, in)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "<CALL:5>DL1AB")
	assert.Contains(t, string(lines[1]), "<CALL:4>W1AW")

	dumpReverse = true
	out, err = run(t, runDump, in)
	require.NoError(t, err)
	lines = bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "<CALL:4>W1AW")
}

func TestDumpSortNeedsTimes(t *testing.T) {
	setup(t)
	dumpSort = true
	in := writeLog(t, t.TempDir(), "log.adi", "<CALL:4>W1AW<EOR>")

	_, err := run(t, runDump, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestStats(t *testing.T) {
	setup(t)
	in := writeLog(t, t.TempDir(), "log.adi", twoBandLog)

	out, err := run(t, runStats, in)
	require.NoError(t, err)
	want := "TDate: 20230615;20230615\n" +
		"144 MHz: 2\n" +
		"1,3 GHz: 1\n" +
		"mode 1: 1\n" +
		"mode 2: 2\n" +
		"(TOTAL): 3\n"
	assert.Equal(t, want, out)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adi2edi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip_remarks: true\nto_file: true\n"), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().BoolVarP(&skipRemarks, "skip-remarks", "s", false, "")
	cmd.Flags().BoolVarP(&toFile, "to-file", "f", false, "")
	configPath = path
	t.Cleanup(func() { configPath, skipRemarks, toFile = "", false, false })
	require.NoError(t, cmd.Flags().Parse([]string{"--skip-remarks=false"}))

	c, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.False(t, c.SkipRemarks, "explicit flag wins")
	assert.True(t, c.ToFile, "file value kept when flag is not set")
}
