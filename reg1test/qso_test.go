package reg1test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    uint16
		want string
	}{
		{0, ""},
		{1, "001"},
		{7, "007"},
		{999, "999"},
		{1000, "1000"},
		{1500, "1500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.n), "FormatNumber(%d)", tt.n)
	}
}

func TestQSORecordString(t *testing.T) {
	q := NewQSORecord()
	assert.Equal(t, ";;;0;;;;;;;;;;;", q.String())

	q = QSORecord{
		Date:           "230615",
		Time:           "1430",
		Call:           "W1AW",
		Mode:           '2',
		SentRST:        "599",
		SentNumber:     1,
		ReceivedRST:    "599",
		ReceivedNumber: 1002,
		ReceivedWWL:    "FN31",
	}
	assert.Equal(t, "230615;1430;W1AW;2;599;001;599;1002;;FN31;;;;;", q.String())
}

func TestSectionString(t *testing.T) {
	h := NewHeader()
	h.TDate = "20230615;20230616"
	h.PCall = "N0CALL"
	h.PWWLo = "FN20"
	h.PBand = "144 MHz"

	s := Section{
		Header:  h,
		Remarks: Remarks{Lines: []string{"first line", "ADIF_VER=3.1.4"}},
	}
	s.QSOs.Add(QSORecord{Date: "230615", Time: "1430", Call: "W1AW", Mode: '2'})
	s.QSOs.Add(QSORecord{Date: "230616", Time: "0900", Call: "DL1AB", Mode: '1'})

	want := `[REG1TEST;1]
TDate=20230615;20230616
PCall=N0CALL
PWWLo=FN20
PBand=144 MHz
[Remarks]
first line
ADIF_VER=3.1.4
[QSORecords;2]
230615;1430;W1AW;2;;;;;;;;;;;
230616;0900;DL1AB;1;;;;;;;;;;;
`
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("Section.String() mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderOptionalLines(t *testing.T) {
	h := NewHeader()
	h.PBand = "432 MHz"
	assert.Equal(t, "[REG1TEST;1]\nTDate=\nPCall=\nPWWLo=\nPBand=432 MHz", h.String())

	h.PSect = "SINGLE"
	h.PClub = "DARC"
	assert.Equal(t, "[REG1TEST;1]\nTDate=\nPCall=\nPWWLo=\nPBand=432 MHz\nPSect=SINGLE\nPClub=DARC", h.String())
}

func TestRemarksEmpty(t *testing.T) {
	assert.Equal(t, "[Remarks]", Remarks{}.String())
}
