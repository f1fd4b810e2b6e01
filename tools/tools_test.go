package tools

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type rankRow struct {
	ID    string `excel:"-"`
	Rank  int    `excel:"排名"`
	Name  string `excel:"姓名"`
	Score *int
}

func TestWriteExcel(t *testing.T) {
	three := 3
	buf, err := WriteExcel("排行", []rankRow{
		{ID: "m1", Rank: 1, Name: "Kim", Score: &three},
		{ID: "m2", Rank: 2, Name: "Lee"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"排行"}, f.GetSheetList())
	rows, err := f.GetRows("排行")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"排名", "姓名", "Score"}, rows[0])
	assert.Equal(t, []string{"1", "Kim", "3"}, rows[1])
	assert.Equal(t, []string{"2", "Lee"}, rows[2][:2])
}

func TestWriteExcelEmptyWritesHeader(t *testing.T) {
	buf, err := WriteExcel("排行", []rankRow{})
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, _ := f.GetRows("排行")
	require.Len(t, rows, 1)
}

func TestExportToExcelRejectsNonStructSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	assert.Error(t, ExportToExcel(f, "", 42))
	assert.Error(t, ExportToExcel(f, "", []int{1}))
}

func TestPassword(t *testing.T) {
	hash, err := PasswordEncrypt("wakeup!")
	require.NoError(t, err)
	assert.True(t, PasswordCompare(hash, "wakeup!"))
	assert.False(t, PasswordCompare(hash, "wrong"))
	assert.False(t, PasswordCompare("not-a-hash", "wakeup!"))
}
