package export

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample() []Record {
	return []Record{
		{{"id", "1"}, {"filename", `He said "hi".txt`}, {"uploaded_by", "a@x.com"}},
		{{"id", "2"}, {"filename", "plain, with comma.pdf"}, {"uploaded_by", "b@x.com"}},
	}
}

func TestCSVEmpty(t *testing.T) {
	data, err := CSV(nil)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, data)
}

func TestCSVFormat(t *testing.T) {
	data, err := CSV(sample())
	require.NoError(t, err)

	s := string(data)
	require.True(t, strings.HasPrefix(s, "\ufeff"))
	lines := strings.Split(strings.TrimPrefix(s, "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,filename,uploaded_by", lines[0])
	assert.Equal(t, `"1","He said ""hi"".txt","a@x.com"`, lines[1])
	assert.Equal(t, `"2","plain, with comma.pdf","b@x.com"`, lines[2])
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "files_2024-03-09.csv", Filename("files", "csv", at))
}

func TestXLSX(t *testing.T) {
	data, err := XLSX("files", sample())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("files")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "filename", "uploaded_by"}, rows[0])
	assert.Equal(t, `He said "hi".txt`, rows[1][1])

	_, err = XLSX("files", nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBundle(t *testing.T) {
	csvData, err := CSV(sample())
	require.NoError(t, err)

	data, err := Bundle([]Entry{
		{Name: "files.csv", Data: csvData},
		{Name: "logs.csv", Data: nil},
	}, time.Now())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "files.csv", zr.File[0].Name)
	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, csvData, got)

	_, err = Bundle(nil, time.Now())
	assert.ErrorIs(t, err, ErrNoData)
}
