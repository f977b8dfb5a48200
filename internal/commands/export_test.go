package commands_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/keihi-dev/keihi/internal/export"
)

func today() string {
	return time.Now().Format("20060102")
}

func TestExport_DominantStore(t *testing.T) {
	dir := initProject(t)
	addEntry(t, dir, "store", "--store", "糸我", "--item", "消耗品", "--amount", "1500", "--memo", `He said "hi"`)
	addEntry(t, dir, "store", "--store", "貴志川", "--item", "両替", "--amount", "1000")
	addEntry(t, dir, "store", "--store", "糸我", "--item", "エラー", "--amount", "500")

	out, _, err := runKeihi(t, "export", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "エクスポートしました")

	want := filepath.Join(dir, "exports", "経費_糸我_他1件_"+today()+".csv")
	assert.Equal(t, []string{want}, exportFiles(t, dir))

	content := readFile(t, want)
	assert.True(t, strings.HasPrefix(content, "\uFEFF種別,店舗_項目,詳細,金額,メモ,インボイス判定,登録日時\n"))
	lines := strings.Split(content, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[3], `店舗出金,"糸我","消耗品",1500,"He said ""hi""",インボイス,`), lines[3])
}

func TestExport_PersonalOnly(t *testing.T) {
	dir := initProject(t, "--claimant", "山田（個人）")
	addEntry(t, dir, "personal", "--item", "電車代", "--amount", "300")
	addEntry(t, dir, "personal", "--item", "高速代", "--amount", "1200")

	_, _, err := runKeihi(t, "export", "--repo", dir)
	require.NoError(t, err)

	files := exportFiles(t, dir)
	require.Len(t, files, 1)
	assert.Equal(t, "経費_個人分のみ_2件_"+today()+".csv", filepath.Base(files[0]))

	lines := strings.Split(readFile(t, files[0]), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, `個人経費,"山田（個人）",`), line)
	}
}

func TestExport_Empty(t *testing.T) {
	dir := initProject(t)

	_, _, err := runKeihi(t, "export", "--repo", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrEmptyDataset)
	assert.Contains(t, err.Error(), "データがありません")
	assert.Empty(t, exportFiles(t, dir))
}

func TestExport_SameDayKeepsEarlierFile(t *testing.T) {
	dir := initProject(t)
	addEntry(t, dir, "store", "--store", "糸我", "--item", "両替", "--amount", "1000")

	_, _, err := runKeihi(t, "export", "--repo", dir)
	require.NoError(t, err)
	addEntry(t, dir, "store", "--store", "糸我", "--item", "消耗品", "--amount", "500")
	out, _, err := runKeihi(t, "export", "--repo", dir)
	require.NoError(t, err)

	files := exportFiles(t, dir)
	require.Len(t, files, 2)
	first := filepath.Join(dir, "exports", "経費_糸我_"+today()+".csv")
	second := filepath.Join(dir, "exports", "経費_糸我_"+today()+" (1).csv")
	assert.Contains(t, files, first)
	assert.Contains(t, files, second)
	assert.Contains(t, out, second)
	assert.Equal(t, 2, strings.Count(readFile(t, second), "\n"))
	assert.Equal(t, 1, strings.Count(readFile(t, first), "\n"))
}

func TestExport_Stdout(t *testing.T) {
	dir := initProject(t)
	addEntry(t, dir, "personal", "--item", "電車代", "--amount", "300")

	out, errOut, err := runKeihi(t, "export", "--sink", "stdout", "--repo", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\uFEFF種別"))
	assert.NotContains(t, out, "エクスポートしました")
	assert.Contains(t, errOut, "エクスポートしました: stdout")
	assert.Empty(t, exportFiles(t, dir))
}

func TestExport_XLSXToDir(t *testing.T) {
	dir := initProject(t)
	addEntry(t, dir, "store", "--store", "熊野", "--item", "ゴミ・浄化槽", "--amount", "3000")
	outDir := t.TempDir()

	_, _, err := runKeihi(t, "export", "--format", "xlsx", "--dir", outDir, "--repo", dir)
	require.NoError(t, err)

	path := filepath.Join(outDir, "経費_熊野_"+today()+".xlsx")
	f, err := excelize.OpenReader(bytes.NewReader([]byte(readFile(t, path))))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"店舗出金", "熊野", "ゴミ・浄化槽", "3000", "", "インボイス"}, rows[1][:6])
}

func TestExport_S3RequiresBucket(t *testing.T) {
	dir := initProject(t)
	addEntry(t, dir, "personal", "--item", "電車代", "--amount", "300")

	_, _, err := runKeihi(t, "export", "--sink", "s3", "--repo", dir)
	assert.ErrorContains(t, err, "export.s3.bucket")
}
