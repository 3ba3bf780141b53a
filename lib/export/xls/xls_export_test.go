package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"recruit-backend/models"
	aiapimodels "recruit-backend/models/api/ai"
	applicationapimodels "recruit-backend/models/api/application"
)

func TestExportApplicantList(t *testing.T) {
	list := []applicationapimodels.ApplicationView{
		{
			JobSeekerName: "田中 太郎",
			Email:         "tanaka@example.com",
			JobTitle:      "エンジニア",
			StatusName:    models.ApplicationStatusNew.ToHuman(),
			AppliedAt:     time.Date(2024, time.March, 31, 16, 30, 0, 0, time.UTC),
			Evaluation: &aiapimodels.EvaluationView{
				Rank:       models.AIRankA,
				Score:      78,
				IsFallback: true,
			},
		},
		{
			JobSeekerName: "佐藤 花子",
		},
	}
	buf, err := impl{location: time.FixedZone("JST", 9*60*60)}.ExportApplicantList(list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, applicantHeaders, rows[0])
	require.Equal(t, "田中 太郎", rows[1][0])
	require.Equal(t, "2024/04/01 01:30", rows[1][5])
	require.Equal(t, "A", rows[1][6])
	require.Equal(t, "78", rows[1][7])
	require.Equal(t, "はい", rows[1][9])
	require.Equal(t, "佐藤 花子", rows[2][0])

	rankStyle, err := f.GetCellStyle(sheetName, "G2")
	require.Nil(t, err)
	dataStyle, err := f.GetCellStyle(sheetName, "G3")
	require.Nil(t, err)
	require.NotEqual(t, dataStyle, rankStyle)

	panes, err := f.GetPanes(sheetName)
	require.Nil(t, err)
	require.True(t, panes.Freeze)
	require.Equal(t, 1, panes.YSplit)
}
