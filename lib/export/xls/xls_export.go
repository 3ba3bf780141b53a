package xlsexport

import (
	"bytes"
	"time"

	applicationapimodels "recruit-backend/models/api/application"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicantList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(location *time.Location) {
	Instance = impl{location: location}
}

type impl struct {
	location *time.Location
}

const sheetName = "応募者一覧"

var applicantHeaders = []string{"氏名", "メールアドレス", "電話番号", "求人", "ステータス", "応募日", "AIランク", "AIスコア", "AIコメント", "簡易評価"}

const rankColumn = 7

func (i impl) ExportApplicantList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	sheet = sheetName
	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания стилей xlsx")
	}
	if err = writeHeader(f, sheet, styles, applicantHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = i.writeApplicantData(f, sheet, styles, list); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	return f.WriteToBuffer()
}

func (i impl) writeApplicantData(f *excelize.File, sheet string, styles *sheetStyles, list []applicationapimodels.ApplicationView) error {
	if err := setRangeStyle(f, sheet, 1, 2, len(applicantHeaders), len(list)+1, styles.data); err != nil {
		return err
	}
	for idx, item := range list {
		row := idx + 2
		values := []interface{}{
			item.JobSeekerName,
			item.Email,
			item.Phone,
			item.JobTitle,
			item.StatusName,
			i.formatDate(item.AppliedAt),
		}
		if item.Evaluation == nil {
			values = append(values, "", "", "", "")
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			continue
		}
		fallbackMark := ""
		if item.Evaluation.IsFallback {
			fallbackMark = "はい"
		}
		values = append(values,
			string(item.Evaluation.Rank),
			item.Evaluation.Score,
			item.Evaluation.AiComment,
			fallbackMark,
		)
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		if style, ok := styles.rank[item.Evaluation.Rank]; ok {
			if err := setRangeStyle(f, sheet, rankColumn, row, rankColumn, row, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func (i impl) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if i.location != nil {
		t = t.In(i.location)
	}
	return t.Format("2006/01/02 15:04")
}
