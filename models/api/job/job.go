package jobapimodels

import (
	"encoding/json"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type JobData struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Requirements   json.RawMessage       `json:"requirements" swaggertype:"object"` // требования к кандидату, произвольный json
	EmploymentType models.EmploymentType `json:"employment_type"`
	Location       string                `json:"location"`
	SalaryMin      *int                  `json:"salary_min"`
	SalaryMax      *int                  `json:"salary_max"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("求人タイトルを入力してください")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("仕事内容を入力してください")
	}
	if !r.EmploymentType.IsValid() {
		return errors.New("雇用形態が不正です")
	}
	if len(r.Requirements) != 0 && !json.Valid(r.Requirements) {
		return errors.New("応募資格の形式が不正です")
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return errors.New("給与の下限が上限を超えています")
	}
	return nil
}

type JobFilter struct {
	apimodels.Pagination
	Keyword        string                `json:"keyword" query:"keyword"`
	EmploymentType models.EmploymentType `json:"employment_type" query:"employment_type"`
	Status         models.JobStatus      `json:"status" query:"status"`
}

func (r JobFilter) ToDbFilter() dbmodels.JobFilter {
	page, limit := r.GetPage()
	return dbmodels.JobFilter{
		Keyword:        strings.TrimSpace(r.Keyword),
		EmploymentType: r.EmploymentType,
		Status:         r.Status,
		Page:           page,
		Limit:          limit,
	}
}

type UpdateStatus struct {
	Status models.JobStatus `json:"status"`
}

func (r UpdateStatus) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("求人ステータスが不正です")
	}
	return nil
}

type JobView struct {
	ID                 string           `json:"id"`
	CompanyName        string           `json:"company_name,omitempty"`
	EmploymentTypeName string           `json:"employment_type_name"`
	Status             models.JobStatus `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
	JobData
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		ID:                 rec.ID,
		EmploymentTypeName: rec.EmploymentType.ToHuman(),
		Status:             rec.Status,
		CreatedAt:          rec.CreatedAt,
		JobData: JobData{
			Title:          rec.Title,
			Description:    rec.Description,
			Requirements:   json.RawMessage(rec.Requirements),
			EmploymentType: rec.EmploymentType,
			Location:       rec.Location,
			SalaryMin:      rec.SalaryMin,
			SalaryMax:      rec.SalaryMax,
		},
	}
	if rec.Tenant != nil {
		result.CompanyName = rec.Tenant.Name
	}
	return result
}
