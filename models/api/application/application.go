package applicationapimodels

import (
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	aiapimodels "recruit-backend/models/api/ai"
	dbmodels "recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CreateApplication struct {
	JobID    string            `json:"job_id"`
	FormData map[string]string `json:"form_data"` // ответы формы отклика
}

func (r CreateApplication) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return errors.New("求人IDは必須です")
	}
	if len(r.FormData) == 0 {
		return errors.New("応募フォームの内容は必須です")
	}
	return nil
}

type ApplicantFilter struct {
	apimodels.Pagination
	JobID  string                   `json:"job_id" query:"job_id"`
	Status models.ApplicationStatus `json:"status" query:"status"`
	Rank   models.AIRank            `json:"rank" query:"rank"`
	Search string                   `json:"search" query:"search"` // по имени или почте соискателя
}

func (r ApplicantFilter) Validate() error {
	if err := r.Pagination.Validate(); err != nil {
		return err
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("ステータスが不正です")
	}
	if r.Rank != "" && !r.Rank.IsValid() {
		return errors.New("ランクが不正です")
	}
	return nil
}

func (r ApplicantFilter) ToDbFilter() dbmodels.ApplicationFilter {
	page, limit := r.GetPage()
	return dbmodels.ApplicationFilter{
		JobID:  r.JobID,
		Status: r.Status,
		Rank:   r.Rank,
		Search: strings.TrimSpace(r.Search),
		Page:   page,
		Limit:  limit,
	}
}

type UpdateStatus struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r UpdateStatus) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("ステータスが不正です")
	}
	return nil
}

type ApplicationView struct {
	ID            string                      `json:"id"`
	JobID         string                      `json:"job_id"`
	JobTitle      string                      `json:"job_title"`
	JobSeekerID   string                      `json:"job_seeker_id"`
	JobSeekerName string                      `json:"job_seeker_name"`
	Email         string                      `json:"email"`
	Phone         string                      `json:"phone"`
	Status        models.ApplicationStatus    `json:"status"`
	StatusName    string                      `json:"status_name"`
	FormData      map[string]string           `json:"form_data,omitempty"`
	AppliedAt     time.Time                   `json:"applied_at"`
	Evaluation    *aiapimodels.EvaluationView `json:"evaluation"`
}

func ApplicationConvert(rec dbmodels.Application, withFormData bool) ApplicationView {
	result := ApplicationView{
		ID:          rec.ID,
		JobID:       rec.JobID,
		JobSeekerID: rec.JobSeekerID,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		AppliedAt:   rec.AppliedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	if rec.JobSeeker != nil {
		result.JobSeekerName = rec.JobSeeker.Name
		result.Email = rec.JobSeeker.Email
		result.Phone = rec.JobSeeker.Phone
	}
	if withFormData {
		result.FormData = rec.FormData
	}
	if rec.Evaluation != nil {
		evaluation := aiapimodels.EvaluationConvert(*rec.Evaluation)
		result.Evaluation = &evaluation
	}
	return result
}

// MyApplicationView отклик в кабинете соискателя
type MyApplicationView struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	JobTitle    string                   `json:"job_title"`
	CompanyName string                   `json:"company_name"`
	Status      models.ApplicationStatus `json:"status"`
	StatusName  string                   `json:"status_name"`
	AppliedAt   time.Time                `json:"applied_at"`
	Rank        *models.AIRank           `json:"rank"`
	Score       *int                     `json:"score"`
}

func MyApplicationConvert(rec dbmodels.Application) MyApplicationView {
	result := MyApplicationView{
		ID:         rec.ID,
		JobID:      rec.JobID,
		Status:     rec.Status,
		StatusName: rec.Status.ToHuman(),
		AppliedAt:  rec.AppliedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
		if rec.Job.Tenant != nil {
			result.CompanyName = rec.Job.Tenant.Name
		}
	}
	if rec.Evaluation != nil {
		rank, score := rec.Evaluation.Rank, rec.Evaluation.Score
		result.Rank = &rank
		result.Score = &score
	}
	return result
}

type DashboardStats struct {
	MonthlyCount   int64 `json:"monthly_count"`   // отклики с начала месяца
	NewCount       int64 `json:"new_count"`       // необработанные
	InterviewCount int64 `json:"interview_count"` // назначено собеседование
	OfferedCount   int64 `json:"offered_count"`
}

type MonthCount struct {
	Month string `json:"month"` // "4月"
	Count int64  `json:"count"`
}

type RankCount struct {
	Rank  models.AIRank `json:"rank"`
	Name  string        `json:"name"`
	Value int64         `json:"value"`
}

type RecentApplicant struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Job   string         `json:"job"`
	Rank  *models.AIRank `json:"rank"`
	Score *int           `json:"score"`
	Date  string         `json:"date"` // 2006-01-02
}

type DashboardView struct {
	Stats            DashboardStats    `json:"stats"`
	Trend            []MonthCount      `json:"trend"` // последние 6 месяцев, текущий последним
	RankDistribution []RankCount       `json:"rank_distribution"`
	RecentApplicants []RecentApplicant `json:"recent_applicants"`
}
