package applicationstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	GetByTenantAndID(tenantID, id string) (*dbmodels.Application, error)
	ExistByJobSeeker(jobID, jobSeekerID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	List(tenantID string, filter dbmodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error)
	// ListPendingEvaluation отклики в статусе NEW без оценки, созданные раньше before
	ListPendingEvaluation(before time.Time, limit int) ([]dbmodels.Application, error)
	ListByJobSeeker(jobSeekerID string) ([]dbmodels.Application, error)
	Count(tenantID string, filter dbmodels.ApplicationCountFilter) (int64, error)
	ListRecent(tenantID string, limit int) ([]dbmodels.Application, error)
	CountByRank(tenantID string) (map[models.AIRank]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Omit("Job", "JobSeeker", "Evaluation").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Preload("Job").
		Preload("Job.Tenant").
		Preload("JobSeeker").
		Preload("Evaluation").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByTenantAndID(tenantID, id string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Preload("Job").
		Preload("JobSeeker").
		Preload("Evaluation").
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByJobSeeker(jobID, jobSeekerID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Where("job_seeker_id = ?", jobSeekerID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	return i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Error
}

func (i impl) List(tenantID string, filter dbmodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("applications.tenant_id = ?", tenantID)
	tx = i.addFilter(tx, filter)
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	err = tx.
		Preload("Job").
		Preload("JobSeeker").
		Preload("Evaluation").
		Order("applications.applied_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) *gorm.DB {
	if filter.JobID != "" {
		tx = tx.Where("applications.job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx = tx.Where("applications.status = ?", filter.Status)
	}
	if filter.Rank != "" {
		tx = tx.Where("exists (select 1 from ai_evaluations e where e.application_id = applications.id and e.rank = ?)", filter.Rank)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("exists (select 1 from job_seekers s where s.id = applications.job_seeker_id and (lower(s.name) like ? or lower(s.email) like ?))", search, search)
	}
	return tx
}

func (i impl) ListPendingEvaluation(before time.Time, limit int) (list []dbmodels.Application, err error) {
	err = i.db.
		Where("status = ?", models.ApplicationStatusNew).
		Where("created_at < ?", before).
		Where("not exists (select 1 from ai_evaluations e where e.application_id = applications.id)").
		Order("created_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJobSeeker(jobSeekerID string) (list []dbmodels.Application, err error) {
	err = i.db.
		Preload("Job").
		Preload("Job.Tenant").
		Preload("Evaluation").
		Where("job_seeker_id = ?", jobSeekerID).
		Order("applied_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(tenantID string, filter dbmodels.ApplicationCountFilter) (rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Scopes(dbmodels.TenantScope(tenantID))
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if !filter.AppliedFrom.IsZero() {
		tx = tx.Where("applied_at >= ?", filter.AppliedFrom)
	}
	if !filter.AppliedTo.IsZero() {
		tx = tx.Where("applied_at < ?", filter.AppliedTo)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) ListRecent(tenantID string, limit int) (list []dbmodels.Application, err error) {
	err = i.db.
		Preload("Job").
		Preload("JobSeeker").
		Preload("Evaluation").
		Scopes(dbmodels.TenantScope(tenantID)).
		Order("applied_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

type rankCount struct {
	Rank  models.AIRank
	Total int64
}

func (i impl) CountByRank(tenantID string) (map[models.AIRank]int64, error) {
	var rows []rankCount
	err := i.db.
		Model(&dbmodels.AiEvaluation{}).
		Select("ai_evaluations.rank as rank, count(*) as total").
		Joins("join applications a on a.id = ai_evaluations.application_id").
		Where("a.tenant_id = ?", tenantID).
		Group("ai_evaluations.rank").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.AIRank]int64, len(rows))
	for _, row := range rows {
		result[row.Rank] = row.Total
	}
	return result, nil
}
