package dbmodels

import "recruit-backend/models"

type Job struct {
	BaseTenantModel
	Tenant         *Tenant               `gorm:"foreignKey:TenantID"`
	Title          string                `gorm:"type:varchar(255)"`
	Description    string                `gorm:"type:text"`
	Requirements   RawJSON               `gorm:"type:jsonb"`
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
	Location       string                `gorm:"type:varchar(255)"`
	SalaryMin      *int
	SalaryMax      *int
	Status         models.JobStatus `gorm:"type:varchar(50);index;default:DRAFT"`
}

type JobFilter struct {
	Keyword        string
	EmploymentType models.EmploymentType
	Status         models.JobStatus
	Page           int
	Limit          int
}
