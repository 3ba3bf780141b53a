package dbmodels

type Tenant struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"`
	Subdomain string `gorm:"type:varchar(100);uniqueIndex"`
	IsActive  bool   `gorm:"default:true"`
}

type JobSeeker struct {
	BaseModel
	Name  string `gorm:"type:varchar(255)"`
	Email string `gorm:"type:varchar(255);uniqueIndex"`
	Phone string `gorm:"type:varchar(50)"`
}
