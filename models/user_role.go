package models

type UserRole string

const (
	SystemAdminRole UserRole = "SYSTEM_ADMIN"
	TenantAdminRole UserRole = "TENANT_ADMIN"
	TenantUserRole  UserRole = "TENANT_USER"
	JobSeekerRole   UserRole = "JOB_SEEKER"
)

var roleHumanName = map[UserRole]string{
	SystemAdminRole: "システム管理者",
	TenantAdminRole: "テナント管理者",
	TenantUserRole:  "採用担当者",
	JobSeekerRole:   "求職者",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

func (r UserRole) IsSystemAdmin() bool {
	return r == SystemAdminRole
}

// IsStaff - сотрудник компании (или админ платформы), но не соискатель
func (r UserRole) IsStaff() bool {
	return r == SystemAdminRole || r == TenantAdminRole || r == TenantUserRole
}

func (r UserRole) IsTenantAdmin() bool {
	return r == TenantAdminRole || r == SystemAdminRole
}

const SystemUser = "採用担当"
