package models

type ApplicationStatus string

const (
	ApplicationStatusNew                ApplicationStatus = "NEW"
	ApplicationStatusScreening          ApplicationStatus = "SCREENING"
	ApplicationStatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationStatusInterviewed        ApplicationStatus = "INTERVIEWED"
	ApplicationStatusOffered            ApplicationStatus = "OFFERED"
	ApplicationStatusRejected           ApplicationStatus = "REJECTED"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusNew:                "新規",
	ApplicationStatusScreening:          "書類選考中",
	ApplicationStatusInterviewScheduled: "面接予定",
	ApplicationStatusInterviewed:        "面接済み",
	ApplicationStatusOffered:            "内定",
	ApplicationStatusRejected:           "不採用",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := applicationStatusHumanName[s]
	return ok
}

type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"
	JobStatusPublished JobStatus = "PUBLISHED"
	JobStatusClosed    JobStatus = "CLOSED"
)

func (s JobStatus) IsValid() bool {
	return s == JobStatusDraft || s == JobStatusPublished || s == JobStatusClosed
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentTemporary  EmploymentType = "TEMPORARY"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

var employmentTypeHumanName = map[EmploymentType]string{
	EmploymentFullTime:   "正社員",
	EmploymentPartTime:   "パート・アルバイト",
	EmploymentContract:   "契約社員",
	EmploymentTemporary:  "派遣社員",
	EmploymentInternship: "インターン",
}

func (e EmploymentType) ToHuman() string {
	if human, exist := employmentTypeHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e EmploymentType) IsValid() bool {
	_, ok := employmentTypeHumanName[e]
	return ok
}
