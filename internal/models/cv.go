package models

import (
	"time"

	"github.com/hebrew-cv/cv-api/internal/utils"
)

// Skill proficiency levels (closed enumeration, Hebrew labels)
const (
	SkillBeginner     = "מתחיל"
	SkillIntermediate = "בינוני"
	SkillAdvanced     = "מתקדם"
	SkillExpert       = "מומחה"
)

// Language proficiency levels (closed enumeration, Hebrew labels)
const (
	LanguageBasic        = "בסיסי"
	LanguageIntermediate = "בינוני"
	LanguageAdvanced     = "מתקדם"
	LanguageNative       = "שפת אם"
	LanguageBilingual    = "דו לשוני"
)

// PersonalInfo is the singleton personal details block of a CV
type PersonalInfo struct {
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address" json:"address"`
	LinkedIn string `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
	Summary  string `bson:"summary" json:"summary"`
}

// Experience is a single work experience entry
type Experience struct {
	ID          string `bson:"id" json:"id"`
	JobTitle    string `bson:"jobTitle" json:"jobTitle"`
	Company     string `bson:"company" json:"company"`
	Location    string `bson:"location" json:"location"`
	StartDate   string `bson:"startDate" json:"startDate"`
	EndDate     string `bson:"endDate" json:"endDate"`
	Current     bool   `bson:"current" json:"current"`
	Description string `bson:"description" json:"description"`
}

// Education is a single education entry
type Education struct {
	ID          string `bson:"id" json:"id"`
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Location    string `bson:"location" json:"location"`
	StartDate   string `bson:"startDate" json:"startDate"`
	EndDate     string `bson:"endDate" json:"endDate"`
	Current     bool   `bson:"current" json:"current"`
	GPA         string `bson:"gpa,omitempty" json:"gpa,omitempty"`
	Description string `bson:"description" json:"description"`
}

// Skill is a (name, proficiency) pair
type Skill struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Level string `bson:"level" json:"level"`
}

// Language is a (name, proficiency) pair
type Language struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Level string `bson:"level" json:"level"`
}

// MilitaryService is a single military service entry
type MilitaryService struct {
	ID          string `bson:"id" json:"id"`
	Unit        string `bson:"unit" json:"unit"`
	Position    string `bson:"position" json:"position"`
	StartDate   string `bson:"startDate" json:"startDate"`
	EndDate     string `bson:"endDate" json:"endDate"`
	Current     bool   `bson:"current" json:"current"`
	Description string `bson:"description" json:"description"`
	Rank        string `bson:"rank,omitempty" json:"rank,omitempty"`
}

// NationalService is a single national (civil) service entry
type NationalService struct {
	ID           string `bson:"id" json:"id"`
	Organization string `bson:"organization" json:"organization"`
	Position     string `bson:"position" json:"position"`
	StartDate    string `bson:"startDate" json:"startDate"`
	EndDate      string `bson:"endDate" json:"endDate"`
	Current      bool   `bson:"current" json:"current"`
	Description  string `bson:"description" json:"description"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`
}

// DrivingLicense is a single driving license entry
type DrivingLicense struct {
	ID        string `bson:"id" json:"id"`
	Category  string `bson:"category" json:"category"`
	IssueYear string `bson:"issueYear" json:"issueYear"`
}

// CustomSection is a free-form titled section
type CustomSection struct {
	ID      string `bson:"id" json:"id"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

// CVData is the root CV document aggregate
type CVData struct {
	ID              string            `bson:"id,omitempty" json:"id,omitempty"`
	PersonalInfo    PersonalInfo      `bson:"personalInfo" json:"personalInfo"`
	Experience      []Experience      `bson:"experience" json:"experience"`
	Education       []Education       `bson:"education" json:"education"`
	Skills          []Skill           `bson:"skills" json:"skills"`
	Languages       []Language        `bson:"languages" json:"languages"`
	MilitaryService []MilitaryService `bson:"militaryService" json:"militaryService"`
	NationalService []NationalService `bson:"nationalService" json:"nationalService"`
	DrivingLicenses []DrivingLicense  `bson:"drivingLicenses" json:"drivingLicenses"`
	CustomSections  []CustomSection   `bson:"customSections" json:"customSections"`
}

// CVRecord wraps a CV document with its template selection and timestamps
type CVRecord struct {
	ID         string    `bson:"_id" json:"cvId"`
	Data       CVData    `bson:"data" json:"data"`
	TemplateID string    `bson:"template_id" json:"templateId"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// CVSummary is the list projection of a stored CV
type CVSummary struct {
	CVID       string    `json:"cvId"`
	Title      string    `json:"title"`
	TemplateID string    `json:"templateId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
}

// untitledCV is the list title shown for documents without a full name
const untitledCV = "קורות חיים ללא שם"

// Title returns the display title for list views
func (d *CVData) Title() string {
	if d.PersonalInfo.FullName != "" {
		return d.PersonalInfo.FullName
	}
	return untitledCV
}

// Normalize fills absent repeated sections with empty sequences and assigns
// identifiers to entries that lack one. Renderers may assume a normalized
// document. Normalizing an already normalized document is a no-op.
func (d *CVData) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.MilitaryService == nil {
		d.MilitaryService = []MilitaryService{}
	}
	if d.NationalService == nil {
		d.NationalService = []NationalService{}
	}
	if d.DrivingLicenses == nil {
		d.DrivingLicenses = []DrivingLicense{}
	}
	if d.CustomSections == nil {
		d.CustomSections = []CustomSection{}
	}

	for i := range d.Experience {
		if d.Experience[i].ID == "" {
			d.Experience[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.Languages {
		if d.Languages[i].ID == "" {
			d.Languages[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.MilitaryService {
		if d.MilitaryService[i].ID == "" {
			d.MilitaryService[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.NationalService {
		if d.NationalService[i].ID == "" {
			d.NationalService[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.DrivingLicenses {
		if d.DrivingLicenses[i].ID == "" {
			d.DrivingLicenses[i].ID = utils.GenerateUUID()
		}
	}
	for i := range d.CustomSections {
		if d.CustomSections[i].ID == "" {
			d.CustomSections[i].ID = utils.GenerateUUID()
		}
	}
}

// Validate checks the personal-info cross-field rule: a full name requires an
// email and vice versa. Error messages are user-facing Hebrew strings.
func (d *CVData) Validate() *utils.ValidationResult {
	result := utils.NewValidationResult()

	fullName := utils.SanitizeString(d.PersonalInfo.FullName)
	email := utils.SanitizeString(d.PersonalInfo.Email)

	if fullName != "" && email == "" {
		result.AddError("personalInfo.email", "אימייל נדרש כאשר יש שם מלא")
	}
	if email != "" && fullName == "" {
		result.AddError("personalInfo.fullName", "שם מלא נדרש כאשר יש אימייל")
	}

	return result
}
