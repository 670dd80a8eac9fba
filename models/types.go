package models

import "time"

// Measuring position constants
const (
	PositionLying    = "lying"
	PositionStanding = "standing"
)

// DateLayout is the wire format of calendar dates such as birth_date.
const DateLayout = "2006-01-02"

// QuestionnaireVersion is the questionnaire layout accepted with a
// measurement. A missing version means this one.
const QuestionnaireVersion = 1

// Request types

type CreateVillageRequest struct {
	Name     string `json:"name"`
	District string `json:"district"`
}

// Nil fields are left unchanged.
type UpdateVillageRequest struct {
	Name     *string `json:"name,omitempty"`
	District *string `json:"district,omitempty"`
}

type CreatePoskoRequest struct {
	Name      string   `json:"name"`
	VillageID string   `json:"village_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Nil fields are left unchanged.
type UpdatePoskoRequest struct {
	Name      *string  `json:"name,omitempty"`
	VillageID *string  `json:"village_id,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type CreateBalitaRequest struct {
	ChildName  string  `json:"child_name"`
	ParentName string  `json:"parent_name"`
	BirthDate  string  `json:"birth_date"`
	Sex        string  `json:"sex"`
	VillageID  string  `json:"village_id"`
	PoskoID    *string `json:"posko_id,omitempty"`
}

type CreateMeasurementRequest struct {
	BalitaID            string     `json:"balita_id"`
	WeightKg            float64    `json:"weight_kg"`
	HeightCm            float64    `json:"height_cm"`
	HeadCircumferenceCm float64    `json:"head_circumference_cm"`
	ArmCircumferenceCm  float64    `json:"arm_circumference_cm"`
	Position            string     `json:"position"`
	Notes               *string    `json:"notes,omitempty"`
	MeasuredAt          *time.Time `json:"measured_at,omitempty"`

	Sanitation     *SanitationQuestionnaire     `json:"sanitation,omitempty"`
	MedicalHistory *MedicalHistoryQuestionnaire `json:"medical_history,omitempty"`
}

// CalculateRequest carries either AgeMonths or BirthDate. MeasuredAt
// defaults to now when BirthDate is used.
type CalculateRequest struct {
	Sex                 string     `json:"sex"`
	AgeMonths           *float64   `json:"age_months,omitempty"`
	BirthDate           string     `json:"birth_date,omitempty"`
	MeasuredAt          *time.Time `json:"measured_at,omitempty"`
	WeightKg            float64    `json:"weight_kg"`
	HeightCm            float64    `json:"height_cm"`
	HeadCircumferenceCm float64    `json:"head_circumference_cm"`
	ArmCircumferenceCm  float64    `json:"arm_circumference_cm"`
}

// Response types

// metric -> value, e.g. "height_for_age" -> -3.2
type CalculateResponse struct {
	AgeMonths   float64            `json:"age_months"`
	ZScores     map[string]float64 `json:"z_scores"`
	Labels      map[string]string  `json:"labels"`
	Status      string             `json:"status"`
	Unavailable []string           `json:"unavailable,omitempty"`
}

type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type VillageListResponse struct {
	Data []Village `json:"data"`
	Meta PageMeta  `json:"meta"`
}

type PoskoListResponse struct {
	Data []Posko `json:"data"`
	Meta PageMeta `json:"meta"`
}

type PoskoMapResponse struct {
	Data []PoskoMapEntry `json:"data"`
}

type BalitaListResponse struct {
	Data []Balita `json:"data"`
	Meta PageMeta `json:"meta"`
}

type MeasurementListResponse struct {
	Data []Measurement `json:"data"`
	Meta PageMeta      `json:"meta"`
}

type StatisticsResponse struct {
	TotalMeasurements int            `json:"total_measurements"`
	ChildrenChecked   int            `json:"children_checked"`
	ByStatus          map[string]int `json:"by_status"`
	Recent            []Measurement  `json:"recent"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Domain types

type Village struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	CreatedAt time.Time `json:"created_at"`
}

type Posko struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VillageID string    `json:"village_id"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PoskoMapEntry is a geolocated posko with its village and head count
type PoskoMapEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	VillageName string  `json:"village_name"`
	District    string  `json:"district"`
	BalitaCount int     `json:"balita_count"`
}

// AgeMonths is the age today, not at registration.
type Balita struct {
	ID         string    `json:"id"`
	ChildName  string    `json:"child_name"`
	ParentName string    `json:"parent_name"`
	BirthDate  string    `json:"birth_date"`
	AgeMonths  int       `json:"age_months"`
	Sex        string    `json:"sex"`
	VillageID  string    `json:"village_id"`
	PoskoID    *string   `json:"posko_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Measurement struct {
	ID                  string             `json:"id"`
	BalitaID            string             `json:"balita_id"`
	WeightKg            float64            `json:"weight_kg"`
	HeightCm            float64            `json:"height_cm"`
	HeadCircumferenceCm float64            `json:"head_circumference_cm"`
	ArmCircumferenceCm  float64            `json:"arm_circumference_cm"`
	Position            string             `json:"position"`
	AgeMonths           int                `json:"age_months"`
	ZScores             map[string]float64 `json:"z_scores"`
	Labels              map[string]string  `json:"labels"`
	Status              string             `json:"status"`
	Notes               *string            `json:"notes,omitempty"`
	MeasuredAt          time.Time          `json:"measured_at"`
	CreatedAt           time.Time          `json:"created_at"`

	Sanitation     *SanitationQuestionnaire     `json:"sanitation,omitempty"`
	MedicalHistory *MedicalHistoryQuestionnaire `json:"medical_history,omitempty"`
}

// Questionnaires recorded with a measurement. Unanswered questions are nil.

type SanitationQuestionnaire struct {
	Version int               `json:"version"`
	Answers SanitationAnswers `json:"answers"`
}

type SanitationAnswers struct {
	ComplementaryFeeding *bool `json:"mpasi,omitempty"`
	GoodVentilation      *bool `json:"ventilasi,omitempty"`
	CleanWater           *bool `json:"air_bersih,omitempty"`
	HealthyLatrine       *bool `json:"jamban,omitempty"`
	CoveredWaste         *bool `json:"sampah,omitempty"`
	SmokeFree            *bool `json:"asap_rokok,omitempty"`
}

type MedicalHistoryQuestionnaire struct {
	Version int                   `json:"version"`
	Answers MedicalHistoryAnswers `json:"answers"`
}

// GeneralHealth and Appetite are rated 1 to 10.
type MedicalHistoryAnswers struct {
	Fever         *bool   `json:"demam,omitempty"`
	Diarrhea      *bool   `json:"diare,omitempty"`
	Cough         *bool   `json:"batuk,omitempty"`
	SkinProblem   *bool   `json:"masalah_kulit,omitempty"`
	GeneralHealth *int    `json:"general_health,omitempty"`
	Appetite      *int    `json:"nafsu_makan,omitempty"`
	OtherIllness  *string `json:"riwayat_penyakit_lain,omitempty"`
}
