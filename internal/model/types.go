package model

// Unit systems accepted in the profile's unit_system field. Canonical
// storage is always metric; imperial applies only at display and input
// boundaries.
const (
	UnitMetric   = "METRIC"
	UnitImperial = "IMPERIAL"
)

// Theme preference values mirrored between the profile and the local store.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// DoseWindows lists the four dose window names in day order.
var DoseWindows = []string{"morning", "afternoon", "evening", "bedtime"}

type Profile struct {
	UserID         int64    `json:"user_id"`
	Name           string   `json:"name"`
	UnitSystem     string   `json:"unit_system"`
	WeightKg       float64  `json:"weight_kg"`
	HeightCm       float64  `json:"height_cm"`
	GoalWeightKg   *float64 `json:"goal_weight_kg,omitempty"`
	BirthYear      *int     `json:"birth_year,omitempty"`
	DateOfBirth    string   `json:"date_of_birth,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	CalorieGoal    *int     `json:"calorie_goal,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
	Theme          string   `json:"theme,omitempty"`
	IsAdmin        bool     `json:"is_admin"`
	MorningStart   string   `json:"morning_start,omitempty"`
	AfternoonStart string   `json:"afternoon_start,omitempty"`
	EveningStart   string   `json:"evening_start,omitempty"`
	BedtimeStart   string   `json:"bedtime_start,omitempty"`
}

type ProfileUpdate struct {
	WeightKg       *float64 `json:"weight_kg,omitempty"`
	HeightCm       *float64 `json:"height_cm,omitempty"`
	UnitSystem     *string  `json:"unit_system,omitempty"`
	BirthYear      *int     `json:"birth_year,omitempty"`
	DateOfBirth    *string  `json:"date_of_birth,omitempty"`
	Gender         *string  `json:"gender,omitempty"`
	GoalWeightKg   *float64 `json:"goal_weight_kg,omitempty"`
	CalorieGoal    *int     `json:"calorie_goal,omitempty"`
	Timezone       *string  `json:"timezone,omitempty"`
	Theme          *string  `json:"theme,omitempty"`
	MorningStart   *string  `json:"morning_start,omitempty"`
	AfternoonStart *string  `json:"afternoon_start,omitempty"`
	EveningStart   *string  `json:"evening_start,omitempty"`
	BedtimeStart   *string  `json:"bedtime_start,omitempty"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type Medication struct {
	MedID            int64  `json:"med_id,omitempty"`
	Name             string `json:"name"`
	Frequency        string `json:"frequency"`
	Type             string `json:"type"`
	CurrentInventory int    `json:"current_inventory"`
	RefillsRemaining int    `json:"refills_remaining"`
	RefillQty        int    `json:"refill_qty,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	Morning          bool   `json:"morning"`
	Afternoon        bool   `json:"afternoon"`
	Evening          bool   `json:"evening"`
	Bedtime          bool   `json:"bedtime"`
}

type DoseLog struct {
	LogID   int64  `json:"log_id,omitempty"`
	MedID   int64  `json:"med_id"`
	MedName string `json:"med_name,omitempty"`
	Window  string `json:"window"`
	TakenAt string `json:"taken_at,omitempty"`
}

type BloodPressure struct {
	BPID            int64  `json:"bp_id,omitempty"`
	Systolic        int    `json:"systolic"`
	Diastolic       int    `json:"diastolic"`
	Pulse           int    `json:"pulse"`
	Location        string `json:"location"`
	StressLevel     int    `json:"stress_level"`
	MedsTakenBefore string `json:"meds_taken_before"`
	Timestamp       string `json:"timestamp,omitempty"`
}

type ExerciseLog struct {
	ExerciseID      int64   `json:"exercise_id,omitempty"`
	ActivityType    string  `json:"activity_type"`
	DurationMinutes float64 `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned,omitempty"`
	Timestamp       string  `json:"timestamp,omitempty"`
}

type FoodItem struct {
	FoodID   int64   `json:"food_id,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber,omitempty"`
	Source   string  `json:"source,omitempty"`
}

type FoodLogRequest struct {
	Barcode     string  `json:"barcode,omitempty"`
	FoodName    string  `json:"food_name,omitempty"`
	ServingSize float64 `json:"serving_size"`
	Quantity    float64 `json:"quantity"`
	MealID      string  `json:"meal_id"`
}

type FoodLogEntry struct {
	EntryID   int64   `json:"entry_id,omitempty"`
	FoodName  string  `json:"food_name"`
	MealID    string  `json:"meal_id"`
	Quantity  float64 `json:"quantity"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Carbs     float64 `json:"carbs"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// DailySummary is the server-computed aggregate for a single date. The
// client never merges summaries across dates; each fetch replaces the
// previous one wholesale.
type DailySummary struct {
	Date             string         `json:"date"`
	BloodPressure    *BloodPressure `json:"blood_pressure,omitempty"`
	CaloriesConsumed float64        `json:"calories_consumed"`
	CaloriesBurned   float64        `json:"calories_burned"`
	ProteinG         float64        `json:"protein_g"`
	FatG             float64        `json:"fat_g"`
	CarbsG           float64        `json:"carbs_g"`
	FiberG           float64        `json:"fiber_g"`
	Exercises        []ExerciseLog  `json:"exercises"`
	Foods            []FoodLogEntry `json:"foods"`
}

type Allergy struct {
	AllergyID int64  `json:"allergy_id,omitempty"`
	Allergen  string `json:"allergen"`
	Reaction  string `json:"reaction,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type Vaccination struct {
	VaccinationID    int64  `json:"vaccination_id,omitempty"`
	VaccineType      string `json:"vaccine_type"`
	DateAdministered string `json:"date_administered"`
	Notes            string `json:"notes,omitempty"`
}

type VaccinationStatus struct {
	VaccineType string `json:"vaccine_type"`
	LastDate    string `json:"last_date,omitempty"`
	Status      string `json:"status"`
	NextDue     string `json:"next_due,omitempty"`
}

type AdherenceReport struct {
	TotalDosesLogged int `json:"total_doses_logged"`
}

type ComplianceRow struct {
	MedName  string  `json:"med_name"`
	Expected int     `json:"expected"`
	Taken    int     `json:"taken"`
	Percent  float64 `json:"percent"`
}

type RefillRequest struct {
	Quantity int `json:"quantity"`
}

type BackupResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
}

type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

type VersionInfo struct {
	Version string `json:"version"`
}
