package hos

// Severity grades how serious a violation is.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityMajor    Severity = "Major"
	SeverityMinor    Severity = "Minor"
)

// Category names one of the fixed violation kinds. The values double as
// display names in reports and exported workbooks, so they are spelled the
// way compliance reviewers expect to read them.
type Category string

const (
	CategoryOdometerJump        Category = "Odometer Jump"
	CategoryLocationChange      Category = "Location Change Without Driving"
	CategoryStationaryDriving   Category = "Stationary While Driving"
	CategoryDrivingHours        Category = "Driving Hours Exceeded"
	CategoryOdometerMismatch    Category = "Odometer Mismatch at Date Change"
	CategoryUnidentifiedDriving Category = "Unidentified Driving Event"
	CategoryAnnotations         Category = "Notes/Remarks Present"
)

var allCategories = []Category{
	CategoryOdometerJump,
	CategoryLocationChange,
	CategoryStationaryDriving,
	CategoryDrivingHours,
	CategoryOdometerMismatch,
	CategoryUnidentifiedDriving,
	CategoryAnnotations,
}

// Categories returns every violation category in canonical report order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Details carries the category-specific evidence behind a violation. Only
// the fields relevant to the owning category are populated; numeric fields
// are pointers so a genuine zero survives serialization.
type Details struct {
	CurrentOdometer   *float64 `json:"current_odometer,omitempty"`
	PreviousOdometer  *float64 `json:"previous_odometer,omitempty"`
	OdometerDelta     *float64 `json:"odometer_delta,omitempty"`
	CurrentLocation   string   `json:"current_location,omitempty"`
	PreviousLocation  string   `json:"previous_location,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	Status            string   `json:"status,omitempty"`
	TotalDrivingHours *float64 `json:"total_driving_hours,omitempty"`
	AllowedHours      *float64 `json:"allowed_hours,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// Violation is one detected anomaly. Violations are immutable once created
// and are never merged or deduplicated.
type Violation struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Driver      string   `json:"driver,omitempty"`
	Date        string   `json:"date,omitempty"`
	Time        string   `json:"time,omitempty"`
	Description string   `json:"description"`
	Details     Details  `json:"details"`
}
