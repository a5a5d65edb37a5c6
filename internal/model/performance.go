package model

// PerformanceRecord aggregates one employee's performance data from
// performance.json.
type PerformanceRecord struct {
	EmployeeName   string              `json:"employee_name"`
	CurrentRating  float64             `json:"current_rating"`
	LastReviewDate string              `json:"last_review_date"`
	NextReviewDate string              `json:"next_review_date"`
	Reviews        []PerformanceReview `json:"reviews"`
	Goals          []Goal              `json:"goals"`
	KPIs           map[string]int      `json:"kpis"`
	RecentFeedback []Feedback          `json:"recent_feedback"`
}

// PerformanceReview is one review cycle, stored newest-first.
type PerformanceReview struct {
	Period              string   `json:"period"`
	Rating              float64  `json:"rating"`
	Summary             string   `json:"summary"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// Goal is one objective with a 0-100 progress value.
type Goal struct {
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// Feedback is a peer or manager note.
type Feedback struct {
	From    string `json:"from"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}
