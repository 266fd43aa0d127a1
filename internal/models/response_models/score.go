package response_models

type Grade string

const (
	GradeExcellent        Grade = "Excellent"
	GradeGood             Grade = "Good"
	GradeDecent           Grade = "Decent"
	GradeNeedsImprovement Grade = "Needs Improvement"
)

type ScoreResult struct {
	OverallScore    float64            `json:"overall_score"`
	Scores          map[string]float64 `json:"scores"`
	Grade           Grade              `json:"grade"`
	Recommendations []string           `json:"recommendations"`
}
