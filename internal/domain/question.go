package domain

// Question is a quiz item. Nullable columns are pointers so that absent
// request fields are stored as NULL rather than zero values.
type Question struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   *string   `gorm:"column:question;size:255" json:"question"`
	Answer     *string   `gorm:"column:answer;type:text" json:"answer"`
	Difficulty *int      `gorm:"column:difficulty" json:"difficulty"`
	CategoryID *uint     `gorm:"column:category_id;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Question) TableName() string { return "questions" }

// QuestionWithCategory is a question row joined with its owning category's
// type. CategoryType is nil for questions without a category.
type QuestionWithCategory struct {
	ID           uint    `gorm:"column:id" json:"id"`
	Question     *string `gorm:"column:question" json:"question"`
	Answer       *string `gorm:"column:answer" json:"answer"`
	Difficulty   *int    `gorm:"column:difficulty" json:"difficulty"`
	CategoryID   *uint   `gorm:"column:category_id" json:"category_id"`
	CategoryType *string `gorm:"column:category_type" json:"category_type"`
}

// Format is the full public projection of a question.
func (q *Question) Format(categoryType *string) map[string]any {
	return map[string]any{
		"id":         q.ID,
		"question":   q.Question,
		"answer":     q.Answer,
		"category":   categoryType,
		"difficulty": q.Difficulty,
	}
}
