package model

// QuizAttempt 存储每一次答题记录，答错后可重试，全部保留
type QuizAttempt struct {
	LogRow
	SessionID  string `gorm:"type:varchar(64);not null;index;index:ix_attempt_session_module,priority:1" json:"sessionId"`
	ModuleKey  string `gorm:"column:module_slug;type:varchar(100);not null;index;index:ix_attempt_session_module,priority:2" json:"moduleSlug"`
	QuestionID string `gorm:"type:varchar(100);not null" json:"questionId"`
	Selected   string `gorm:"type:varchar(10);not null" json:"selected"`
	Correct    bool   `gorm:"not null;default:false" json:"correct"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
