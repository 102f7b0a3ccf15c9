package models

import "time"

// Application statuses as shown in the lead consoles.
const (
	ApplicationPending   = "pending"
	ApplicationCompleted = "completed"
	ApplicationCancelled = "cancelled"
)

// Application is a prospective student's inquiry against one university.
type Application struct {
	ID             string    `db:"id" json:"id"`
	UniversityID   string    `db:"university_id" json:"university_id"`
	UniversityName string    `db:"university_name" json:"university_name"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	CourseInterest string    `db:"course_interest" json:"course_interest"`
	ShortNote      string    `db:"short_note" json:"short_note"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ApplicationInput is the public lead submission payload.
type ApplicationInput struct {
	UniversityID   string `json:"university_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	CourseInterest string `json:"course_interest"`
	ShortNote      string `json:"short_note"`
}

// AdminStats aggregates the counters shown on the admin dashboard.
type AdminStats struct {
	TotalUniversities   int `json:"total_universities"`
	TotalApplications   int `json:"total_applications"`
	TotalManagers       int `json:"total_managers"`
	PendingApplications int `json:"pending_applications"`
}
