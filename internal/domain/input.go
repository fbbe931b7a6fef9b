package domain

import (
	"strings"
	"time"
)

// GoalInput carries the user-editable fields of a Goal.
type GoalInput struct {
	Description string `validate:"required"`
}

func (in *GoalInput) Normalize() {
	in.Description = strings.TrimSpace(in.Description)
}

// ObjectiveInput carries the user-editable fields of an Objective. The
// derived achieved percentage is deliberately absent.
type ObjectiveInput struct {
	Description string    `validate:"required"`
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time `validate:"required"`
	GoalID      string    `validate:"required"`
	Progress    int
}

func (in *ObjectiveInput) Normalize() {
	in.Description = strings.TrimSpace(in.Description)
	in.GoalID = strings.TrimSpace(in.GoalID)
	in.Progress = ClampPercent(in.Progress)
}

// ActionPlanInput carries the user-editable fields of an Action Plan.
// Progress and check-ins are owned by the cascade.
type ActionPlanInput struct {
	Description   string    `validate:"required"`
	ResponsibleID string    `validate:"required"`
	HowTo         string    `validate:"required"`
	StartDate     time.Time `validate:"required"`
	EndDate       time.Time `validate:"required"`
	ObjectiveID   string    `validate:"required"`
}

func (in *ActionPlanInput) Normalize() {
	in.Description = strings.TrimSpace(in.Description)
	in.ResponsibleID = strings.TrimSpace(in.ResponsibleID)
	in.HowTo = strings.TrimSpace(in.HowTo)
	in.ObjectiveID = strings.TrimSpace(in.ObjectiveID)
}

// CheckInInput is one progress snapshot submitted against an action plan.
type CheckInInput struct {
	Date        time.Time `validate:"required"`
	Description string    `validate:"required"`
	Progress    int
}

func (in *CheckInInput) Normalize() {
	in.Description = strings.TrimSpace(in.Description)
	in.Progress = ClampPercent(in.Progress)
}

type ValueInput struct {
	Description string `validate:"required"`
	Meaning     string
}

func (in *ValueInput) Normalize() {
	in.Description = strings.TrimSpace(in.Description)
	in.Meaning = strings.TrimSpace(in.Meaning)
}

type UserInput struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Role  Role   `validate:"required,oneof=ADMIN MASTER USER"`
}

func (in *UserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = ParseRole(string(in.Role))
}
