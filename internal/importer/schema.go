package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanFile is the top-level structure of a strategic plan import. YAML is
// the primary format; JSON files parse too since JSON is valid YAML.
type PlanFile struct {
	Vision  string        `yaml:"vision,omitempty"`
	Mission string        `yaml:"mission,omitempty"`
	Values  []ValueImport `yaml:"values,omitempty"`
	Users   []UserImport  `yaml:"users,omitempty"`
	Goals   []GoalImport  `yaml:"goals"`
}

type ValueImport struct {
	Description string `yaml:"description"`
	Meaning     string `yaml:"meaning,omitempty"`
}

// UserImport declares a user that action plans in the same file can name
// by Ref.
type UserImport struct {
	Ref   string `yaml:"ref"`
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
	Role  string `yaml:"role,omitempty"`
}

type GoalImport struct {
	Description string            `yaml:"description"`
	Objectives  []ObjectiveImport `yaml:"objectives,omitempty"`
}

type ObjectiveImport struct {
	Description string             `yaml:"description"`
	StartDate   string             `yaml:"start_date"`
	EndDate     string             `yaml:"end_date"`
	Progress    int                `yaml:"progress,omitempty"`
	ActionPlans []ActionPlanImport `yaml:"action_plans,omitempty"`
}

type ActionPlanImport struct {
	Description string `yaml:"description"`
	// Responsible is a user ref from this file or the ID of an existing user.
	Responsible string          `yaml:"responsible"`
	HowTo       string          `yaml:"how_to"`
	StartDate   string          `yaml:"start_date"`
	EndDate     string          `yaml:"end_date"`
	CheckIns    []CheckInImport `yaml:"check_ins,omitempty"`
}

type CheckInImport struct {
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Progress    int    `yaml:"progress,omitempty"`
}

// LoadPlanFile reads and parses a plan import file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanFile(data)
}

func ParsePlanFile(data []byte) (*PlanFile, error) {
	var pf PlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &pf, nil
}
