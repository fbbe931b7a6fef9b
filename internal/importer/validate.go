package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
)

const dateLayout = "2006-01-02"

// Validate checks pf before conversion and returns every problem found.
// knownUsers holds the IDs of users that already exist in the company.
func Validate(pf *PlanFile, knownUsers map[string]bool) []error {
	var errs []error

	for i, v := range pf.Values {
		if blank(v.Description) {
			errs = append(errs, fmt.Errorf("values[%d].description is required", i))
		}
	}

	userRefs := make(map[string]bool)
	for i, u := range pf.Users {
		prefix := fmt.Sprintf("users[%d]", i)
		if blank(u.Ref) {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if userRefs[u.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, u.Ref))
		} else {
			userRefs[u.Ref] = true
		}
		if blank(u.Name) {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if u.Role != "" && !domain.ValidRoles[domain.Role(strings.ToUpper(u.Role))] {
			errs = append(errs, fmt.Errorf("%s.role: invalid value %q", prefix, u.Role))
		}
	}

	for gi, g := range pf.Goals {
		prefix := fmt.Sprintf("goals[%d]", gi)
		if blank(g.Description) {
			errs = append(errs, fmt.Errorf("%s.description is required", prefix))
		}
		for oi, o := range g.Objectives {
			errs = append(errs, validateObjective(fmt.Sprintf("%s.objectives[%d]", prefix, oi), o, userRefs, knownUsers)...)
		}
	}

	return errs
}

func validateObjective(prefix string, o ObjectiveImport, userRefs, knownUsers map[string]bool) []error {
	var errs []error
	if blank(o.Description) {
		errs = append(errs, fmt.Errorf("%s.description is required", prefix))
	}
	errs = append(errs, validateRange(prefix, o.StartDate, o.EndDate)...)

	for pi, p := range o.ActionPlans {
		pp := fmt.Sprintf("%s.action_plans[%d]", prefix, pi)
		if blank(p.Description) {
			errs = append(errs, fmt.Errorf("%s.description is required", pp))
		}
		if blank(p.HowTo) {
			errs = append(errs, fmt.Errorf("%s.how_to is required", pp))
		}
		if blank(p.Responsible) {
			errs = append(errs, fmt.Errorf("%s.responsible is required", pp))
		} else if !userRefs[p.Responsible] && !knownUsers[p.Responsible] {
			errs = append(errs, fmt.Errorf("%s.responsible: %q is neither a user ref in this file nor an existing user", pp, p.Responsible))
		}
		errs = append(errs, validateRange(pp, p.StartDate, p.EndDate)...)

		for ci, c := range p.CheckIns {
			cp := fmt.Sprintf("%s.check_ins[%d]", pp, ci)
			if blank(c.Description) {
				errs = append(errs, fmt.Errorf("%s.description is required", cp))
			}
			errs = append(errs, validateRequiredDate(cp+".date", c.Date)...)
		}
	}
	return errs
}

func validateRange(prefix, start, end string) []error {
	errs := validateRequiredDate(prefix+".start_date", start)
	errs = append(errs, validateRequiredDate(prefix+".end_date", end)...)
	if len(errs) > 0 {
		return errs
	}
	s, _ := time.Parse(dateLayout, start)
	e, _ := time.Parse(dateLayout, end)
	if e.Before(s) {
		errs = append(errs, fmt.Errorf("%s.end_date %q must not be before start_date %q", prefix, end, start))
	}
	return errs
}

func validateRequiredDate(field, value string) []error {
	if value == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
