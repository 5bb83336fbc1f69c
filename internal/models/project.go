package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for project dates.
const DateLayout = "2006-01-02"

// ProjectInfo is the metadata of the one project a budget describes.
type ProjectInfo struct {
	Name      string `yaml:"name" json:"name"`
	Owner     string `yaml:"owner" json:"owner"`
	StartDate string `yaml:"start_date" json:"startDate"`
	EndDate   string `yaml:"end_date" json:"endDate"`
	Location  string `yaml:"location" json:"location"`
}

// DefaultProjectInfo returns the project a fresh budget starts with: a summer
// party running from today for one week.
func DefaultProjectInfo(now time.Time) ProjectInfo {
	return ProjectInfo{
		Name:      fmt.Sprintf("Sommerfest %d", now.Year()),
		StartDate: now.Format(DateLayout),
		EndDate:   now.AddDate(0, 0, 7).Format(DateLayout),
	}
}

// ProjectField names one ProjectInfo attribute.
type ProjectField string

const (
	ProjectName      ProjectField = "name"
	ProjectOwner     ProjectField = "owner"
	ProjectStartDate ProjectField = "startDate"
	ProjectEndDate   ProjectField = "endDate"
	ProjectLocation  ProjectField = "location"
)

// ParseProjectField converts a raw field name into a ProjectField.
func ParseProjectField(s string) (ProjectField, error) {
	switch s {
	case "name":
		return ProjectName, nil
	case "owner":
		return ProjectOwner, nil
	case "startDate", "start_date", "start":
		return ProjectStartDate, nil
	case "endDate", "end_date", "end":
		return ProjectEndDate, nil
	case "location":
		return ProjectLocation, nil
	default:
		return "", fmt.Errorf("unknown project field %q", s)
	}
}

// With returns a copy of p with one field replaced.
func (p ProjectInfo) With(field ProjectField, value string) ProjectInfo {
	switch field {
	case ProjectName:
		p.Name = value
	case ProjectOwner:
		p.Owner = value
	case ProjectStartDate:
		p.StartDate = value
	case ProjectEndDate:
		p.EndDate = value
	case ProjectLocation:
		p.Location = value
	}
	return p
}
