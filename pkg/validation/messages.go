package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the labels used in error messages.
var fieldLabels = map[string]string{
	"UserID":            "user id",
	"Bio":               "bio",
	"GithubURL":         "GitHub URL",
	"LinkedinURL":       "LinkedIn URL",
	"PortfolioURL":      "portfolio URL",
	"Name":              "team name",
	"HackathonID":       "hackathon",
	"MaxMembers":        "max members",
	"Title":             "title",
	"MinTeamSize":       "min team size",
	"MaxTeamSize":       "max team size",
	"TeamID":            "team",
	"PreferredTeamSize": "preferred team size",
}

func fieldLabel(fe validator.FieldError) string {
	if label, ok := fieldLabels[fe.StructField()]; ok {
		return label
	}
	return fe.StructField()
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "skill_name":
		return fmt.Sprintf("%s contains an invalid entry", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
