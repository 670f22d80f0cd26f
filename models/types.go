// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Form pages, in the order the front-end walks through them.
const (
	PagePatientAge                  = "patient_age"
	PagePatientGender               = "patient_gender"
	PageTherapistMinorityCompetence = "therapist_minority_competence"
	PageReview                      = "review"
)

// DefaultPage is the page a freshly created application starts on.
const DefaultPage = PagePatientAge

// Request types

// UpdateApplicationRequest is a partial update: nil fields are left
// untouched. A non-nil TherapistMinorityCompetenceResponses replaces the
// whole set, so an empty list clears it.
type UpdateApplicationRequest struct {
	CurrentPage                          *string   `json:"current_page,omitempty"`
	ApplicationSubmitted                 *bool     `json:"application_submitted,omitempty"`
	PatientAge                           *string   `json:"patient_age,omitempty"`
	PatientGender                        *string   `json:"patient_gender,omitempty"`
	TherapistMinorityCompetenceResponses *[]string `json:"therapist_minority_competence_responses,omitempty"`
}

// Empty reports whether the update would change nothing.
func (r UpdateApplicationRequest) Empty() bool {
	return r.CurrentPage == nil &&
		r.ApplicationSubmitted == nil &&
		r.PatientAge == nil &&
		r.PatientGender == nil &&
		r.TherapistMinorityCompetenceResponses == nil
}

// Response types

type CreateApplicationResponse struct {
	ApplicationID int64 `json:"application_id"`
}

type ApplicationListResponse struct {
	Applications []ApplicationSummary `json:"applications"`
}

type ApplicationStatusResponse struct {
	CurrentPage                 string   `json:"current_page"`
	ApplicationSubmitted        bool     `json:"application_submitted"`
	PatientAge                  *string  `json:"patient_age"`
	PatientGender               *string  `json:"patient_gender"`
	TherapistMinorityCompetence []string `json:"therapist_minority_competence"`
}

// Domain types

// ApplicationSummary is one row of the list endpoint.
type ApplicationSummary struct {
	ApplicationID        int64  `json:"application_id"`
	CurrentPage          string `json:"current_page"`
	ApplicationSubmitted bool   `json:"application_submitted"`
}

// Application is the full record with its competence responses.
type Application struct {
	ID                          int64
	CurrentPage                 string
	ApplicationSubmitted        bool
	PatientAge                  *string
	PatientGender               *string
	TherapistMinorityCompetence []string
}

// StatusResponse shapes the record for GET /api/application/{id}.
func (a Application) StatusResponse() ApplicationStatusResponse {
	responses := a.TherapistMinorityCompetence
	if responses == nil {
		responses = []string{}
	}
	return ApplicationStatusResponse{
		CurrentPage:                 a.CurrentPage,
		ApplicationSubmitted:        a.ApplicationSubmitted,
		PatientAge:                  a.PatientAge,
		PatientGender:               a.PatientGender,
		TherapistMinorityCompetence: responses,
	}
}
