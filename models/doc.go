// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - UpdateApplicationRequest: every field optional; nil means "no change"

# Response Types

  - CreateApplicationResponse: application_id
  - ApplicationListResponse: applications (id, current page, submitted flag)
  - ApplicationStatusResponse: current_page, application_submitted,
    patient_age, patient_gender, therapist_minority_competence

Error bodies are errs.HTTPError.

# Domain Types

  - Application: one intake form with its competence responses
  - ApplicationSummary: the columns shown in the list view

# Pages

The front-end walks the form in this order:

	PagePatientAge → PagePatientGender → PageTherapistMinorityCompetence → PageReview

New applications start on DefaultPage (PagePatientAge). The server
stores current_page verbatim and does not enforce the order.
*/
package models
