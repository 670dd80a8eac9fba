// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"

	"github.com/sigana-id/sigana-server/models"
)

// validateQuestionnaires fills in missing versions and returns an error
// message, or "" when both questionnaires are acceptable.
func validateQuestionnaires(sanitation *models.SanitationQuestionnaire, medical *models.MedicalHistoryQuestionnaire) string {
	if sanitation != nil {
		if sanitation.Version == 0 {
			sanitation.Version = models.QuestionnaireVersion
		}
		if sanitation.Version != models.QuestionnaireVersion {
			return "unsupported sanitation questionnaire version"
		}
	}

	if medical != nil {
		if medical.Version == 0 {
			medical.Version = models.QuestionnaireVersion
		}
		if medical.Version != models.QuestionnaireVersion {
			return "unsupported medical_history questionnaire version"
		}
		if !inRating(medical.Answers.GeneralHealth) {
			return "general_health must be between 1 and 10"
		}
		if !inRating(medical.Answers.Appetite) {
			return "nafsu_makan must be between 1 and 10"
		}
	}
	return ""
}

func inRating(v *int) bool {
	return v == nil || (*v >= 1 && *v <= 10)
}

// encodeQuestionnaire returns the stored JSON text, or nil for no answers.
func encodeQuestionnaire[T any](q *T) (*string, error) {
	if q == nil {
		return nil, nil
	}
	b, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func decodeQuestionnaire[T any](s *string) (*T, error) {
	if s == nil {
		return nil, nil
	}
	q := new(T)
	if err := json.Unmarshal([]byte(*s), q); err != nil {
		return nil, err
	}
	return q, nil
}
