// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/quakescope/internal/models"
)

func intPtr(v int) *int { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{"valid create", &models.CreateTimelineRequest{ObjectID: "64f0c1a2b3c4d5e6f7a8b9c0"}, "", ""},
		{"missing object id", &models.CreateTimelineRequest{}, "object_id", "required"},
		{"object id with slash", &models.CreateTimelineRequest{ObjectID: "../etc"}, "object_id", "objectid"},
		{"negative speed", &models.CreateTimelineRequest{ObjectID: "abc", Speed: -1}, "speed", "gte"},
		{"valid seek zero", &models.SeekRequest{Position: intPtr(0)}, "", ""},
		{"missing position", &models.SeekRequest{}, "position", "required"},
		{"negative position", &models.SeekRequest{Position: intPtr(-3)}, "position", "min"},
		{"valid speed", &models.SpeedRequest{Multiplier: 5}, "", ""},
		{"zero speed", &models.SpeedRequest{}, "multiplier", "required"},
		{"negative multiplier", &models.SpeedRequest{Multiplier: -2}, "multiplier", "gt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected error on %s", tt.wantField)
			}
			fe := verr.Errors()[0]
			if fe.Field != tt.wantField || fe.Tag != tt.wantTag {
				t.Errorf("got field=%s tag=%s, want field=%s tag=%s", fe.Field, fe.Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.SeekRequest{Position: intPtr(-1)})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "position must be at least 0" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "position" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_Multiple(t *testing.T) {
	t.Parallel()

	type pair struct {
		A string `json:"a" validate:"required"`
		B int    `json:"b" validate:"max=3"`
	}
	verr := ValidateStruct(&pair{B: 9})
	if verr == nil || len(verr.Errors()) != 2 {
		t.Fatalf("expected two errors, got %v", verr)
	}
	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "a is required") || !strings.Contains(apiErr.Message, "b must be at most 3") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("expected fields detail, got %v", apiErr.Details)
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	if err := ValidateVar("64f0c1", "objectid"); err != nil {
		t.Errorf("ValidateVar valid id: %v", err)
	}
	if err := ValidateVar("has space", "objectid"); err == nil {
		t.Error("ValidateVar should reject spaces")
	}
}
