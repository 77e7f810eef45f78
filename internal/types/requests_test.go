//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressUpdateRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request ProgressUpdateRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: ProgressUpdateRequest{
				UserID:    "7f1c2a0e-4b5d-4c6e-8f90-1a2b3c4d5e6f",
				RoleID:    "backend_developer",
				SkillName: "Docker",
				Status:    StatusInProgress,
			},
		},
		{
			name: "bad user id",
			request: ProgressUpdateRequest{
				UserID:    "user-1",
				RoleID:    "backend_developer",
				SkillName: "Docker",
				Status:    StatusCompleted,
			},
			wantErr: true,
			errMsg:  "uuid",
		},
		{
			name: "missing skill",
			request: ProgressUpdateRequest{
				UserID: "7f1c2a0e-4b5d-4c6e-8f90-1a2b3c4d5e6f",
				RoleID: "backend_developer",
				Status: StatusCompleted,
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "unknown status",
			request: ProgressUpdateRequest{
				UserID:    "7f1c2a0e-4b5d-4c6e-8f90-1a2b3c4d5e6f",
				RoleID:    "backend_developer",
				SkillName: "Docker",
				Status:    "started",
			},
			wantErr: true,
			errMsg:  "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLearningPlanRequest_Validation(t *testing.T) {
	valid := LearningPlanRequest{RoleID: "data_analyst", DurationDays: 60}
	assert.NoError(t, valid.Validate())

	bad := LearningPlanRequest{RoleID: "data_analyst", DurationDays: 45}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDuration))

	noRole := LearningPlanRequest{DurationDays: 30}
	assert.Error(t, noRole.Validate())
}

func TestSkillStatus_Valid(t *testing.T) {
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusMissing.Valid())
	assert.False(t, SkillStatus("").Valid())
	assert.False(t, SkillStatus("done").Valid())
}
