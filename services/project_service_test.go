package services

import (
	"errors"
	"testing"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
)

func TestCreateProjectBillingInvariant(t *testing.T) {
	setupTestDB(t)
	service := NewProjectService()

	cases := []struct {
		name    string
		req     dto.CreateProjectRequest
		wantErr bool
	}{
		{
			name: "tm with rate",
			req:  dto.CreateProjectRequest{Name: "A", BillingType: "tm", TMBillRate: floatPtr(95)},
		},
		{
			name:    "tm without rate",
			req:     dto.CreateProjectRequest{Name: "B", BillingType: "tm"},
			wantErr: true,
		},
		{
			name:    "tm with zero rate",
			req:     dto.CreateProjectRequest{Name: "C", BillingType: "tm", TMBillRate: floatPtr(0)},
			wantErr: true,
		},
		{
			name: "fixed without rate",
			req:  dto.CreateProjectRequest{Name: "D", BillingType: "fixed", ContractAmount: 50000},
		},
		{
			name:    "fixed with rate",
			req:     dto.CreateProjectRequest{Name: "E", BillingType: "sov", TMBillRate: floatPtr(95)},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateProject(tc.req)
			if tc.wantErr {
				if !errors.Is(err, models.ErrValidation) {
					t.Fatalf("err = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateProjectPreservesPinFields(t *testing.T) {
	setupTestDB(t)
	service := NewProjectService()

	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	if _, err := NewGcAccessService().IssuePin(project.ID); err != nil {
		t.Fatalf("issue pin: %v", err)
	}

	updated, err := service.UpdateProject(project.ID, dto.UpdateProjectRequest{
		Name:        "Station 4 Sprinkler Retrofit Phase 2",
		BillingType: "tm",
		TMBillRate:  floatPtr(105),
	})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if updated.Name != "Station 4 Sprinkler Retrofit Phase 2" {
		t.Errorf("name not updated: %q", updated.Name)
	}

	var stored models.Project
	if err := database.DB.First(&stored, "id = ?", project.ID).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if stored.GcPin == nil || stored.GcPinUsed {
		t.Fatal("CRUD update must not clear or consume the outstanding PIN")
	}
}

func TestBillingRateNullForNonTM(t *testing.T) {
	setupTestDB(t)
	service := NewProjectService()

	project := createTestProject(t, models.BillingTypeFixed, nil, 50000)

	rate, err := service.BillingRate(project.ID)
	if err != nil {
		t.Fatalf("billing rate: %v", err)
	}
	if rate.TMBillRate != nil {
		t.Fatalf("rate = %v, want nil for fixed-price project", *rate.TMBillRate)
	}
	if rate.BillingType != "fixed" {
		t.Fatalf("billing type = %q, want fixed", rate.BillingType)
	}
}
