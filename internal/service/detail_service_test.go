package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
)

func seedDetailData(t *testing.T, repo *repository.Repository) {
	t.Helper()
	ctx := context.Background()

	seedProfile(t, repo, "stu-1", "张同学", model.RoleStudent)
	seedProfile(t, repo, "prof-1", "王教授", model.RoleProfessor)

	for _, status := range []string{model.QueryStatusPending, model.QueryStatusResolved} {
		if err := repo.Query.Create(ctx, &model.Query{
			StudentID: "stu-1", ProfessorID: "prof-1",
			Subject: "s", Question: "q", Status: status,
		}); err != nil {
			t.Fatalf("seed 提问失败: %v", err)
		}
	}
	if err := repo.Appointment.Create(ctx, &model.Appointment{
		StudentID: "stu-1", ProfessorID: "prof-1",
		AppointmentDate: "2026-08-31", StartTime: "10:00:00", EndTime: "11:00:00",
		Status: model.AppointmentStatusPending,
	}); err != nil {
		t.Fatalf("seed 预约失败: %v", err)
	}
}

func TestDetailView_Kinds(t *testing.T) {
	repo := newMockRepository()
	svc := NewDetailService(repo, zap.NewNop())
	seedDetailData(t, repo)

	tests := []struct {
		kind      dto.DetailKind
		title     string
		wantCount int
	}{
		{dto.DetailStudents, "All Students", 1},
		{dto.DetailProfessors, "All Professors", 1},
		{dto.DetailQueries, "All Queries", 2},
		{dto.DetailResolvedQueries, "Resolved Queries", 1},
		{dto.DetailPendingQueries, "Pending Queries", 1},
		{dto.DetailAppointments, "All Appointments", 1},
	}

	for _, tt := range tests {
		result, err := svc.View(context.Background(), tt.kind)
		if err != nil {
			t.Fatalf("View(%s) 应成功: %v", tt.kind, err)
		}
		if result.Title != tt.title {
			t.Errorf("View(%s) 标题期望 %q，实际=%q", tt.kind, tt.title, result.Title)
		}
		got := len(result.Profiles) + len(result.Queries) + len(result.Appointments)
		if got != tt.wantCount {
			t.Errorf("View(%s) 期望 %d 条，实际=%d", tt.kind, tt.wantCount, got)
		}
	}
}

func TestDetailView_UnknownKind(t *testing.T) {
	svc := NewDetailService(newMockRepository(), zap.NewNop())

	if _, err := svc.View(context.Background(), dto.DetailKind("everything")); !errors.Is(err, ErrUnknownDetailKind) {
		t.Errorf("期望 ErrUnknownDetailKind，实际: %v", err)
	}
}

func TestParseDetailKind(t *testing.T) {
	if _, ok := dto.ParseDetailKind("resolved-queries"); !ok {
		t.Error("resolved-queries 应为合法视图种类")
	}
	if _, ok := dto.ParseDetailKind("bogus"); ok {
		t.Error("bogus 不应通过解析")
	}
}
