package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type applicationUsecase struct {
	appRepo    domain.ApplicationRepository
	jobRepo    domain.JobRepository
	maxActive  int
	maxSOPWord int
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, maxActiveApplications int) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		maxActive:  maxActiveApplications,
		maxSOPWord: 250,
	}
}

// Apply runs the submission precondition chain in a fixed order; the
// first failing check decides the response.
func (u *applicationUsecase) Apply(ctx context.Context, applicantID, jobID, sop string) error {
	if len(strings.Fields(sop)) > u.maxSOPWord {
		return apperror.BadRequest("Statement of purpose cannot exceed 250 words")
	}

	dup, err := u.appRepo.HasNonTerminal(ctx, applicantID, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if dup {
		return apperror.BusinessRule("You have already applied for this job")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job does not exist")
		}
		return apperror.Internal(err)
	}

	activeForJob, err := u.appRepo.CountActiveForJob(ctx, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if activeForJob >= job.MaxApplicants {
		return apperror.BusinessRule("Application limit reached")
	}

	ownActive, err := u.appRepo.CountActiveForApplicant(ctx, applicantID)
	if err != nil {
		return apperror.Internal(err)
	}
	if ownActive >= u.maxActive {
		return apperror.BusinessRule(fmt.Sprintf("You have %d active applications. Hence you cannot apply.", u.maxActive))
	}

	accepted, err := u.appRepo.CountAcceptedForApplicant(ctx, applicantID)
	if err != nil {
		return apperror.Internal(err)
	}
	if accepted > 0 {
		return apperror.BusinessRule("You already have an accepted job. Hence you cannot apply.")
	}

	app := &domain.Application{
		JobID:             jobID,
		ApplicantID:       applicantID,
		RecruiterID:       job.RecruiterID,
		Status:            domain.StatusApplied,
		SOP:               sop,
		DateOfApplication: time.Now(),
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// UpdateStatus moves an application through the workflow. Every request
// is checked against the transition table; accepting delegates to the
// repository's transactional accept path.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, principal domain.Principal, applicationID string, upd *domain.StatusUpdate) (string, error) {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Application not found")
		}
		return "", apperror.Internal(err)
	}

	switch principal.Role {
	case domain.RoleRecruiter:
		if app.RecruiterID != principal.UserID {
			return "", apperror.NotFound("Application not found")
		}
	case domain.RoleApplicant:
		if app.ApplicantID != principal.UserID {
			return "", apperror.NotFound("Application not found")
		}
	default:
		return "", apperror.Forbidden("You don't have permissions to update job status")
	}

	if !domain.CanTransition(app.Status, upd.Status, principal.Role) {
		if domain.IsTerminal(app.Status) {
			return "", apperror.BusinessRule(fmt.Sprintf("Application is already %s", app.Status))
		}
		return "", apperror.BusinessRule(fmt.Sprintf("Cannot move application from %s to %s", app.Status, upd.Status))
	}

	if upd.Status == domain.StatusAccepted {
		joining := time.Now()
		if upd.DateOfJoining != nil {
			joining = *upd.DateOfJoining
		}
		if err := u.appRepo.Accept(ctx, app, joining); err != nil {
			if errors.Is(err, domain.ErrPositionsFilled) {
				return "", apperror.BusinessRule("All positions for this job are already filled")
			}
			if errors.Is(err, domain.ErrStatusConflict) {
				return "", apperror.BusinessRule("Application status has changed. Please try again.")
			}
			return "", apperror.Internal(err)
		}
		return "Application accepted successfully", nil
	}

	if err := u.appRepo.UpdateStatus(ctx, applicationID, upd.Status); err != nil {
		return "", apperror.Internal(err)
	}
	if upd.Status == domain.StatusFinished {
		return "Job finished successfully", nil
	}
	return fmt.Sprintf("Application %s successfully", upd.Status), nil
}

func (u *applicationUsecase) ListOwn(ctx context.Context, principal domain.Principal) ([]domain.Application, error) {
	var (
		apps []domain.Application
		err  error
	)
	switch principal.Role {
	case domain.RoleApplicant:
		apps, err = u.appRepo.ListForApplicant(ctx, principal.UserID)
	case domain.RoleRecruiter:
		apps, err = u.appRepo.ListForRecruiter(ctx, principal.UserID)
	default:
		return nil, apperror.Forbidden("Unknown role")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, recruiterID, jobID, status string) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job does not exist")
		}
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperror.NotFound("Job does not exist")
	}
	apps, err := u.appRepo.ListForJob(ctx, jobID, recruiterID, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListApplicants(ctx context.Context, recruiterID string, filter *domain.ApplicantListFilter) ([]domain.Application, error) {
	for _, key := range filter.Sort {
		if !domain.ValidApplicantSortField(key.Field) {
			return nil, apperror.BadRequest("Unsupported sort key: " + key.Field)
		}
	}
	apps, err := u.appRepo.ListApplicants(ctx, recruiterID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(apps) == 0 {
		return nil, apperror.NotFound("No applicants found")
	}
	return apps, nil
}

var exportColumns = []string{"NAME", "JOB TITLE", "STATUS", "SOP", "DATE OF APPLICATION", "DATE OF JOINING", "RATING"}

func exportRow(app *domain.Application) []string {
	name := ""
	rating := ""
	if app.Applicant != nil {
		name = app.Applicant.Name
		if app.Applicant.Rating != domain.RatingUnset {
			rating = strconv.FormatFloat(app.Applicant.Rating, 'f', 2, 64)
		}
	}
	jobTitle := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
	}
	joining := ""
	if app.DateOfJoining != nil {
		joining = app.DateOfJoining.Format("2006-01-02")
	}
	return []string{
		name,
		jobTitle,
		app.Status,
		app.SOP,
		app.DateOfApplication.Format("2006-01-02"),
		joining,
		rating,
	}
}

// ExportApplicants renders the applicant listing as a downloadable file.
// The column set is fixed; format selects xlsx (default) or csv.
func (u *applicationUsecase) ExportApplicants(ctx context.Context, recruiterID string, filter *domain.ApplicantListFilter, format string) ([]byte, string, error) {
	apps, err := u.ListApplicants(ctx, recruiterID, filter)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "csv":
		return exportCSV(apps)
	case "xlsx", "":
		return exportExcel(apps)
	default:
		return nil, "", apperror.BadRequest("Unsupported export format: " + format)
	}
}

func exportExcel(apps []domain.Application) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Applicants"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx := range apps {
		row := exportRow(&apps[rowIdx])
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}

	filename := fmt.Sprintf("applicants_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportCSV(apps []domain.Application) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, "", apperror.Internal(err)
	}
	for i := range apps {
		if err := w.Write(exportRow(&apps[i])); err != nil {
			return nil, "", apperror.Internal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("applicants_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
