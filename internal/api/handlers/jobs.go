package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tablewatch/internal/engine"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the sweep job's status and run history.
type JobsHandler struct {
	store JobsProvider
	sweep SweepStatus
}

// NewJobsHandler creates a JobsHandler. sweep may be nil; the sweep job is
// then listed without a next run.
func NewJobsHandler(s JobsProvider, sweep SweepStatus) *JobsHandler {
	return &JobsHandler{store: s, sweep: sweep}
}

// ListJobsOutput lists every known job by name.
type ListJobsOutput struct {
	Body []domain.JobStatus
}

// GetJobHistoryInput selects a job and how many of its runs to return.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name (e.g. sweep)"`
	Limit   int    `query:"limit"   doc:"Number of runs (default 20)"     minimum:"0" maximum:"200"`
}

// GetJobHistoryOutput is a job's runs, newest first.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

const defaultJobHistoryLimit = 20

// ListJobs returns one status per job. The sweep job is always present, even
// before its first run, so a fresh deployment shows when it will start.
func (h *JobsHandler) ListJobs(
	ctx context.Context,
	_ *struct{},
) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}

	byName := map[string]*domain.JobStatus{
		engine.JobSweep: {Name: engine.JobSweep},
	}
	for i := range runs {
		st, ok := byName[runs[i].JobName]
		if !ok {
			st = &domain.JobStatus{Name: runs[i].JobName}
			byName[st.Name] = st
		}
		st.LastRun = &runs[i]
	}

	if h.sweep != nil {
		sweep := byName[engine.JobSweep]
		if next := h.sweep.NextSweep(); !next.IsZero() {
			sweep.NextRunAt = &next
		}
		sweep.Running = h.sweep.SweepInProgress()
	}

	out := make([]domain.JobStatus, 0, len(byName))
	for _, st := range byName {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return &ListJobsOutput{Body: out}, nil
}

// GetJobHistory returns the run history for one job.
func (h *JobsHandler) GetJobHistory(
	ctx context.Context,
	input *GetJobHistoryInput,
) (*GetJobHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultJobHistoryLimit
	}

	runs, err := h.store.ListJobRuns(ctx, input.JobName, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}
	if runs == nil {
		runs = []domain.JobRun{}
	}

	return &GetJobHistoryOutput{Body: runs}, nil
}

// RegisterJobRoutes registers the job status and history operations.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List scheduled jobs",
		Description: "Returns each job's latest run, the next scheduled sweep and whether it is running.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Get job run history",
		Description: "Returns the runs recorded for one job, newest first.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)
}
