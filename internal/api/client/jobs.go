package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// ListJobs returns each scheduled job's latest run and, for the sweep, its
// next run and whether it is running now.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobStatus, error) {
	var jobs []domain.JobStatus
	if err := c.get(ctx, "/api/v1/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobHistory returns the run history for a scheduled job. A limit of 0
// uses the server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
