package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// SearchRecentJobsParams is the argument schema for the search_recent_jobs
// function. It must stay in sync with the function definition configured on
// the assistant.
type SearchRecentJobsParams struct {
	Titles         []string `json:"titles" jsonschema:"required,description=Target job titles or keywords"`
	Locations      []string `json:"locations,omitempty" jsonschema:"description=Preferred locations"`
	DatePostedFrom string   `json:"date_posted_from,omitempty" jsonschema:"description=Only include jobs posted on or after this ISO date (YYYY-MM-DD)"`
	MaxResults     int      `json:"max_results,omitempty" jsonschema:"description=Maximum number of jobs to return (default 50)"`
	Seniority      string   `json:"seniority,omitempty" jsonschema:"description=Seniority filter such as junior or senior"`
	MinSalary      float64  `json:"min_salary,omitempty" jsonschema:"description=Minimum yearly salary"`
	MaxSalary      float64  `json:"max_salary,omitempty" jsonschema:"description=Maximum yearly salary"`
	WorkType       string   `json:"work_type,omitempty" jsonschema:"description=Work arrangement: remote, hybrid, onsite or any"`
	Industries     []string `json:"industries,omitempty" jsonschema:"description=Target industries"`
}

// JobResult is one entry in a job search response. The field casing follows
// the report format the assistant is prompted to produce.
type JobResult struct {
	JobTitle           string `json:"Job_Title"`
	Company            string `json:"Company"`
	Location           string `json:"Location"`
	SalaryRange        string `json:"Salary_Range"`
	WorkType           string `json:"Work_Type"`
	JobURL             string `json:"Job_URL"`
	DescriptionSummary string `json:"Description_Summary"`
	MatchScore         int    `json:"Match_Score"`
	Priority           string `json:"Priority"`
	Percentage         int    `json:"Percentage"`
}

// RegisterDefaults installs the built-in handlers on r.
func RegisterDefaults(r *Registry) {
	r.Register(Definition{
		Name:        "search_recent_jobs",
		Description: "Search recent job postings matching the given titles and filters.",
		Parameters:  GenerateSchema(SearchRecentJobsParams{}),
	}, SearchRecentJobs)
}

// SearchRecentJobs handles the search_recent_jobs function.
//
// TODO: integrate with a real job search provider. Until then this returns a
// placeholder result set so the assistant's report flow can be exercised end
// to end.
func SearchRecentJobs(ctx context.Context, args map[string]any) (any, error) {
	params, err := decodeParams(args)
	if err != nil {
		return nil, fmt.Errorf("decode search_recent_jobs arguments: %w", err)
	}
	if params.MaxResults == 0 {
		params.MaxResults = 50
	}
	if params.WorkType == "" {
		params.WorkType = "any"
	}

	if len(params.Titles) == 0 {
		slog.ErrorContext(ctx, "missing required argument 'titles'")
		return map[string]any{
			"error":    "Missing required argument: 'titles'",
			"function": "search_recent_jobs",
		}, nil
	}

	slog.WarnContext(ctx, "job search provider not integrated, returning placeholder results",
		"titles", params.Titles, "work_type", params.WorkType)

	location := "Remote"
	if len(params.Locations) > 0 {
		location = params.Locations[0]
	}

	salaryRange := "Not specified"
	if params.MinSalary > 0 || params.MaxSalary > 0 {
		minSalary := params.MinSalary
		if minSalary == 0 {
			minSalary = 50000
		}
		maxSalary := params.MaxSalary
		if maxSalary == 0 {
			maxSalary = 150000
		}
		salaryRange = fmt.Sprintf("$%.0f-$%.0f", minSalary, maxSalary)
	}

	jobs := []JobResult{
		{
			JobTitle:           fmt.Sprintf("Placeholder Job for %s", params.Titles[0]),
			Company:            "Example Company",
			Location:           location,
			SalaryRange:        salaryRange,
			WorkType:           params.WorkType,
			JobURL:             "https://example.com/job/1",
			DescriptionSummary: "This is a placeholder job result. Integrate with your job search API.",
			MatchScore:         85,
			Priority:           "High",
			Percentage:         85,
		},
	}

	return map[string]any{
		"jobs":          jobs,
		"total_results": len(jobs),
		"filters_applied": map[string]any{
			"titles":           params.Titles,
			"locations":        params.Locations,
			"date_posted_from": params.DatePostedFrom,
			"work_type":        params.WorkType,
			"industries":       params.Industries,
		},
		"note": "This is a placeholder response. Please integrate with your actual job search service.",
	}, nil
}

func decodeParams(args map[string]any) (SearchRecentJobsParams, error) {
	var params SearchRecentJobsParams
	data, err := json.Marshal(args)
	if err != nil {
		return params, err
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return params, err
	}
	return params, nil
}
