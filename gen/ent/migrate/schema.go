// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "source_ref", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[5]},
			},
			{
				Name:    "job_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4]},
			},
		},
	}
	// ScoreTasksColumns holds the columns for the "score_tasks" table.
	ScoreTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_ref", Type: field.TypeString},
		{Name: "doc_name", Type: field.TypeString, Default: ""},
		{Name: "view_url", Type: field.TypeString, Nullable: true},
		{Name: "preview_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "downloaded", "scored", "failed"}, Default: "pending"},
		{Name: "text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "gpa", Type: field.TypeFloat64, Nullable: true},
		{Name: "school_year", Type: field.TypeString, Nullable: true},
		{Name: "num_internships", Type: field.TypeInt, Nullable: true},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "gpa_contribution", Type: field.TypeInt, Nullable: true},
		{Name: "experience_contribution", Type: field.TypeInt, Nullable: true},
		{Name: "impact_quality_contribution", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ScoreTasksTable holds the schema information for the "score_tasks" table.
	ScoreTasksTable = &schema.Table{
		Name:       "score_tasks",
		Columns:    ScoreTasksColumns,
		PrimaryKey: []*schema.Column{ScoreTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "score_tasks_jobs_tasks",
				Columns:    []*schema.Column{ScoreTasksColumns[16]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scoretask_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScoreTasksColumns[16], ScoreTasksColumns[5]},
			},
			{
				Name:    "scoretask_job_id_school_year",
				Unique:  false,
				Columns: []*schema.Column{ScoreTasksColumns[16], ScoreTasksColumns[8]},
			},
			{
				Name:    "scoretask_job_id_score",
				Unique:  false,
				Columns: []*schema.Column{ScoreTasksColumns[16], ScoreTasksColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		ScoreTasksTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	ScoreTasksTable.ForeignKeys[0].RefTable = JobsTable
	ScoreTasksTable.Annotation = &entsql.Annotation{
		Table: "score_tasks",
	}
}
