// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeBytes, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "result_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_jobs_bill_results_jobs",
				Columns:    []*schema.Column{AnalysisJobsColumns[8]},
				RefColumns: []*schema.Column{BillResultsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "analysis_jobs_users_jobs",
				Columns:    []*schema.Column{AnalysisJobsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// BillResultsColumns holds the columns for the "bill_results" table.
	BillResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "total_consumption", Type: field.TypeFloat64},
		{Name: "carbon_kg", Type: field.TypeFloat64},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "energy_usage", Type: field.TypeJSON},
		{Name: "savings_tip", Type: field.TypeString},
		{Name: "bill_id", Type: field.TypeString, Nullable: true},
		{Name: "bill_date", Type: field.TypeString, Nullable: true},
		{Name: "analysis_date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// BillResultsTable holds the schema information for the "bill_results" table.
	BillResultsTable = &schema.Table{
		Name:       "bill_results",
		Columns:    BillResultsColumns,
		PrimaryKey: []*schema.Column{BillResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bill_results_users_results",
				Columns:    []*schema.Column{BillResultsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "billresult_user_id_analysis_date",
				Unique:  false,
				Columns: []*schema.Column{BillResultsColumns[10], BillResultsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "badges", Type: field.TypeJSON},
		{Name: "bills_analyzed_count", Type: field.TypeInt, Default: 0},
		{Name: "total_consumption_reduced", Type: field.TypeFloat64, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobsTable,
		BillResultsTable,
		UsersTable,
	}
)

func init() {
	AnalysisJobsTable.ForeignKeys[0].RefTable = BillResultsTable
	AnalysisJobsTable.ForeignKeys[1].RefTable = UsersTable
	AnalysisJobsTable.Annotation = &entsql.Annotation{
		Table: "analysis_jobs",
	}
	BillResultsTable.ForeignKeys[0].RefTable = UsersTable
	BillResultsTable.Annotation = &entsql.Annotation{
		Table: "bill_results",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
