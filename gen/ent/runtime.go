// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/RichieRish05/ProRankAI/db/ent/schema"
	"github.com/RichieRish05/ProRankAI/gen/ent/job"
	"github.com/RichieRish05/ProRankAI/gen/ent/scoretask"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescSourceRef is the schema descriptor for source_ref field.
	jobDescSourceRef := jobFields[2].Descriptor()
	// job.SourceRefValidator is a validator for the "source_ref" field. It is called by the builders before save.
	job.SourceRefValidator = jobDescSourceRef.Validators[0].(func(string) error)
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[3].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[5].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	scoretaskFields := schema.ScoreTask{}.Fields()
	_ = scoretaskFields
	// scoretaskDescDocRef is the schema descriptor for doc_ref field.
	scoretaskDescDocRef := scoretaskFields[2].Descriptor()
	// scoretask.DocRefValidator is a validator for the "doc_ref" field. It is called by the builders before save.
	scoretask.DocRefValidator = scoretaskDescDocRef.Validators[0].(func(string) error)
	// scoretaskDescDocName is the schema descriptor for doc_name field.
	scoretaskDescDocName := scoretaskFields[3].Descriptor()
	// scoretask.DefaultDocName holds the default value on creation for the doc_name field.
	scoretask.DefaultDocName = scoretaskDescDocName.Default.(string)
	// scoretaskDescSchoolYear is the schema descriptor for school_year field.
	scoretaskDescSchoolYear := scoretaskFields[9].Descriptor()
	// scoretask.SchoolYearValidator is a validator for the "school_year" field. It is called by the builders before save.
	scoretask.SchoolYearValidator = scoretaskDescSchoolYear.Validators[0].(func(string) error)
	// scoretaskDescScore is the schema descriptor for score field.
	scoretaskDescScore := scoretaskFields[11].Descriptor()
	// scoretask.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	scoretask.ScoreValidator = func() func(int) error {
		validators := scoretaskDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scoretaskDescCreatedAt is the schema descriptor for created_at field.
	scoretaskDescCreatedAt := scoretaskFields[16].Descriptor()
	// scoretask.DefaultCreatedAt holds the default value on creation for the created_at field.
	scoretask.DefaultCreatedAt = scoretaskDescCreatedAt.Default.(func() time.Time)
	// scoretaskDescID is the schema descriptor for id field.
	scoretaskDescID := scoretaskFields[0].Descriptor()
	// scoretask.DefaultID holds the default value on creation for the id field.
	scoretask.DefaultID = scoretaskDescID.Default.(func() uuid.UUID)
}
