// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// ScoreTask is the predicate function for scoretask builders.
type ScoreTask func(*sql.Selector)
