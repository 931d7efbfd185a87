// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devraj/learnpath/ent/feedbackevent"
	"github.com/devraj/learnpath/ent/predicate"
)

// FeedbackEventUpdate is the builder for updating FeedbackEvent entities.
type FeedbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdate) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *FeedbackEventUpdate) SetLearnerID(v string) *FeedbackEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableLearnerID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *FeedbackEventUpdate) SetTopic(v string) *FeedbackEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableTopic(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *FeedbackEventUpdate) SetKind(v string) *FeedbackEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableKind(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *FeedbackEventUpdate) SetScore(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableScore(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *FeedbackEventUpdate) AddScore(v float64) *FeedbackEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMasterySample sets the "mastery_sample" field.
func (_u *FeedbackEventUpdate) SetMasterySample(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetMasterySample()
	_u.mutation.SetMasterySample(v)
	return _u
}

// SetNillableMasterySample sets the "mastery_sample" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableMasterySample(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetMasterySample(*v)
	}
	return _u
}

// AddMasterySample adds value to the "mastery_sample" field.
func (_u *FeedbackEventUpdate) AddMasterySample(v float64) *FeedbackEventUpdate {
	_u.mutation.AddMasterySample(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *FeedbackEventUpdate) SetMasteryAfter(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableMasteryAfter(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *FeedbackEventUpdate) AddMasteryAfter(v float64) *FeedbackEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackEventUpdate) SetSessionID(v string) *FeedbackEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableSessionID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *FeedbackEventUpdate) ClearSessionID() *FeedbackEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdate) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := feedbackevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := feedbackevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(feedbackevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(feedbackevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(feedbackevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(feedbackevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(feedbackevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasterySample(); ok {
		_spec.SetField(feedbackevent.FieldMasterySample, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasterySample(); ok {
		_spec.AddField(feedbackevent.FieldMasterySample, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(feedbackevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEventUpdateOne is the builder for updating a single FeedbackEvent entity.
type FeedbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *FeedbackEventUpdateOne) SetLearnerID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableLearnerID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *FeedbackEventUpdateOne) SetTopic(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableTopic(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *FeedbackEventUpdateOne) SetKind(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableKind(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *FeedbackEventUpdateOne) SetScore(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableScore(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *FeedbackEventUpdateOne) AddScore(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMasterySample sets the "mastery_sample" field.
func (_u *FeedbackEventUpdateOne) SetMasterySample(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetMasterySample()
	_u.mutation.SetMasterySample(v)
	return _u
}

// SetNillableMasterySample sets the "mastery_sample" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableMasterySample(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetMasterySample(*v)
	}
	return _u
}

// AddMasterySample adds value to the "mastery_sample" field.
func (_u *FeedbackEventUpdateOne) AddMasterySample(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddMasterySample(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *FeedbackEventUpdateOne) SetMasteryAfter(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableMasteryAfter(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *FeedbackEventUpdateOne) AddMasteryAfter(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackEventUpdateOne) SetSessionID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableSessionID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *FeedbackEventUpdateOne) ClearSessionID() *FeedbackEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdateOne) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdateOne) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEventUpdateOne) Select(field string, fields ...string) *FeedbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEvent entity.
func (_u *FeedbackEventUpdateOne) Save(ctx context.Context) (*FeedbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) SaveX(ctx context.Context) *FeedbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := feedbackevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := feedbackevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackevent.FieldID)
		for _, f := range fields {
			if !feedbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(feedbackevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(feedbackevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(feedbackevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(feedbackevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(feedbackevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasterySample(); ok {
		_spec.SetField(feedbackevent.FieldMasterySample, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasterySample(); ok {
		_spec.AddField(feedbackevent.FieldMasterySample, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(feedbackevent.FieldSessionID, field.TypeString)
	}
	_node = &FeedbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
