// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devraj/learnpath/ent/feedbackevent"
	"github.com/devraj/learnpath/ent/historyentry"
	"github.com/devraj/learnpath/ent/learner"
	"github.com/devraj/learnpath/ent/llmrequestevent"
	"github.com/devraj/learnpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescLearnerID is the schema descriptor for learner_id field.
	feedbackeventDescLearnerID := feedbackeventFields[0].Descriptor()
	// feedbackevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	feedbackevent.LearnerIDValidator = feedbackeventDescLearnerID.Validators[0].(func(string) error)
	// feedbackeventDescTopic is the schema descriptor for topic field.
	feedbackeventDescTopic := feedbackeventFields[1].Descriptor()
	// feedbackevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	feedbackevent.TopicValidator = feedbackeventDescTopic.Validators[0].(func(string) error)
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescLearnerID is the schema descriptor for learner_id field.
	historyentryDescLearnerID := historyentryFields[0].Descriptor()
	// historyentry.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	historyentry.LearnerIDValidator = historyentryDescLearnerID.Validators[0].(func(string) error)
	// historyentryDescTopic is the schema descriptor for topic field.
	historyentryDescTopic := historyentryFields[1].Descriptor()
	// historyentry.DefaultTopic holds the default value on creation for the topic field.
	historyentry.DefaultTopic = historyentryDescTopic.Default.(string)
	// historyentryDescKind is the schema descriptor for kind field.
	historyentryDescKind := historyentryFields[2].Descriptor()
	// historyentry.DefaultKind holds the default value on creation for the kind field.
	historyentry.DefaultKind = historyentryDescKind.Default.(string)
	// historyentryDescTimeSpent is the schema descriptor for time_spent field.
	historyentryDescTimeSpent := historyentryFields[3].Descriptor()
	// historyentry.DefaultTimeSpent holds the default value on creation for the time_spent field.
	historyentry.DefaultTimeSpent = historyentryDescTimeSpent.Default.(int)
	// historyentryDescCorrect is the schema descriptor for correct field.
	historyentryDescCorrect := historyentryFields[4].Descriptor()
	// historyentry.DefaultCorrect holds the default value on creation for the correct field.
	historyentry.DefaultCorrect = historyentryDescCorrect.Default.(bool)
	// historyentryDescCompletedAt is the schema descriptor for completed_at field.
	historyentryDescCompletedAt := historyentryFields[6].Descriptor()
	// historyentry.DefaultCompletedAt holds the default value on creation for the completed_at field.
	historyentry.DefaultCompletedAt = historyentryDescCompletedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescLearnerID is the schema descriptor for learner_id field.
	learnerDescLearnerID := learnerFields[0].Descriptor()
	// learner.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learner.LearnerIDValidator = learnerDescLearnerID.Validators[0].(func(string) error)
	// learnerDescVersion is the schema descriptor for version field.
	learnerDescVersion := learnerFields[2].Descriptor()
	// learner.DefaultVersion holds the default value on creation for the version field.
	learner.DefaultVersion = learnerDescVersion.Default.(int64)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[3].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
}
