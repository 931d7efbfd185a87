package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/devraj/learnpath/internal/feedback"
	"github.com/devraj/learnpath/internal/llm"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Score an exercise answer and update topic mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		topic, _ := cmd.Flags().GetString("topic")
		exType, _ := cmd.Flags().GetString("type")
		question, _ := cmd.Flags().GetString("question")
		answer, _ := cmd.Flags().GetString("answer")
		correct, _ := cmd.Flags().GetString("correct-answer")
		useLLM, _ := cmd.Flags().GetBool("llm")

		if learnerID == "" {
			return fmt.Errorf("--learner is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()

		var grader feedback.Grader
		if useLLM {
			provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
				fmt.Fprintln(os.Stderr, "Falling back to placeholder grading.")
			} else {
				grader = feedback.NewLLMGrader(provider, nil)
			}
		}

		scorer := feedback.NewScorer(s.UserStore(), s.EventRepo(), grader)

		if sessionFile, _ := cmd.Flags().GetString("session"); sessionFile != "" {
			return runSessionFeedback(cmd, scorer, learnerID, sessionFile)
		}

		result, err := scorer.ApplyFeedback(ctx, learnerID, feedback.Exercise{
			Type:          feedback.ExerciseType(exType),
			Topic:         topic,
			Question:      question,
			UserAnswer:    answer,
			CorrectAnswer: correct,
		})
		if err != nil {
			return fmt.Errorf("apply feedback: %w", err)
		}

		fmt.Println(styleHeading.Render(fmt.Sprintf("Feedback for %s", result.LearnerID)))
		fmt.Printf("%s %s\n", styleLabel.Render("Score:"), masteryStyle(result.Score).Render(fmt.Sprintf("%.2f (%s)", result.Score, result.Suggestion.ScoreLevel)))
		for t, m := range result.TopicMastery {
			fmt.Printf("%s %s %s\n", styleLabel.Render("Mastery:"), t, masteryStyle(m).Render(fmt.Sprintf("%.2f", m)))
		}
		if len(result.Suggestion.Suggestions) > 0 {
			fmt.Printf("%s %s\n", styleLabel.Render("Suggestions:"), strings.Join(result.Suggestion.Suggestions, " "))
		}
		if len(result.Suggestion.NextSteps) > 0 {
			fmt.Printf("%s %s\n", styleLabel.Render("Next steps:"), strings.Join(result.Suggestion.NextSteps, " "))
		}
		return nil
	},
}

// sessionFile is the JSON shape accepted by --session.
type sessionFile struct {
	TimeSpent int `json:"time_spent"`
	Exercises []struct {
		Type          string `json:"type"`
		Topic         string `json:"topic"`
		Question      string `json:"question"`
		UserAnswer    string `json:"user_answer"`
		CorrectAnswer string `json:"correct_answer"`
	} `json:"exercises"`
}

func runSessionFeedback(cmd *cobra.Command, scorer *feedback.Scorer, learnerID, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}
	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}

	sess := feedback.Session{TimeSpent: sf.TimeSpent}
	for _, e := range sf.Exercises {
		sess.Exercises = append(sess.Exercises, feedback.Exercise{
			Type:          feedback.ExerciseType(e.Type),
			Topic:         e.Topic,
			Question:      e.Question,
			UserAnswer:    e.UserAnswer,
			CorrectAnswer: e.CorrectAnswer,
		})
	}

	summary, err := scorer.ApplySessionFeedback(cmd.Context(), learnerID, sess)
	if err != nil {
		return fmt.Errorf("apply session feedback: %w", err)
	}

	fmt.Println(styleHeading.Render(fmt.Sprintf("Session %s", summary.SessionID)))
	fmt.Printf("%s %s\n", styleLabel.Render("Average score:"), masteryStyle(summary.AverageScore).Render(fmt.Sprintf("%.2f (%s)", summary.AverageScore, summary.Overall)))
	fmt.Printf("%s %d over %d min\n", styleLabel.Render("Exercises:"), summary.ExercisesCompleted, summary.TimeSpent)
	for t, m := range summary.TopicMastery {
		fmt.Printf("%s %s %s\n", styleLabel.Render("Mastery:"), t, masteryStyle(m).Render(fmt.Sprintf("%.2f", m)))
	}
	if len(summary.Strengths) > 0 {
		fmt.Printf("%s %s\n", styleStrong.Render("Strengths:"), strings.Join(summary.Strengths, ", "))
	}
	if len(summary.Weaknesses) > 0 {
		fmt.Printf("%s %s\n", styleWeak.Render("Weaknesses:"), strings.Join(summary.Weaknesses, ", "))
	}
	for _, s := range summary.Suggestions {
		fmt.Printf("  %s\n", s)
	}
	return nil
}

func init() {
	feedbackCmd.Flags().String("learner", "", "Learner ID")
	feedbackCmd.Flags().String("session", "", "Path to a JSON session file (scores the whole session)")
	feedbackCmd.Flags().String("topic", "", "Topic the exercise belongs to")
	feedbackCmd.Flags().String("type", string(feedback.TypeConceptual), "Exercise type: multiple_choice, coding, conceptual")
	feedbackCmd.Flags().String("question", "", "Exercise question text")
	feedbackCmd.Flags().String("answer", "", "Learner's answer")
	feedbackCmd.Flags().String("correct-answer", "", "Expected answer (multiple choice)")
	feedbackCmd.Flags().Bool("llm", false, "Grade open-ended answers with the configured LLM provider")
}
