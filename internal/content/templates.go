package content

import (
	"context"

	"github.com/devraj/learnpath/internal/feedback"
	"github.com/devraj/learnpath/internal/knowledge"
)

// templateEntry is the static material set for one goal.
type templateEntry struct {
	Concept      string
	KeyPoints    []string
	Explanations map[knowledge.Level]string
	Exercises    map[knowledge.Level][]Exercise
}

// TemplateProvider serves materials from a static library. It is the
// fallback when no LLM is configured and the deterministic path for
// tests.
type TemplateProvider struct {
	library map[string]templateEntry
}

// NewTemplateProvider returns a provider over the built-in library.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{library: builtinLibrary}
}

// MaterialsFor looks up the goal's materials at the learner's level.
// An unknown goal gets a minimal generic set rather than an error; the
// planner has already substituted the default goal for anything it
// cares about.
func (p *TemplateProvider) MaterialsFor(_ context.Context, goal string, levelCtx knowledge.LevelAnalysis) (Materials, error) {
	entry, ok := p.library[goal]
	if !ok {
		return Materials{
			Concept:     goal,
			Explanation: "Work through the fundamentals of " + goal + " step by step.",
		}, nil
	}

	level := levelCtx.Level
	if !level.Valid() {
		level = knowledge.LevelBeginner
	}

	return Materials{
		Concept:     entry.Concept,
		KeyPoints:   entry.KeyPoints,
		Explanation: entry.Explanations[level],
		Exercises:   entry.Exercises[level],
	}, nil
}

// Topics lists the goals the library covers.
func (p *TemplateProvider) Topics() []string {
	out := make([]string, 0, len(p.library))
	for goal := range p.library {
		out = append(out, goal)
	}
	return out
}

var builtinLibrary = map[string]templateEntry{
	"python_basics": {
		Concept:   "Python fundamentals",
		KeyPoints: []string{"variables", "data types", "control structures"},
		Explanations: map[knowledge.Level]string{
			knowledge.LevelBeginner:     "Python is an approachable language known for clean syntax. You do not declare variable types, which keeps beginner code short and readable. Start with variables, basic types and simple conditionals.",
			knowledge.LevelIntermediate: "Python's intermediate features include generators, decorators and context managers. Generators save memory by producing values lazily; decorators wrap functions with extra behavior without touching their bodies.",
			knowledge.LevelAdvanced:     "Advanced Python work means understanding the garbage collector, profiling before optimizing, and choosing the right data structures. For hot paths, consider Cython or a C extension.",
		},
		Exercises: map[knowledge.Level][]Exercise{
			knowledge.LevelBeginner: {
				{Type: feedback.TypeMultipleChoice, Question: "Which of these is a legal Python variable name?", Options: []string{"1variable", "variable-1", "variable_1", "variable 1"}, Answer: "variable_1"},
				{Type: feedback.TypeMultipleChoice, Question: "Which keyword defines a function in Python?", Options: []string{"func", "function", "def", "define"}, Answer: "def"},
			},
			knowledge.LevelIntermediate: {
				{Type: feedback.TypeCoding, Question: "Write a decorator that measures a function's execution time.", Answer: "Wrap the function, record time.monotonic before and after, return the wrapper."},
				{Type: feedback.TypeMultipleChoice, Question: "Which of these is NOT a built-in Python collection type?", Options: []string{"list", "tuple", "dict", "map"}, Answer: "map"},
			},
			knowledge.LevelAdvanced: {
				{Type: feedback.TypeConceptual, Question: "Explain the GIL and its effect on multi-threaded Python performance.", Answer: "The GIL lets only one thread execute Python bytecode at a time, so CPU-bound threads do not run in parallel."},
				{Type: feedback.TypeCoding, Question: "Show how a generator can reduce memory use when processing a large file.", Answer: "Yield lines one at a time instead of reading the whole file into a list."},
			},
		},
	},
	"data_structures": {
		Concept:   "Data structures and algorithms",
		KeyPoints: []string{"arrays", "linked lists", "trees", "graphs"},
		Explanations: map[knowledge.Level]string{
			knowledge.LevelBeginner:     "Data structures organize data; algorithms are the steps that operate on it. Arrays, stacks, queues and linked lists cover most everyday needs and are the foundation for everything harder.",
			knowledge.LevelIntermediate: "Trees and graphs model hierarchical and networked data. Binary trees, balanced trees and heaps show up constantly in practice, as do quicksort and binary search.",
			knowledge.LevelAdvanced:     "Advanced structures include hash tables, union-find, segment trees and tries. Graph algorithms like shortest path and minimum spanning tree, plus dynamic programming and greedy design, handle the hard problems.",
		},
		Exercises: map[knowledge.Level][]Exercise{
			knowledge.LevelBeginner: {
				{Type: feedback.TypeMultipleChoice, Question: "Which data structure is last-in, first-out (LIFO)?", Options: []string{"queue", "stack", "array", "linked list"}, Answer: "stack"},
				{Type: feedback.TypeCoding, Question: "Implement a stack with push and pop operations.", Answer: "Back it with a slice or linked list; push appends, pop removes the tail."},
			},
			knowledge.LevelIntermediate: {
				{Type: feedback.TypeCoding, Question: "Implement binary search over a sorted array.", Answer: "Halve the search window each step by comparing against the middle element."},
				{Type: feedback.TypeConceptual, Question: "Explain how a hash table works.", Answer: "A hash function maps each key to a bucket index; collisions are resolved by chaining or probing."},
			},
			knowledge.LevelAdvanced: {
				{Type: feedback.TypeCoding, Question: "Implement quicksort.", Answer: "Partition around a pivot and recurse into both halves."},
				{Type: feedback.TypeConceptual, Question: "Explain the core idea behind dynamic programming.", Answer: "Break the problem into overlapping subproblems and store each subproblem's solution."},
			},
		},
	},
	"web_development": {
		Concept:   "Web development fundamentals",
		KeyPoints: []string{"HTML structure", "CSS styling", "JavaScript interactivity"},
		Explanations: map[knowledge.Level]string{
			knowledge.LevelBeginner:     "Web development splits into the front end (what the user sees) and the back end (server logic). HTML builds the page structure, CSS styles it, JavaScript makes it interactive.",
			knowledge.LevelIntermediate: "Responsive design keeps a site usable on any device. Front-end frameworks like React and Vue speed up development; server runtimes like Node.js handle the back end.",
			knowledge.LevelAdvanced:     "Modern web work involves build tooling, state management, server-side rendering and static site generation. Security, performance and accessibility are first-class concerns, not afterthoughts.",
		},
		Exercises: map[knowledge.Level][]Exercise{
			knowledge.LevelBeginner: {
				{Type: feedback.TypeMultipleChoice, Question: "Which tag sets an HTML document's title?", Options: []string{"<header>", "<title>", "<head>", "<h1>"}, Answer: "<title>"},
				{Type: feedback.TypeCoding, Question: "Write a minimal HTML page with a heading, a paragraph and a link.", Answer: "Use <h1>, <p> and <a> inside a basic document skeleton."},
			},
			knowledge.LevelIntermediate: {
				{Type: feedback.TypeCoding, Question: "Center a card component using CSS.", Answer: "Use flexbox with justify-content and align-items, or a centered grid area."},
				{Type: feedback.TypeMultipleChoice, Question: "Which JavaScript method selects an HTML element?", Options: []string{"getElementById()", "querySelector()", "getElementsByClassName()", "all of the above"}, Answer: "all of the above"},
			},
			knowledge.LevelAdvanced: {
				{Type: feedback.TypeConceptual, Question: "Explain the principles of RESTful API design.", Answer: "Resources live at URLs; HTTP methods express the operation; responses are stateless."},
				{Type: feedback.TypeCoding, Question: "Build a small React component with state and an event handler.", Answer: "Use the useState hook and wire the handler to an element event."},
			},
		},
	},
	"machine_learning": {
		Concept:   "Machine learning foundations",
		KeyPoints: []string{"supervised learning", "unsupervised learning", "model evaluation"},
		Explanations: map[knowledge.Level]string{
			knowledge.LevelBeginner:     "Machine learning lets programs learn patterns from data instead of being explicitly programmed. Supervised learning trains on labeled examples; unsupervised learning finds structure in unlabeled data.",
			knowledge.LevelIntermediate: "Common algorithms include linear regression, decision trees, support vector machines and neural networks. Feature engineering and cross-validation matter as much as the model choice.",
			knowledge.LevelAdvanced:     "Deep learning stacks many layers to capture complex patterns. Ensembles combine models for accuracy; hyperparameter search and regularization keep them from overfitting.",
		},
		Exercises: map[knowledge.Level][]Exercise{
			knowledge.LevelBeginner: {
				{Type: feedback.TypeMultipleChoice, Question: "Which algorithm is unsupervised?", Options: []string{"linear regression", "k-means clustering", "decision tree", "support vector machine"}, Answer: "k-means clustering"},
				{Type: feedback.TypeMultipleChoice, Question: "What is overfitting?", Options: []string{"poor on training data, good on test data", "poor on both", "good on training data, poor on test data", "good on both"}, Answer: "good on training data, poor on test data"},
			},
			knowledge.LevelIntermediate: {
				{Type: feedback.TypeCoding, Question: "Train a simple classifier and evaluate its accuracy on held-out data.", Answer: "Split the data, fit the model on the training part, score on the test part."},
				{Type: feedback.TypeConceptual, Question: "Explain what cross-validation buys you.", Answer: "A more reliable performance estimate by averaging over multiple train/test splits."},
			},
			knowledge.LevelAdvanced: {
				{Type: feedback.TypeConceptual, Question: "Compare random forests and gradient boosting.", Answer: "Forests train trees in parallel and resist overfitting; boosting trains sequentially and usually scores higher."},
				{Type: feedback.TypeCoding, Question: "Implement a small feed-forward neural network.", Answer: "Stack dense layers with a nonlinearity and train with gradient descent."},
			},
		},
	},
}
