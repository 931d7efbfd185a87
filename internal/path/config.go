package path

import "github.com/devraj/learnpath/internal/knowledge"

// DefaultGoal is substituted for any goal the curriculum does not know.
const DefaultGoal = "python_basics"

// curriculum maps each learning goal to the ordered topic sequence per
// learner level.
var curriculum = map[string]map[knowledge.Level][]string{
	"python_basics": {
		knowledge.LevelBeginner:     {"variables", "data_types", "control_structures", "functions"},
		knowledge.LevelIntermediate: {"decorators", "generators", "context_managers", "modules"},
		knowledge.LevelAdvanced:     {"memory_management", "performance_optimization", "cython_integration"},
	},
	"data_structures": {
		knowledge.LevelBeginner:     {"arrays", "lists", "stacks", "queues"},
		knowledge.LevelIntermediate: {"trees", "graphs", "hash_tables", "heaps"},
		knowledge.LevelAdvanced:     {"advanced_trees", "graph_algorithms", "distributed_structures"},
	},
	"web_development": {
		knowledge.LevelBeginner:     {"html_basics", "css_basics", "javascript_fundamentals"},
		knowledge.LevelIntermediate: {"dom_manipulation", "ajax", "frontend_frameworks"},
		knowledge.LevelAdvanced:     {"ssr", "ssg", "web_security", "performance_optimization"},
	},
	"machine_learning": {
		knowledge.LevelBeginner:     {"supervised_learning", "unsupervised_learning", "model_evaluation"},
		knowledge.LevelIntermediate: {"neural_networks", "feature_engineering", "cross_validation"},
		knowledge.LevelAdvanced:     {"deep_learning", "ensemble_methods", "hyperparameter_optimization"},
	},
}

// defaultBaseTime is the estimate in minutes for topics missing from
// the base-time table.
const defaultBaseTime = 30

// baseTime holds per-topic base estimates in minutes.
var baseTime = map[string]int{
	"variables":                15,
	"data_types":               20,
	"control_structures":       25,
	"functions":                30,
	"decorators":               40,
	"generators":               35,
	"context_managers":         30,
	"modules":                  25,
	"memory_management":        50,
	"performance_optimization": 60,
	"cython_integration":       70,
}

// levelMultiplier scales base time by learner level. Floor, not round,
// when converting back to whole minutes.
var levelMultiplier = map[knowledge.Level]float64{
	knowledge.LevelBeginner:     1.0,
	knowledge.LevelIntermediate: 1.2,
	knowledge.LevelAdvanced:     1.5,
}

// prerequisites maps a topic to the topics it assumes. Topics not
// listed have none.
var prerequisites = map[string][]string{
	"functions":           {"variables", "data_types"},
	"decorators":          {"functions"},
	"generators":          {"functions"},
	"context_managers":    {"functions"},
	"neural_networks":     {"supervised_learning"},
	"feature_engineering": {"supervised_learning"},
	"cross_validation":    {"model_evaluation"},
	"deep_learning":       {"neural_networks"},
	"ensemble_methods":    {"supervised_learning"},
	"frontend_frameworks": {"javascript_fundamentals"},
	"ssr":                 {"frontend_frameworks"},
	"ssg":                 {"frontend_frameworks"},
	"web_security":        {"frontend_frameworks"},
}

// estimateTime returns the whole-minute estimate for one topic at one
// level.
func estimateTime(topic string, level knowledge.Level) int {
	base, ok := baseTime[topic]
	if !ok {
		base = defaultBaseTime
	}
	mult, ok := levelMultiplier[level]
	if !ok {
		mult = 1.0
	}
	return int(float64(base) * mult)
}

// prerequisitesFor returns a copy of the topic's prerequisite list.
func prerequisitesFor(topic string) []string {
	pre := prerequisites[topic]
	if len(pre) == 0 {
		return nil
	}
	out := make([]string, len(pre))
	copy(out, pre)
	return out
}

// Goals lists the curriculum's known learning goals.
func Goals() []string {
	out := make([]string, 0, len(curriculum))
	for goal := range curriculum {
		out = append(out, goal)
	}
	return out
}
