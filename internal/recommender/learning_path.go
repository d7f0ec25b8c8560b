package recommender

import "github.com/jonathan/career-matcher/internal/types"

const (
	learningPlanMonths = 6
	skillsToLearn      = 5
)

// learningPhases is the fixed roadmap shared by every career.
var learningPhases = []types.LearningPhase{
	{
		Phase:    "Foundation",
		Duration: "2 months",
		Focus:    "Build core knowledge",
		Resources: []string{
			"Online courses on Coursera/Udemy",
			"FreeCodeCamp or Khan Academy",
			"Official documentation",
		},
	},
	{
		Phase:    "Skills Development",
		Duration: "3 months",
		Focus:    "Develop practical skills",
		Resources: []string{
			"Hands-on projects",
			"Personal portfolio",
			"Open source contributions",
		},
	},
	{
		Phase:    "Specialization",
		Duration: "1 month",
		Focus:    "Deepen expertise",
		Resources: []string{
			"Advanced courses",
			"Certifications",
			"Industry conferences",
		},
	},
}

// LearningPath returns the six-month roadmap for a career: the fixed phases,
// its leading skills, and the catalog's certifications and progression
// (or their generic fallbacks).
func (e *Engine) LearningPath(careerID string) (types.LearningPlan, error) {
	career, err := e.Details(careerID)
	if err != nil {
		return types.LearningPlan{}, err
	}

	return types.LearningPlan{
		CareerID:                  career.ID,
		Career:                    career.Name,
		DurationMonths:            learningPlanMonths,
		Phases:                    clonePhases(learningPhases),
		KeySkillsToLearn:          career.TopSkills(skillsToLearn),
		RecommendedCertifications: e.catalog.Certifications(career.ID),
		CareerProgression:         e.catalog.Progression(career.ID),
	}, nil
}

func clonePhases(in []types.LearningPhase) []types.LearningPhase {
	out := make([]types.LearningPhase, len(in))
	for i, phase := range in {
		phase.Resources = append([]string(nil), phase.Resources...)
		out[i] = phase
	}
	return out
}
