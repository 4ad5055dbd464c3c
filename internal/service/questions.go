package service

import "cyclica-api/internal/model"

// companyContext is embedded in every scoring prompt and in the free-chat
// system prompt.
const companyContext = `Cyclica: Rhythm that makes you grow.

We are an HR System company that believes in flexibility, automation, and humanity in the workplace.

Our Core Values:
- Empowering the workforce to drive organizational growth: We believe that recognizing and embracing our body's needs is essential for moving forward and reaching greater goals together. By acknowledging the organic and cyclical nature of our bodies, we transform our perspective on workplace productivity.
- Boosting economy by embracing natural cycles: Good professional relationships are built on trust and respect. By allowing employees to manage their work and personal needs more flexibly, we help organizations achieve their business goals while also improving people's well-being.

Our Office Culture:
- Heating pads available for menstrual discomfort or any other discomfort
- Period products in all restrooms for safety and comfort
- Comfort snacks, hot tea available for relaxation and refocus
- Well-being room with low stimulation for focused work when energy is low
- Flexible work arrangements based on how you feel: office, well-being room, home, or day off`

// questions is the fixed five-question cultural-fit questionnaire. Loaded once
// at process start, never mutated.
var questions = []model.Question{
	{
		ID:   1,
		Text: "How do you adapt your tasks or expectations if your energy levels affect how you work?",
		Guide: model.EvaluationGuide{
			Score0: "Denies or ignores bodily impact on work",
			Score1: "Acknowledges impact but shows limited or reactive adaptation",
			Score2: "Clearly recognizes bodily signals and adapts work in a thoughtful, responsible way",
		},
	},
	{
		ID:   2,
		Text: "What kind of work environment helps you grow sustainably over time?",
		Guide: model.EvaluationGuide{
			Score0: "Growth linked mainly to pressure or constant performance",
			Score1: "Mentions balance without deeper reflection",
			Score2: "Emphasizes sustainability, rhythm, learning, and collective well-being",
		},
	},
	{
		ID:   3,
		Text: "What does productivity mean to you beyond delivering tasks on time?",
		Guide: model.EvaluationGuide{
			Score0: "Productivity defined only by output, speed, or hours worked",
			Score1: "Mentions quality or efficiency but remains task-focused",
			Score2: "Includes well-being, sustainability, long-term impact, or collective results",
		},
	},
	{
		ID:   4,
		Text: "In your opinion, what makes a workplace feel safe for people to express their needs?",
		Guide: model.EvaluationGuide{
			Score0: "Places responsibility only on individuals",
			Score1: "Mentions leadership or policies without cultural depth",
			Score2: "Recognizes trust, openness, listening, and shared cultural practices",
		},
	},
	{
		ID:   5,
		Text: "How do you feel working in an environment where flexibility and autonomy are encouraged?",
		Guide: model.EvaluationGuide{
			Score0: "Strong resistance to flexibility or need for constant supervision",
			Score1: "Accepts flexibility with reservations or difficulty",
			Score2: "Demonstrates comfort, responsibility, and clear communication habits",
		},
	},
}

// TotalQuestions is the questionnaire length.
func TotalQuestions() int {
	return len(questions)
}

// QuestionByID returns the question with the given id, or nil.
func QuestionByID(id int) *model.Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

// QuestionSummaries returns the ordered question list with rubrics omitted.
func QuestionSummaries() []model.QuestionSummary {
	summaries := make([]model.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, model.QuestionSummary{ID: q.ID, Text: q.Text})
	}
	return summaries
}
