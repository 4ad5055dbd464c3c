package service

import "cyclica-api/internal/model"

// GenerateFeedback maps a cumulative total score (0-10 across five questions)
// to its feedback band. Bands are inclusive with no gaps or overlaps.
func GenerateFeedback(totalScore int) model.Feedback {
	switch {
	case totalScore <= 3:
		return model.Feedback{
			Range:   "0-3",
			Message: "Based on your responses, your current expectations around productivity, communication, and work structure appear to differ from Cyclica's approach to flexibility, body awareness, and cyclical work rhythms. This result does not reflect your professional value or capabilities, but rather a difference in how work, well-being, and autonomy are integrated into daily practices within our culture. This company is the outcome of a speculative design process that explores how workplaces could be reimagined to better accommodate different bodily needs.",
		}
	case totalScore <= 6:
		return model.Feedback{
			Range:   "4-6",
			Message: "Your answers indicate a partial alignment with Cyclica's values, with the potential to evolve through shared understanding and the right working context. This company is the outcome of a speculative design process that explores how workplaces could be reimagined to better accommodate different bodily needs.",
		}
	case totalScore <= 8:
		return model.Feedback{
			Range:   "7-8",
			Message: "Your responses demonstrate a solid awareness of personal rhythms, respect for colleagues' needs, and openness to flexible and asynchronous ways of working. This indicates a good alignment with Cyclica's culture and our belief that sustainable growth emerges from trust, autonomy, and well-being. This company is the outcome of a speculative design process that explores how workplaces could be reimagined to better accommodate different bodily needs.",
		}
	default:
		return model.Feedback{
			Range:   "9-10",
			Message: "Your answers strongly resonate with Cyclica's vision of work as a cyclical, human-centered system. You demonstrate a deep understanding of body awareness, empathy, flexibility, and long-term sustainability — values that are central to how we build teams, relationships, and growth together. This company is the outcome of a speculative design process that explores how workplaces could be reimagined to better accommodate different bodily needs.",
		}
	}
}
