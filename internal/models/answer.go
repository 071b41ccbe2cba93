package models

// Source tags describing which tier produced an answer.
const (
	SourceSeedAnswers    = "seed_answers"
	SourceModel          = "model"
	SourceTrainingCorpus = "training_corpus"
	SourceAdviceIntents  = "advice_intents"
	SourceBuiltInAdvice  = "built_in_advice"
)

// AnswerResult is the outcome of resolving one question.
type AnswerResult struct {
	Category Category `json:"category"`
	Advice   string   `json:"advice"`
	Sources  []string `json:"sources"`
}
