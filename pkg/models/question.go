package models

// InputRow represents a single row of the source questions table
type InputRow struct {
	Line      int      // Line number in the source file (header is line 1)
	Question  string   // The question text as written in the source
	Subject   string   // Subject/category (optional)
	Use       string   // Usage tag, e.g. "Test de positionnement" (optional)
	Remark    string   // Free-text remark (optional)
	Responses []string // One cell per response column, in role index order
	Correct   string   // Comma-separated letters, e.g. "A,c"
}

// QuestionGroup represents all rows sharing one normalized question
type QuestionGroup struct {
	Key            string     // Normalized question, used for grouping only
	Question       string     // Question text of the first row in the group
	Subject        string     // First non-empty subject seen in the group
	Use            string     // First non-empty use seen in the group
	Remark         string     // First non-empty remark seen in the group
	Responses      [][]string // Per response column, concatenated cells of all rows
	CorrectLetters string     // Sorted union of correct letters, comma-joined
	Rows           int        // Number of source rows merged into this group
}

// QuizRecord is one question of the long-format quiz dataset
type QuizRecord struct {
	Question        string   `json:"question"`         // Question text as first seen
	Subject         string   `json:"subject"`          // Subject/category
	Use             string   `json:"use"`              // Usage tag
	PossibleAnswers []string `json:"possible_answers"` // Distinct answers, first occurrence order
	CorrectAnswers  []string `json:"correct_answers"`  // Subset of PossibleAnswers marked correct
}

// RunStats counts rows at each stage of a pipeline run
type RunStats struct {
	Loaded  int `json:"loaded"`  // Rows read from the source
	Cleaned int `json:"cleaned"` // Rows left after cleaning
	Grouped int `json:"grouped"` // Groups after merging by normalized question
	Records int `json:"records"` // Records in the long format
}
