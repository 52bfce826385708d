package etl

import (
	"sort"
	"strings"

	"github.com/jagdpruefer/quizetl/pkg/models"
	"github.com/jagdpruefer/quizetl/pkg/normalize"
)

// Clean drops rows without a question or correct value and rows whose
// question is only whitespace.
func Clean(rows []models.InputRow) []models.InputRow {
	kept := make([]models.InputRow, 0, len(rows))
	for _, row := range rows {
		if dropReason(row) != "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// dropReason says why Clean removes a row, or "" when the row is kept.
// Only empty cells count as missing; markers like "NA" are text.
func dropReason(row models.InputRow) string {
	switch {
	case row.Correct == "":
		return "missing correct"
	case row.Question == "":
		return "missing question"
	case strings.TrimSpace(row.Question) == "":
		return "blank question"
	default:
		return ""
	}
}

// Group merges rows sharing a normalized question. Groups are returned in
// ascending key order; inside a group rows keep their source order.
func Group(rows []models.InputRow) []models.QuestionGroup {
	index := make(map[string]int)
	var groups []models.QuestionGroup
	var letters [][]string

	for _, row := range rows {
		key := normalize.QuestionKey(row.Question)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.QuestionGroup{
				Key:       key,
				Question:  row.Question,
				Responses: make([][]string, len(row.Responses)),
			})
			for c := range groups[i].Responses {
				groups[i].Responses[c] = []string{}
			}
			letters = append(letters, nil)
		}

		g := &groups[i]
		g.Rows++
		g.Subject = firstNonEmpty(g.Subject, row.Subject)
		g.Use = firstNonEmpty(g.Use, row.Use)
		g.Remark = firstNonEmpty(g.Remark, row.Remark)
		for c, value := range row.Responses {
			g.Responses[c] = append(g.Responses[c], normalize.ResponseCell(value)...)
		}
		letters[i] = append(letters[i], normalize.CorrectLetters(row.Correct))
	}

	for i := range groups {
		groups[i].CorrectLetters = normalize.MergeLetters(letters[i])
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Key < groups[b].Key
	})
	return groups
}

// firstNonEmpty keeps the first non-empty value; empty cells count as missing.
func firstNonEmpty(current, candidate string) string {
	if current != "" {
		return current
	}
	return candidate
}

// Project builds the long-format records from grouped questions.
func Project(groups []models.QuestionGroup) []models.QuizRecord {
	records := make([]models.QuizRecord, 0, len(groups))
	for _, g := range groups {
		possible := normalize.PossibleAnswers(g.Responses)
		records = append(records, models.QuizRecord{
			Question:        g.Question,
			Subject:         g.Subject,
			Use:             g.Use,
			PossibleAnswers: possible,
			CorrectAnswers:  normalize.CorrectAnswers(g.CorrectLetters, possible),
		})
	}
	return records
}
