package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jagdpruefer/quizetl/pkg/models"
)

func sampleRecords() []models.QuizRecord {
	return []models.QuizRecord{
		{
			Question:        "Capitale de la France ?",
			Subject:         "Géographie",
			Use:             "Test de positionnement",
			PossibleAnswers: []string{"Paris", "Lyon", "Madrid"},
			CorrectAnswers:  []string{"Paris", "Lyon"},
		},
		{
			Question:        "Which tag wraps <body>?",
			Subject:         "",
			Use:             "",
			PossibleAnswers: []string{"html"},
			CorrectAnswers:  []string{},
		},
	}
}

func TestStringLiteral(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: "Paris", out: `'Paris'`},
		{in: "l'eau", out: `"l'eau"`},
		{in: `say "hi"`, out: `'say "hi"'`},
		{in: `both ' and "`, out: `'both \' and "'`},
		{in: `back\slash`, out: `'back\\slash'`},
		{in: "two\nlines\t", out: `'two\nlines\t'`},
		{in: "bell\a", out: `'bell\x07'`},
		{in: "non breaking", out: `'non\xa0breaking'`},
		{in: "été", out: `'été'`},
		{in: "", out: `''`},
	}
	for _, tc := range cases {
		require.Equal(t, tc.out, StringLiteral(tc.in), "input %q", tc.in)
	}
}

func TestListLiteral(t *testing.T) {
	require.Equal(t, "[]", ListLiteral(nil))
	require.Equal(t, "['Paris', 'Lyon']", ListLiteral([]string{"Paris", "Lyon"}))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	want := "question,subject,use,possible_answers,correct_answers\n" +
		"Capitale de la France ?,Géographie,Test de positionnement,\"['Paris', 'Lyon', 'Madrid']\",\"['Paris', 'Lyon']\"\n" +
		"Which tag wraps <body>?,,,['html'],[]\n"
	require.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords()))

	out := buf.String()
	require.Contains(t, out, "\n  {\n    \"question\": \"Capitale de la France ?\",")
	require.Contains(t, out, `"subject": "Géographie"`)
	require.Contains(t, out, `"question": "Which tag wraps <body>?"`)
	require.Contains(t, out, `"correct_answers": []`)

	var decoded []models.QuizRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, sampleRecords(), decoded)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestWriteFilesOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	csvPath := filepath.Join(dir, "questions_clean.csv")
	jsonPath := filepath.Join(dir, "quiz.json")

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(jsonPath, []byte("stale content that is longer than the output"), 0o644))

	require.NoError(t, WriteFiles(csvPath, jsonPath, sampleRecords()[:1]))

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Contains(t, string(csvData), "Capitale de la France ?")

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded []models.QuizRecord
	require.NoError(t, json.Unmarshal(jsonData, &decoded))
	require.Len(t, decoded, 1)
}
