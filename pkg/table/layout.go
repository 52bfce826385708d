package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jagdpruefer/quizetl/pkg/config"
	"github.com/jagdpruefer/quizetl/pkg/models"
)

// ResponseColumn is a response column and its position in the answer order
type ResponseColumn struct {
	Name  string
	Index int // Role index; responses are read in ascending index order
	Pos   int // Position in the header
}

// Layout maps roles to header positions. Optional roles are -1 when absent.
type Layout struct {
	Question  int
	Correct   int
	Subject   int
	Use       int
	Remark    int
	Responses []ResponseColumn
}

// DetectRoles derives an explicit role list from a header: question, correct,
// subject, use and remark by exact name, and every column whose name starts
// with "response" (any case) as a response in header order.
func DetectRoles(header []string) []config.ColumnRole {
	var roles []config.ColumnRole
	responses := 0
	for _, name := range header {
		switch name {
		case config.RoleQuestion, config.RoleCorrect, config.RoleSubject, config.RoleUse, config.RoleRemark:
			roles = append(roles, config.ColumnRole{Column: name, Role: name})
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), config.RoleResponse) {
			roles = append(roles, config.ColumnRole{Column: name, Role: config.RoleResponse, Index: responses})
			responses++
		}
	}
	return roles
}

// ResolveLayout validates roles against the header and returns the layout.
// All problems are collected into one *ConfigurationError.
func ResolveLayout(header []string, roles []config.ColumnRole) (Layout, error) {
	layout := Layout{Question: -1, Correct: -1, Subject: -1, Use: -1, Remark: -1}
	collector := &issueCollector{}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	scalars := map[string]*int{
		config.RoleQuestion: &layout.Question,
		config.RoleCorrect:  &layout.Correct,
		config.RoleSubject:  &layout.Subject,
		config.RoleUse:      &layout.Use,
		config.RoleRemark:   &layout.Remark,
	}
	responseIndexes := make(map[int]string)

	for _, role := range roles {
		pos, ok := positions[role.Column]
		if !ok {
			collector.add(role.Column, "column not found in input header")
			continue
		}
		if role.Role == config.RoleResponse {
			if role.Index < 0 {
				collector.add(role.Column, "response index must not be negative")
				continue
			}
			if other, dup := responseIndexes[role.Index]; dup {
				collector.add(role.Column, fmt.Sprintf("response index %d already used by %q", role.Index, other))
				continue
			}
			responseIndexes[role.Index] = role.Column
			layout.Responses = append(layout.Responses, ResponseColumn{Name: role.Column, Index: role.Index, Pos: pos})
			continue
		}
		target, known := scalars[role.Role]
		if !known {
			collector.add(role.Column, fmt.Sprintf("unknown role %q", role.Role))
			continue
		}
		if *target >= 0 {
			collector.add(role.Column, fmt.Sprintf("role %q already assigned to %q", role.Role, header[*target]))
			continue
		}
		*target = pos
	}

	if layout.Question < 0 {
		collector.add(config.RoleQuestion, "required column is missing")
	}
	if layout.Correct < 0 {
		collector.add(config.RoleCorrect, "required column is missing")
	}
	if err := collector.result(); err != nil {
		return Layout{}, err
	}

	sort.Slice(layout.Responses, func(i, j int) bool {
		return layout.Responses[i].Index < layout.Responses[j].Index
	})
	return layout, nil
}

// InputRows projects the table through the layout
func (t *Table) InputRows(layout Layout) []models.InputRow {
	rows := make([]models.InputRow, 0, len(t.Rows))
	for i, cells := range t.Rows {
		row := models.InputRow{
			Question:  cells[layout.Question],
			Correct:   cells[layout.Correct],
			Subject:   cell(cells, layout.Subject),
			Use:       cell(cells, layout.Use),
			Remark:    cell(cells, layout.Remark),
			Responses: make([]string, len(layout.Responses)),
		}
		if i < len(t.Lines) {
			row.Line = t.Lines[i]
		}
		for j, rc := range layout.Responses {
			row.Responses[j] = cells[rc.Pos]
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(cells []string, pos int) string {
	if pos < 0 {
		return ""
	}
	return cells[pos]
}
