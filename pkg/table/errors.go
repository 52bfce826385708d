package table

import (
	"fmt"
	"strings"
)

// Issue describes one problem with the column layout.
type Issue struct {
	Column  string
	Message string
}

// ConfigurationError reports a column layout the pipeline cannot run with,
// such as a missing question or correct column.
type ConfigurationError struct {
	Issues []Issue
}

func (err *ConfigurationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		if issue.Column == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Column, issue.Message))
	}
	return fmt.Sprintf("column configuration invalid: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(column, message string) {
	collector.issues = append(collector.issues, Issue{Column: column, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ConfigurationError{Issues: collector.issues}
}

// ParseError reports input that cannot be read as a table with a header row.
type ParseError struct {
	Path string
	Line int // 0 when unknown
	Err  error
}

func (err *ParseError) Error() string {
	where := err.Path
	if where == "" {
		where = "input"
	}
	if err.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, err.Line)
	}
	return fmt.Sprintf("parse %s: %v", where, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
