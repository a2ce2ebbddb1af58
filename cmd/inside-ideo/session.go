package main

import (
	insideideo "github.com/niravbeni/inside-ideo"
)

// findSession resolves a session by name, falling back to ID lookup so
// scripts can use either.
func findSession(deps *Dependencies, name string) (*insideideo.Session, error) {
	sessions, err := deps.Sessions.FindSessions(deps.Ctx, insideideo.SessionFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(sessions) > 0 {
		return sessions[0], nil
	}
	return deps.Sessions.FindSessionByID(deps.Ctx, name)
}

// findField locates a field by name within a session's fields.
func findField(fields []*insideideo.Field, name string) *insideideo.Field {
	for _, field := range fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}
