package models

import (
	"strings"
	"time"
)

// Parent is the guardian sub-record embedded in a student document.
type Parent struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

// ReportCardEntry is one term result on a student's report card. Report
// cards start empty; this core never writes entries.
type ReportCardEntry struct {
	Term     string             `bson:"term" json:"term"`
	Subjects map[string]float64 `bson:"subjects" json:"subjects"`
	Remarks  string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
}

// Student is created exactly once per accepted application.
type Student struct {
	ID             string            `bson:"id" json:"id"`
	Name           string            `bson:"name" json:"name"`
	Age            int               `bson:"age" json:"age"`
	Class          string            `bson:"class" json:"class"`
	Level          string            `bson:"level" json:"level"`
	Region         string            `bson:"region" json:"region"`
	Parent         Parent            `bson:"parent" json:"parent"`
	EnrollmentDate time.Time         `bson:"enrollmentDate" json:"enrollmentDate"`
	Attendance     string            `bson:"attendance" json:"attendance"`
	Photo          string            `bson:"photo,omitempty" json:"photo,omitempty"`
	ReportCard     []ReportCardEntry `bson:"reportCard" json:"reportCard"`
}

// Levels derived from admission programs.
const (
	LevelPreSchool = "Pre-School"
	LevelPrimary   = "Primary"
	LevelJHS       = "JHS"
)

// LevelFromProgram maps a free-form program name onto a level using ordered
// substring rules. Unmatched programs fall back to Primary.
func LevelFromProgram(program string) string {
	switch {
	case strings.Contains(program, LevelPreSchool):
		return LevelPreSchool
	case strings.Contains(program, LevelPrimary):
		return LevelPrimary
	case strings.Contains(program, LevelJHS):
		return LevelJHS
	default:
		return LevelPrimary
	}
}

// AgeAt computes whole years between dob and now, decrementing when the
// birthday has not yet occurred in the current year.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
